package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage_UnmarshalEnvelope(t *testing.T) {
	data := []byte(`{
		"count": 100,
		"next": "http://localhost:8000/api/movies/?page=3",
		"previous": "http://localhost:8000/api/movies/?page=1",
		"results": [{"id": 1, "title": "Stalker"}]
	}`)

	var page Page[Movie]
	require.NoError(t, json.Unmarshal(data, &page))

	assert.Equal(t, 100, page.Count)
	require.NotNil(t, page.Next)
	assert.Equal(t, "http://localhost:8000/api/movies/?page=3", *page.Next)
	require.NotNil(t, page.Previous)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "Stalker", page.Results[0].Title)
}

func TestPage_UnmarshalBareArray(t *testing.T) {
	data := []byte(`[{"id": 1, "title": "Stalker"}, {"id": 2, "title": "Solaris"}]`)

	var page Page[Movie]
	require.NoError(t, json.Unmarshal(data, &page))

	// Голый массив нормализуется к полной странице
	assert.Equal(t, 2, page.Count)
	assert.Nil(t, page.Next)
	assert.Nil(t, page.Previous)
	require.Len(t, page.Results, 2)
	assert.Equal(t, "Solaris", page.Results[1].Title)
}

func TestPage_UnmarshalBareArrayLeadingWhitespace(t *testing.T) {
	data := []byte("\n\t [{\"id\": 1, \"title\": \"Stalker\"}]")

	var page Page[Movie]
	require.NoError(t, json.Unmarshal(data, &page))

	assert.Equal(t, 1, page.Count)
	require.Len(t, page.Results, 1)
}

func TestPage_UnmarshalEmptyArray(t *testing.T) {
	var page Page[Movie]
	require.NoError(t, json.Unmarshal([]byte(`[]`), &page))

	assert.Equal(t, 0, page.Count)
	assert.Empty(t, page.Results)
}

func TestPage_UnmarshalInvalid(t *testing.T) {
	var page Page[Movie]
	assert.Error(t, json.Unmarshal([]byte(`[{"id": "not-a-number"}]`), &page))
	assert.Error(t, json.Unmarshal([]byte(`{"results": "not-an-array"}`), &page))
}
