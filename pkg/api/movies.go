package api

import (
	"bytes"
	"encoding/json"
)

// Movie представляет фильм в каталоге
type Movie struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Year          int     `json:"year"`
	Genre         string  `json:"genre"`
	Duration      int     `json:"duration"` // длительность в минутах
	Poster        string  `json:"poster"`
	AverageRating float64 `json:"average_rating"`
	LikesCount    int     `json:"likes_count"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// CommentReply представляет вложенный ответ на комментарий
type CommentReply struct {
	ID         int64  `json:"id"`
	User       string `json:"user"`
	Text       string `json:"text"`
	Parent     *int64 `json:"parent"`
	LikesCount int    `json:"likes_count"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// Comment представляет комментарий к фильму
type Comment struct {
	ID         int64          `json:"id"`
	Movie      string         `json:"movie"`
	User       string         `json:"user"`
	Text       string         `json:"text"`
	Parent     *int64         `json:"parent"`
	LikesCount int            `json:"likes_count"`
	Replies    []CommentReply `json:"replies"`
	CreatedAt  string         `json:"created_at"`
	UpdatedAt  string         `json:"updated_at"`
}

// Rating представляет оценку фильма пользователем
type Rating struct {
	ID            int64   `json:"id"`
	Score         int     `json:"score"`
	User          string  `json:"user"`
	Movie         string  `json:"movie"`
	AverageRating float64 `json:"average_rating"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// CommentCreateRequest представляет запрос на создание комментария
type CommentCreateRequest struct {
	Text   string `json:"text"`
	Parent *int64 `json:"parent,omitempty"`
}

// RateRequest представляет запрос на выставление оценки
type RateRequest struct {
	Score int `json:"score"`
}

// Допустимые значения content_type для лайков
const (
	LikeTargetMovie   = "movie"
	LikeTargetComment = "comment"
)

// LikeRequest представляет запрос на переключение лайка
type LikeRequest struct {
	ContentType string `json:"content_type"` // "movie" или "comment"
	ObjectID    int64  `json:"object_id"`
}

// LikeResponse представляет результат переключения лайка
type LikeResponse struct {
	Success    bool `json:"success"`
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likes_count"`
}

// Favorite представляет фильм в списке избранного пользователя
type Favorite struct {
	ID        int64  `json:"id"`
	Movie     Movie  `json:"movie"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// FavoriteRequest представляет запрос на добавление фильма в избранное
type FavoriteRequest struct {
	MovieID int64 `json:"movie_id"`
}

// FavoriteResponse представляет envelope ответа на добавление в избранное
type FavoriteResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    Favorite `json:"data"`
}

// MovieResponse представляет envelope ответа с одним фильмом
type MovieResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    Movie  `json:"data"`
}

// CommentResponse представляет envelope ответа с одним комментарием
type CommentResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Data    Comment `json:"data"`
}

// RatingResponse представляет envelope ответа с оценкой
type RatingResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    Rating `json:"data"`
}

// Page представляет страницу списочного ответа.
// Сервер обычно отдает envelope {count, next, previous, results}, но
// списочный endpoint может вернуть и голый массив — UnmarshalJSON
// нормализует обе формы к одной структуре.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

func (p *Page[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		// Голый массив: count = длине, курсоров нет
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		p.Count = len(items)
		p.Next = nil
		p.Previous = nil
		p.Results = items
		return nil
	}

	// Alias без метода, чтобы не зациклить UnmarshalJSON
	type page Page[T]
	var decoded page
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*p = Page[T](decoded)
	return nil
}
