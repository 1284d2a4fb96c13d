package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/iudanet/filmoteka/internal/client/movies"
	pkgapi "github.com/iudanet/filmoteka/pkg/api"
)

func (c *Cli) runMovies(ctx context.Context, args []string) error {
	page := 0
	if len(args) > 0 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid page number: %s", args[0])
		}
		page = parsed
	}

	result, err := c.movies.List(ctx, page, 0)
	if err != nil {
		c.printError(err)
		return err
	}

	c.printMoviePage(result)
	return nil
}

func (c *Cli) runSearch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: filmoteka search QUERY [PAGE]")
	}

	params := movies.SearchParams{Query: args[0]}
	if len(args) > 1 {
		page, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid page number: %s", args[1])
		}
		params.Page = page
	}

	result, err := c.movies.Search(ctx, params)
	if err != nil {
		c.printError(err)
		return err
	}

	c.printMoviePage(result)
	return nil
}

func (c *Cli) runMovie(ctx context.Context, args []string) error {
	id, err := movieID(args)
	if err != nil {
		return err
	}

	movie, err := c.movies.Get(ctx, id)
	if err != nil {
		c.printError(err)
		return err
	}

	c.io.Printf("=== %s (%d) ===\n", movie.Title, movie.Year)
	c.io.Printf("Genre:    %s\n", movie.Genre)
	c.io.Printf("Duration: %d min\n", movie.Duration)
	c.io.Printf("Rating:   %.1f\n", movie.AverageRating)
	c.io.Printf("Likes:    %d\n", movie.LikesCount)
	c.io.Println()
	c.io.Println(movie.Description)

	return nil
}

func (c *Cli) printMoviePage(page *pkgapi.Page[pkgapi.Movie]) {
	if len(page.Results) == 0 {
		c.io.Println("No movies found.")
		return
	}

	c.io.Printf("Found %d movie(s):\n", page.Count)
	c.io.Println()
	for _, movie := range page.Results {
		c.io.Printf("  #%-5d %-40s %d  %-12s ★%.1f\n",
			movie.ID, truncate(movie.Title, 40), movie.Year, movie.Genre, movie.AverageRating)
	}
	if page.Next != nil {
		c.io.Println()
		c.io.Println("More results on the next page.")
	}
}

// movieID разбирает обязательный первый аргумент-идентификатор
func movieID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("movie id is required")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid movie id: %s", args[0])
	}
	return id, nil
}

// truncate режет по рунам: байтовый срез ломал бы кириллические названия
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return strings.TrimSpace(string(runes[:maxLen-3])) + "..."
}
