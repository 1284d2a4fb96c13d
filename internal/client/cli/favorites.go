package cli

import (
	"context"
	"fmt"
	"strconv"
)

func (c *Cli) runFavorites(ctx context.Context, args []string) error {
	page := 0
	if len(args) > 0 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid page number: %s", args[0])
		}
		page = parsed
	}

	result, err := c.movies.Favorites(ctx, page)
	if err != nil {
		c.printError(err)
		return err
	}

	if len(result.Results) == 0 {
		c.io.Println("No favorites yet.")
		return nil
	}

	c.io.Printf("%d favorite(s):\n", result.Count)
	c.io.Println()
	for _, favorite := range result.Results {
		// id записи нужен для удаления, id фильма — для остальных команд
		c.io.Printf("  #%-5d %-40s %d  (movie #%d)\n",
			favorite.ID, truncate(favorite.Movie.Title, 40), favorite.Movie.Year, favorite.Movie.ID)
	}
	if result.Next != nil {
		c.io.Println()
		c.io.Println("More results on the next page.")
	}

	return nil
}

func (c *Cli) runFavorite(ctx context.Context, args []string) error {
	id, err := movieID(args)
	if err != nil {
		return err
	}

	favorite, err := c.movies.AddFavorite(ctx, id)
	if err != nil {
		c.printError(err)
		return err
	}

	c.io.Printf("✓ %q added to favorites (#%d).\n", favorite.Movie.Title, favorite.ID)
	return nil
}

func (c *Cli) runUnfavorite(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("favorite id is required (see 'filmoteka favorites')")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid favorite id: %s", args[0])
	}

	if err := c.movies.RemoveFavorite(ctx, id); err != nil {
		c.printError(err)
		return err
	}

	c.io.Printf("✓ Favorite #%d removed.\n", id)
	return nil
}
