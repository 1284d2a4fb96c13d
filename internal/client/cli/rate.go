package cli

import (
	"context"
	"fmt"
	"strconv"
)

func (c *Cli) runRate(ctx context.Context, args []string) error {
	id, err := movieID(args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("usage: filmoteka rate MOVIE_ID SCORE")
	}

	score, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid score: %s", args[1])
	}

	rating, err := c.movies.Rate(ctx, id, score)
	if err != nil {
		c.printError(err)
		return err
	}

	c.io.Printf("✓ Rated %s: %d/5 (average now %.1f)\n", rating.Movie, rating.Score, rating.AverageRating)
	return nil
}
