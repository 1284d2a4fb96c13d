package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

func (c *Cli) runComments(ctx context.Context, args []string) error {
	id, err := movieID(args)
	if err != nil {
		return err
	}

	page := 0
	if len(args) > 1 {
		parsed, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid page number: %s", args[1])
		}
		page = parsed
	}

	result, err := c.movies.Comments(ctx, id, page)
	if err != nil {
		c.printError(err)
		return err
	}

	if len(result.Results) == 0 {
		c.io.Println("No comments yet.")
		return nil
	}

	c.io.Printf("%d comment(s):\n", result.Count)
	c.io.Println()
	for _, comment := range result.Results {
		c.io.Printf("#%d %s (♥%d):\n", comment.ID, comment.User, comment.LikesCount)
		c.io.Printf("  %s\n", comment.Text)
		for _, reply := range comment.Replies {
			c.io.Printf("    ↳ %s: %s\n", reply.User, reply.Text)
		}
	}

	return nil
}

func (c *Cli) runComment(ctx context.Context, args []string) error {
	id, err := movieID(args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("usage: filmoteka comment MOVIE_ID TEXT")
	}

	text := strings.Join(args[1:], " ")

	comment, err := c.movies.CreateComment(ctx, id, text, nil)
	if err != nil {
		c.printError(err)
		return err
	}

	c.io.Printf("✓ Comment #%d added.\n", comment.ID)
	return nil
}
