package cli

import (
	"context"
	"fmt"
	"strconv"
)

func (c *Cli) runLike(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: filmoteka like movie|comment ID")
	}

	contentType := args[0]
	objectID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid object id: %s", args[1])
	}

	result, err := c.movies.ToggleLike(ctx, contentType, objectID)
	if err != nil {
		c.printError(err)
		return err
	}

	if result.Liked {
		c.io.Printf("✓ Liked %s #%d (%d like(s) total)\n", contentType, objectID, result.LikesCount)
	} else {
		c.io.Printf("✓ Unliked %s #%d (%d like(s) total)\n", contentType, objectID, result.LikesCount)
	}

	return nil
}
