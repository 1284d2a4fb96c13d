package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

func (c *Cli) runUploadVideo(ctx context.Context, args []string) error {
	id, err := movieID(args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("usage: filmoteka upload-video MOVIE_ID FILE")
	}

	path := args[1]
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open video file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	c.io.Printf("Uploading %s...\n", path)

	movie, err := c.movies.UploadVideo(ctx, id, filepath.Base(path), file)
	if err != nil {
		c.printError(err)
		return err
	}

	c.io.Printf("✓ Video uploaded for %q.\n", movie.Title)
	return nil
}
