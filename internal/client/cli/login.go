package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	if err := c.session.Login(ctx, email, password); err != nil {
		c.printError(err)
		return err
	}

	user := c.session.User()
	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Signed in as: %s <%s>\n", user.Username, user.Email)

	return nil
}
