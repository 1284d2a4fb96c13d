package cli

import (
	"context"

	"github.com/iudanet/filmoteka/internal/client/auth"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	// Bootstrap: если токен сохранен — пробуем поднять сессию по профилю
	c.session.Bootstrap(ctx)

	if c.session.State() != auth.StateAuthenticated {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'filmoteka login' to authenticate.")
		return nil
	}

	user := c.session.User()
	c.io.Println("Status: Authenticated")
	c.io.Printf("Username: %s\n", user.Username)
	c.io.Printf("Email:    %s\n", user.Email)
	if user.IsStaff {
		c.io.Println("Role:     staff")
	}

	return nil
}
