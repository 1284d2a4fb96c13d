package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/filmoteka/internal/client/auth"
	pkgapi "github.com/iudanet/filmoteka/pkg/api"
)

func (c *Cli) runProfile(ctx context.Context) error {
	c.session.Bootstrap(ctx)
	if c.session.State() != auth.StateAuthenticated {
		return fmt.Errorf("not authenticated. Please run 'filmoteka login' first")
	}

	// Перечитываем профиль, чтобы показать свежие серверные изменения
	if err := c.session.RefreshProfile(ctx); err != nil {
		c.printError(err)
		return err
	}

	user := c.session.User()
	c.io.Println("=== Profile ===")
	c.io.Printf("ID:         %d\n", user.ID)
	c.io.Printf("Username:   %s\n", user.Username)
	c.io.Printf("Email:      %s\n", user.Email)
	c.io.Printf("First name: %s\n", user.FirstName)
	c.io.Printf("Last name:  %s\n", user.LastName)
	c.io.Printf("Joined:     %s\n", user.DateJoined)
	if user.IsStaff {
		c.io.Println("Role:       staff")
	}

	return nil
}

func (c *Cli) runUpdateProfile(ctx context.Context) error {
	c.session.Bootstrap(ctx)
	if c.session.State() != auth.StateAuthenticated {
		return fmt.Errorf("not authenticated. Please run 'filmoteka login' first")
	}

	c.io.Println("=== Update Profile ===")
	c.io.Println("Leave a field empty to keep its current value.")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}
	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	firstName, err := c.io.ReadInput("First name: ")
	if err != nil {
		return fmt.Errorf("failed to read first name: %w", err)
	}
	lastName, err := c.io.ReadInput("Last name: ")
	if err != nil {
		return fmt.Errorf("failed to read last name: %w", err)
	}

	req := pkgapi.ProfileUpdateRequest{
		Username:  username,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
	}

	if err := c.session.UpdateProfile(ctx, req); err != nil {
		c.printError(err)
		return err
	}

	c.io.Println()
	c.io.Println("✓ Profile updated!")

	return nil
}
