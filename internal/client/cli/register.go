package cli

import (
	"context"
	"fmt"

	pkgapi "github.com/iudanet/filmoteka/pkg/api"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Register ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	firstName, err := c.io.ReadInput("First name (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read first name: %w", err)
	}

	lastName, err := c.io.ReadInput("Last name (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read last name: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	passwordConfirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read password confirmation: %w", err)
	}

	c.io.Println()
	c.io.Println("Creating account...")

	req := pkgapi.RegisterRequest{
		Username:        username,
		Email:           email,
		FirstName:       firstName,
		LastName:        lastName,
		Password:        password,
		PasswordConfirm: passwordConfirm,
	}

	if err := c.session.Register(ctx, req); err != nil {
		c.printError(err)
		return err
	}

	user := c.session.User()
	c.io.Println()
	c.io.Println("✓ Registration successful!")
	c.io.Printf("Signed in as: %s <%s>\n", user.Username, user.Email)

	return nil
}
