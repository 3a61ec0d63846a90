package commands

import (
	"errors"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrUserEmailIsRequired = errors.New("user email is required")
	ErrUserNameIsRequired  = errors.New("user name is required")
)

// RegisterUserCommand represents a request to register an account profile.
// Accounts start with the base user role.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	email  string
	name   string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a new account.
// Automatically generates a unique ID for the user.
// Validates that email and name are not empty.
func NewRegisterUserCommand(email, name string) (RegisterUserCommand, error) {
	command := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUserID(kernel.NewUUID()),
		command.setEmail(email),
		command.setName(name),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterUserCommandIsNotConstructed if validation fails.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the generated user ID from the command.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Email returns the account email from the command.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Name returns the display name from the command.
func (c RegisterUserCommand) Name() string {
	return c.name
}

func (c *RegisterUserCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.userID = id
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if email == "" {
		return ErrUserEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *RegisterUserCommand) setName(name string) error {
	if name == "" {
		return ErrUserNameIsRequired
	}

	c.name = name
	return nil
}
