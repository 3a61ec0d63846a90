package commands

import (
	"errors"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/user"
	"zapshift/internal/pkg/guard"
)

var ErrSetUserRoleCommandIsNotConstructed = errors.New(
	"SetUserRoleCommand must be created via NewSetUserRoleCommand constructor",
)

// SetUserRoleCommand represents an admin request to change an account's
// authorization role.
type SetUserRoleCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	role   user.Role

	guard guard.ConstructorGuard
}

// NewSetUserRoleCommand creates a command to change an account role.
// Validates the identifier and that the role is a known role.
func NewSetUserRoleCommand(userID kernel.UUID, role user.Role) (SetUserRoleCommand, error) {
	command := SetUserRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUserID(userID),
		command.setRole(role),
	); err != nil {
		return SetUserRoleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetUserRoleCommandIsNotConstructed if validation fails.
func (c SetUserRoleCommand) Validate() error {
	return c.guard.Validate(ErrSetUserRoleCommandIsNotConstructed)
}

// UserID returns the user ID from the command.
func (c SetUserRoleCommand) UserID() kernel.UUID {
	return c.userID
}

// Role returns the target role from the command.
func (c SetUserRoleCommand) Role() user.Role {
	return c.role
}

func (c *SetUserRoleCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.userID = id
	return nil
}

func (c *SetUserRoleCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
