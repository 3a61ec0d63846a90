package commands

import (
	"errors"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/guard"
)

var ErrRemoveRiderCommandIsNotConstructed = errors.New(
	"RemoveRiderCommand must be created via NewRemoveRiderCommand constructor",
)

// RemoveRiderCommand represents an admin request to delete a rider.
type RemoveRiderCommand struct { //nolint:recvcheck //using for validation
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveRiderCommand creates a command to delete a rider.
func NewRemoveRiderCommand(riderID kernel.UUID) (RemoveRiderCommand, error) {
	command := RemoveRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setRiderID(riderID); err != nil {
		return RemoveRiderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveRiderCommand) Validate() error {
	return c.guard.Validate(ErrRemoveRiderCommandIsNotConstructed)
}

// RiderID returns the rider ID from the command.
func (c RemoveRiderCommand) RiderID() kernel.UUID {
	return c.riderID
}

func (c *RemoveRiderCommand) setRiderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.riderID = id
	return nil
}
