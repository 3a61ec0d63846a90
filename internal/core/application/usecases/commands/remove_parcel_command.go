package commands

import (
	"errors"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/guard"
)

var ErrRemoveParcelCommandIsNotConstructed = errors.New(
	"RemoveParcelCommand must be created via NewRemoveParcelCommand constructor",
)

// RemoveParcelCommand represents a request to delete a parcel.
type RemoveParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveParcelCommand creates a command to delete a parcel.
func NewRemoveParcelCommand(parcelID kernel.UUID) (RemoveParcelCommand, error) {
	command := RemoveParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setParcelID(parcelID); err != nil {
		return RemoveParcelCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveParcelCommand) Validate() error {
	return c.guard.Validate(ErrRemoveParcelCommandIsNotConstructed)
}

// ParcelID returns the parcel ID from the command.
func (c RemoveParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c *RemoveParcelCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.parcelID = id
	return nil
}
