package commands

import (
	"errors"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/guard"
)

var (
	ErrCreateRiderCommandIsNotConstructed = errors.New(
		"CreateRiderCommand must be created via NewCreateRiderCommand constructor",
	)
	ErrRiderNameIsRequired     = errors.New("rider name is required")
	ErrRiderEmailIsRequired    = errors.New("rider email is required")
	ErrRiderDistrictIsRequired = errors.New("rider district is required")
)

// CreateRiderCommand represents an application to join the delivery fleet.
// New riders start in the pending approval queue.
type CreateRiderCommand struct { //nolint:recvcheck //using for validation
	riderID  kernel.UUID
	name     string
	email    string
	district string

	guard guard.ConstructorGuard
}

// NewCreateRiderCommand creates a command to register a rider application.
// Automatically generates a unique ID for the rider.
// Validates that name, email, and district are not empty.
func NewCreateRiderCommand(name, email, district string) (CreateRiderCommand, error) {
	command := CreateRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRiderID(kernel.NewUUID()),
		command.setName(name),
		command.setEmail(email),
		command.setDistrict(district),
	); err != nil {
		return CreateRiderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateRiderCommandIsNotConstructed if validation fails.
func (c CreateRiderCommand) Validate() error {
	return c.guard.Validate(ErrCreateRiderCommandIsNotConstructed)
}

// RiderID returns the generated rider ID from the command.
func (c CreateRiderCommand) RiderID() kernel.UUID {
	return c.riderID
}

// Name returns the rider name from the command.
func (c CreateRiderCommand) Name() string {
	return c.name
}

// Email returns the rider email from the command.
func (c CreateRiderCommand) Email() string {
	return c.email
}

// District returns the rider's service district from the command.
func (c CreateRiderCommand) District() string {
	return c.district
}

func (c *CreateRiderCommand) setRiderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.riderID = id
	return nil
}

func (c *CreateRiderCommand) setName(name string) error {
	if name == "" {
		return ErrRiderNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateRiderCommand) setEmail(email string) error {
	if email == "" {
		return ErrRiderEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *CreateRiderCommand) setDistrict(district string) error {
	if district == "" {
		return ErrRiderDistrictIsRequired
	}

	c.district = district
	return nil
}
