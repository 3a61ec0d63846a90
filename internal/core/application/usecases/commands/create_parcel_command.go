package commands

import (
	"errors"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/guard"
)

var (
	ErrCreateParcelCommandIsNotConstructed = errors.New(
		"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
	)
	ErrParcelNameIsRequired  = errors.New("parcel name is required")
	ErrSenderEmailIsRequired = errors.New("sender email is required")
	ErrCostIsInvalid         = errors.New("cost must be greater than 0")
)

// CreateParcelCommand represents a request to register a new parcel shipment.
// Encapsulates all data needed to create a parcel awaiting payment.
//
// Example:
//
//	cmd, err := NewCreateParcelCommand("Laptop sleeve", "alice@example.com", 120)
//	if err != nil {
//	    return fmt.Errorf("invalid parcel data: %w", err)
//	}
//
//	handler := NewCreateParcelCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create parcel: %w", err)
//	}
//	fmt.Printf("Created parcel with ID: %s", cmd.ParcelID())
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID    kernel.UUID
	name        string
	senderEmail string
	cost        int64

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a new parcel.
// Automatically generates a unique ID for the parcel.
// Validates that name and sender email are not empty and cost is positive.
func NewCreateParcelCommand(name, senderEmail string, cost int64) (CreateParcelCommand, error) {
	command := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setParcelID(kernel.NewUUID()),
		command.setName(name),
		command.setSenderEmail(senderEmail),
		command.setCost(cost),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateParcelCommandIsNotConstructed if validation fails.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the generated parcel ID from the command.
func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Name returns the parcel name from the command.
func (c CreateParcelCommand) Name() string {
	return c.name
}

// SenderEmail returns the sender email from the command.
func (c CreateParcelCommand) SenderEmail() string {
	return c.senderEmail
}

// Cost returns the declared delivery cost in whole currency units.
func (c CreateParcelCommand) Cost() int64 {
	return c.cost
}

func (c *CreateParcelCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.parcelID = id
	return nil
}

func (c *CreateParcelCommand) setName(name string) error {
	if name == "" {
		return ErrParcelNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateParcelCommand) setSenderEmail(email string) error {
	if email == "" {
		return ErrSenderEmailIsRequired
	}

	c.senderEmail = email
	return nil
}

func (c *CreateParcelCommand) setCost(cost int64) error {
	if cost <= 0 {
		return ErrCostIsInvalid
	}

	c.cost = cost
	return nil
}
