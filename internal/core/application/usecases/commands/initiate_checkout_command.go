package commands

import (
	"errors"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/guard"
)

var ErrInitiateCheckoutCommandIsNotConstructed = errors.New(
	"InitiateCheckoutCommand must be created via NewInitiateCheckoutCommand constructor",
)

// InitiateCheckoutCommand represents a request to open a payment session for
// a parcel. Opening a session does not mutate the store; parcels transition
// only when the payment is later reconciled.
type InitiateCheckoutCommand struct { //nolint:recvcheck //using for validation
	parcelID    kernel.UUID
	parcelName  string
	cost        int64
	senderEmail string

	guard guard.ConstructorGuard
}

// NewInitiateCheckoutCommand creates a command to open a checkout session.
// Validates that the parcel reference is complete and the cost is positive.
func NewInitiateCheckoutCommand(
	parcelID kernel.UUID,
	parcelName string,
	cost int64,
	senderEmail string,
) (InitiateCheckoutCommand, error) {
	command := InitiateCheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setParcelID(parcelID),
		command.setParcelName(parcelName),
		command.setCost(cost),
		command.setSenderEmail(senderEmail),
	); err != nil {
		return InitiateCheckoutCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrInitiateCheckoutCommandIsNotConstructed if validation fails.
func (c InitiateCheckoutCommand) Validate() error {
	return c.guard.Validate(ErrInitiateCheckoutCommandIsNotConstructed)
}

// ParcelID returns the parcel ID the session is scoped to.
func (c InitiateCheckoutCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// ParcelName returns the parcel name carried as session metadata.
func (c InitiateCheckoutCommand) ParcelName() string {
	return c.parcelName
}

// Cost returns the amount to charge in whole currency units.
func (c InitiateCheckoutCommand) Cost() int64 {
	return c.cost
}

// SenderEmail returns the payer email for the session.
func (c InitiateCheckoutCommand) SenderEmail() string {
	return c.senderEmail
}

func (c *InitiateCheckoutCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.parcelID = id
	return nil
}

func (c *InitiateCheckoutCommand) setParcelName(name string) error {
	if name == "" {
		return ErrParcelNameIsRequired
	}

	c.parcelName = name
	return nil
}

func (c *InitiateCheckoutCommand) setCost(cost int64) error {
	if cost <= 0 {
		return ErrCostIsInvalid
	}

	c.cost = cost
	return nil
}

func (c *InitiateCheckoutCommand) setSenderEmail(email string) error {
	if email == "" {
		return ErrSenderEmailIsRequired
	}

	c.senderEmail = email
	return nil
}
