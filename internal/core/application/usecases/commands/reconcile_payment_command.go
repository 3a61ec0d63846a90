package commands

import (
	"errors"

	"zapshift/internal/pkg/guard"
)

var (
	ErrReconcilePaymentCommandIsNotConstructed = errors.New(
		"ReconcilePaymentCommand must be created via NewReconcilePaymentCommand constructor",
	)
	ErrSessionIDIsRequired = errors.New("session ID is required")
)

// ReconcilePaymentCommand represents a request to confirm a checkout session
// against the payment processor and settle its parcel.
type ReconcilePaymentCommand struct { //nolint:recvcheck //using for validation
	sessionID string

	guard guard.ConstructorGuard
}

// NewReconcilePaymentCommand creates a command to reconcile a checkout session.
// Validates that the session ID is not empty.
func NewReconcilePaymentCommand(sessionID string) (ReconcilePaymentCommand, error) {
	command := ReconcilePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setSessionID(sessionID); err != nil {
		return ReconcilePaymentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReconcilePaymentCommandIsNotConstructed if validation fails.
func (c ReconcilePaymentCommand) Validate() error {
	return c.guard.Validate(ErrReconcilePaymentCommandIsNotConstructed)
}

// SessionID returns the checkout session identifier from the command.
func (c ReconcilePaymentCommand) SessionID() string {
	return c.sessionID
}

func (c *ReconcilePaymentCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return ErrSessionIDIsRequired
	}

	c.sessionID = sessionID
	return nil
}
