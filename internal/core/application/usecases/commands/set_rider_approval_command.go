package commands

import (
	"errors"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/rider"
	"zapshift/internal/pkg/guard"
)

var ErrSetRiderApprovalCommandIsNotConstructed = errors.New(
	"SetRiderApprovalCommand must be created via NewSetRiderApprovalCommand constructor",
)

// SetRiderApprovalCommand represents an admin decision on a pending rider
// application.
type SetRiderApprovalCommand struct { //nolint:recvcheck //using for validation
	riderID  kernel.UUID
	decision rider.ApprovalStatus

	guard guard.ConstructorGuard
}

// NewSetRiderApprovalCommand creates a command to decide a rider application.
// The decision must be a valid approval status; whether it is a legal decision
// for the rider's current state is checked by the domain when applied.
func NewSetRiderApprovalCommand(riderID kernel.UUID, decision rider.ApprovalStatus) (SetRiderApprovalCommand, error) {
	command := SetRiderApprovalCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRiderID(riderID),
		command.setDecision(decision),
	); err != nil {
		return SetRiderApprovalCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetRiderApprovalCommandIsNotConstructed if validation fails.
func (c SetRiderApprovalCommand) Validate() error {
	return c.guard.Validate(ErrSetRiderApprovalCommandIsNotConstructed)
}

// RiderID returns the rider ID from the command.
func (c SetRiderApprovalCommand) RiderID() kernel.UUID {
	return c.riderID
}

// Decision returns the approval decision from the command.
func (c SetRiderApprovalCommand) Decision() rider.ApprovalStatus {
	return c.decision
}

func (c *SetRiderApprovalCommand) setRiderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.riderID = id
	return nil
}

func (c *SetRiderApprovalCommand) setDecision(decision rider.ApprovalStatus) error {
	if err := decision.Validate(); err != nil {
		return err
	}

	c.decision = decision
	return nil
}
