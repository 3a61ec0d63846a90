package commands

import (
	"context"
	"time"

	"zapshift/internal/core/domain/model/rider"
)

// CreateRiderCommandHandler handles the business logic for rider applications.
// Creates and persists rider entities awaiting admin approval.
type CreateRiderCommandHandler struct {
	uowFactory RiderUoWFactory
}

// NewCreateRiderCommandHandler creates a handler for rider applications.
// Requires a RiderUoWFactory for transactional persistence operations.
func NewCreateRiderCommandHandler(uowFactory RiderUoWFactory) CreateRiderCommandHandler {
	return CreateRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rider application command.
// Creates a new rider entity in the pending approval state and persists it
// within a transaction.
func (h *CreateRiderCommandHandler) Handle(ctx context.Context, cmd CreateRiderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	riderRepo := uow.RiderRepository()
	riderEntity, err := rider.NewRider(cmd.RiderID(), cmd.Name(), cmd.Email(), cmd.District(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = riderRepo.Add(ctx, riderEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
