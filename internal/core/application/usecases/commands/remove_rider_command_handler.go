package commands

import (
	"context"
)

// RemoveRiderCommandHandler deletes riders from the store.
// Admin-only; enforced at the transport layer.
type RemoveRiderCommandHandler struct {
	uowFactory RiderUoWFactory
}

// NewRemoveRiderCommandHandler creates a handler for rider deletion.
func NewRemoveRiderCommandHandler(uowFactory RiderUoWFactory) RemoveRiderCommandHandler {
	return RemoveRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rider deletion command.
// Returns errs.ErrObjectNotFound when no rider exists under the given ID.
func (h *RemoveRiderCommandHandler) Handle(ctx context.Context, cmd RemoveRiderCommand) error {
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

	if err := uow.RiderRepository().Remove(ctx, cmd.RiderID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
