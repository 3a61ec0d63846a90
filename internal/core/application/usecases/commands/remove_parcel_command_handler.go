package commands

import (
	"context"
)

// RemoveParcelCommandHandler deletes parcels from the store.
// Caller authorization (sender or admin) is enforced at the transport layer.
type RemoveParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewRemoveParcelCommandHandler creates a handler for parcel deletion.
func NewRemoveParcelCommandHandler(uowFactory ParcelUoWFactory) RemoveParcelCommandHandler {
	return RemoveParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the parcel deletion command.
// Returns errs.ErrObjectNotFound when no parcel exists under the given ID.
func (h *RemoveParcelCommandHandler) Handle(ctx context.Context, cmd RemoveParcelCommand) error {
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

	if err := uow.ParcelRepository().Remove(ctx, cmd.ParcelID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
