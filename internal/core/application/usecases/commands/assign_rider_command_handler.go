package commands

import (
	"context"

	"zapshift/internal/core/domain/model/parcel"
)

// AssignRiderCommandHandler orchestrates putting a rider on a parcel.
// The parcel must be paid and waiting for pickup, and the rider must be
// available for work. The parcel and rider updates commit in one transaction
// so an assigned parcel always has an in-delivery rider.
//
// Example:
//
//	handler := NewAssignRiderCommandHandler(uowFactory)
//	cmd, _ := NewAssignRiderCommand(parcelID, riderID)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Assignment failed: %v", err)
//	}
type AssignRiderCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAssignRiderCommandHandler creates a handler for rider assignment.
// Requires an AssignmentUoWFactory for the coupled parcel+rider write.
func NewAssignRiderCommandHandler(uowFactory AssignmentUoWFactory) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
// Loads both entities, applies the domain transitions, and persists them
// within a single transaction. The rider's name and email are snapshotted
// onto the parcel at assignment time.
func (h *AssignRiderCommandHandler) Handle(ctx context.Context, cmd AssignRiderCommand) error {
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

	parcelRepo := uow.ParcelRepository()
	riderRepo := uow.RiderRepository()

	parcelEntity, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	riderEntity, err := riderRepo.Get(ctx, cmd.RiderID())
	if err != nil {
		return err
	}

	if err = riderEntity.StartDelivery(); err != nil {
		return err
	}

	ref, err := parcel.NewRiderRef(riderEntity.ID(), riderEntity.Name(), riderEntity.Email())
	if err != nil {
		return err
	}

	if err = parcelEntity.AssignRider(ref); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, parcelEntity); err != nil {
		return err
	}

	if err = riderRepo.Update(ctx, riderEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
