package commands

import (
	"context"
	"errors"

	"zapshift/internal/core/domain/model/rider"
	"zapshift/internal/pkg/errs"
)

// SetRiderApprovalCommandHandler applies admin decisions to rider applications.
// Approval makes the rider available for work and, when an account exists for
// the rider's email, promotes that account to the rider role. Both writes
// commit in one transaction. Rejection touches the rider only.
type SetRiderApprovalCommandHandler struct {
	uowFactory ApprovalUoWFactory
}

// NewSetRiderApprovalCommandHandler creates a handler for approval decisions.
// Requires an ApprovalUoWFactory for the coupled rider+user write.
func NewSetRiderApprovalCommandHandler(uowFactory ApprovalUoWFactory) SetRiderApprovalCommandHandler {
	return SetRiderApprovalCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the approval decision command.
// A missing account for an approved rider's email is not an error: the role
// promotion simply has nothing to apply to.
func (h *SetRiderApprovalCommandHandler) Handle(ctx context.Context, cmd SetRiderApprovalCommand) error {
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

	riderEntity, err := riderRepo.Get(ctx, cmd.RiderID())
	if err != nil {
		return err
	}

	switch cmd.Decision() {
	case rider.Approved:
		err = riderEntity.Approve()
	case rider.Rejected:
		err = riderEntity.Reject()
	default:
		err = errs.NewValueIsInvalidError("decision")
	}
	if err != nil {
		return err
	}

	if err = riderRepo.Update(ctx, riderEntity); err != nil {
		return err
	}

	if cmd.Decision() == rider.Approved {
		if err = h.promoteAccount(ctx, uow, riderEntity.Email()); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h *SetRiderApprovalCommandHandler) promoteAccount(ctx context.Context, uow ApprovalUoW, email string) error {
	userRepo := uow.UserRepository()

	userEntity, err := userRepo.GetByEmail(ctx, email)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	userEntity.PromoteToRider()

	return userRepo.Update(ctx, userEntity)
}
