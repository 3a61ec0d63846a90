package commands

import (
	"context"
)

// SetUserRoleCommandHandler applies admin role changes to accounts.
type SetUserRoleCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewSetUserRoleCommandHandler creates a handler for account role changes.
// Requires a UserUoWFactory for transactional persistence operations.
func NewSetUserRoleCommandHandler(uowFactory UserUoWFactory) SetUserRoleCommandHandler {
	return SetUserRoleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the role change command.
// Returns errs.ErrObjectNotFound when no account exists under the given ID.
func (h *SetUserRoleCommandHandler) Handle(ctx context.Context, cmd SetUserRoleCommand) error {
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

	userRepo := uow.UserRepository()

	userEntity, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err = userEntity.SetRole(cmd.Role()); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, userEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
