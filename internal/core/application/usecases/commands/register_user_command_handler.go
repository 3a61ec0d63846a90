package commands

import (
	"context"
	"errors"
	"time"

	"zapshift/internal/core/domain/model/user"
	"zapshift/internal/pkg/errs"
)

// RegisterUserCommandHandler handles the business logic for account registration.
// Rejects duplicate registrations so one email maps to exactly one profile.
//
// Example:
//
//	handler := NewRegisterUserCommandHandler(uowFactory)
//	cmd, _ := NewRegisterUserCommand("alice@example.com", "Alice")
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectAlreadyExists) {
//	    log.Println("Account already registered")
//	}
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for account registration.
// Requires a UserUoWFactory for transactional persistence operations.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
// Returns errs.ErrObjectAlreadyExists when the email is already registered.
// The existence check and insert run in one transaction.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
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

	_, err := userRepo.GetByEmail(ctx, cmd.Email())
	if err == nil {
		return errs.NewObjectAlreadyExistsError("email", cmd.Email())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	userEntity, err := user.NewUser(cmd.UserID(), cmd.Email(), cmd.Name(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = userRepo.Add(ctx, userEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
