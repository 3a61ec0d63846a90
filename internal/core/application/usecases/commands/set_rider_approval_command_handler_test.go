package commands_test

import (
	"context"
	"testing"
	"time"

	"zapshift/internal/core/application/usecases/commands"
	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/rider"
	"zapshift/internal/core/domain/model/user"
	"zapshift/internal/core/ports"
	"zapshift/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockApprovalRiderRepository struct {
	mock.Mock
}

func (m *MockApprovalRiderRepository) Add(ctx context.Context, r *rider.Rider) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockApprovalRiderRepository) Update(ctx context.Context, r *rider.Rider) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockApprovalRiderRepository) Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rider.Rider), args.Error(1)
}

func (m *MockApprovalRiderRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockApprovalUserRepository struct {
	mock.Mock
}

func (m *MockApprovalUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockApprovalUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockApprovalUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockApprovalUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockApprovalUoW struct {
	mock.Mock
}

func (m *MockApprovalUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockApprovalUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockApprovalUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockApprovalUoW) RiderRepository() ports.RiderRepository {
	args := m.Called()
	return args.Get(0).(ports.RiderRepository)
}

func (m *MockApprovalUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockApprovalUoWFactory struct {
	mock.Mock
}

func (m *MockApprovalUoWFactory) Create() commands.ApprovalUoW {
	args := m.Called()
	return args.Get(0).(commands.ApprovalUoW)
}

func newPendingRider(t *testing.T) *rider.Rider {
	t.Helper()

	r, err := rider.NewRider(kernel.NewUUID(), "Bob", "bob@example.com", "Dhaka", time.Now().UTC())
	require.NoError(t, err)
	return r
}

func newRegisteredUser(t *testing.T, email string) *user.User {
	t.Helper()

	u, err := user.NewUser(kernel.NewUUID(), email, "Bob", time.Now().UTC())
	require.NoError(t, err)
	return u
}

func TestSetRiderApprovalCommandHandler_Handle_ApprovePromotesAccount(t *testing.T) {
	// Arrange
	ctx := t.Context()
	riderEntity := newPendingRider(t)
	userEntity := newRegisteredUser(t, riderEntity.Email())

	cmd, err := commands.NewSetRiderApprovalCommand(riderEntity.ID(), rider.Approved)
	require.NoError(t, err)

	mockRiderRepo := new(MockApprovalRiderRepository)
	mockUserRepo := new(MockApprovalUserRepository)
	mockUoW := new(MockApprovalUoW)
	mockFactory := new(MockApprovalUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("RiderRepository").Return(mockRiderRepo).Once(),
		mockRiderRepo.On("Get", ctx, riderEntity.ID()).Return(riderEntity, nil).Once(),
		mockRiderRepo.On("Update", ctx, riderEntity).Return(nil).Once(),
		mockUoW.On("UserRepository").Return(mockUserRepo).Once(),
		mockUserRepo.On("GetByEmail", ctx, riderEntity.Email()).Return(userEntity, nil).Once(),
		mockUserRepo.On("Update", ctx, userEntity).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewSetRiderApprovalCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, rider.Approved, riderEntity.ApprovalStatus())
	assert.Equal(t, rider.Available, riderEntity.WorkStatus())
	assert.Equal(t, user.RoleRider, userEntity.Role())

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRiderRepo.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
}

func TestSetRiderApprovalCommandHandler_Handle_ApproveWithoutAccount(t *testing.T) {
	// Arrange
	ctx := t.Context()
	riderEntity := newPendingRider(t)

	cmd, err := commands.NewSetRiderApprovalCommand(riderEntity.ID(), rider.Approved)
	require.NoError(t, err)

	mockRiderRepo := new(MockApprovalRiderRepository)
	mockUserRepo := new(MockApprovalUserRepository)
	mockUoW := new(MockApprovalUoW)
	mockFactory := new(MockApprovalUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("RiderRepository").Return(mockRiderRepo).Once(),
		mockRiderRepo.On("Get", ctx, riderEntity.ID()).Return(riderEntity, nil).Once(),
		mockRiderRepo.On("Update", ctx, riderEntity).Return(nil).Once(),
		mockUoW.On("UserRepository").Return(mockUserRepo).Once(),
		mockUserRepo.On("GetByEmail", ctx, riderEntity.Email()).
			Return(nil, errs.NewObjectNotFoundError("email", riderEntity.Email())).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewSetRiderApprovalCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	// A missing account is not an error; the approval still commits.
	require.NoError(t, err)
	assert.Equal(t, rider.Approved, riderEntity.ApprovalStatus())

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRiderRepo.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
}

func TestSetRiderApprovalCommandHandler_Handle_RejectTouchesRiderOnly(t *testing.T) {
	// Arrange
	ctx := t.Context()
	riderEntity := newPendingRider(t)

	cmd, err := commands.NewSetRiderApprovalCommand(riderEntity.ID(), rider.Rejected)
	require.NoError(t, err)

	mockRiderRepo := new(MockApprovalRiderRepository)
	mockUoW := new(MockApprovalUoW)
	mockFactory := new(MockApprovalUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("RiderRepository").Return(mockRiderRepo).Once(),
		mockRiderRepo.On("Get", ctx, riderEntity.ID()).Return(riderEntity, nil).Once(),
		mockRiderRepo.On("Update", ctx, riderEntity).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewSetRiderApprovalCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, rider.Rejected, riderEntity.ApprovalStatus())
	assert.Equal(t, rider.Unavailable, riderEntity.WorkStatus())

	// The user repository is never touched on rejection.
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRiderRepo.AssertExpectations(t)
}

func TestSetRiderApprovalCommandHandler_Handle_AlreadyDecided(t *testing.T) {
	// Arrange
	ctx := t.Context()
	riderEntity := newPendingRider(t)
	require.NoError(t, riderEntity.Reject())

	cmd, err := commands.NewSetRiderApprovalCommand(riderEntity.ID(), rider.Approved)
	require.NoError(t, err)

	mockRiderRepo := new(MockApprovalRiderRepository)
	mockUoW := new(MockApprovalUoW)
	mockFactory := new(MockApprovalUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("RiderRepository").Return(mockRiderRepo).Once(),
		mockRiderRepo.On("Get", ctx, riderEntity.ID()).Return(riderEntity, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewSetRiderApprovalCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, rider.Rejected, riderEntity.ApprovalStatus())

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRiderRepo.AssertExpectations(t)
}
