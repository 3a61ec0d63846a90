package commands_test

import (
	"errors"
	"testing"

	"zapshift/internal/core/application/usecases/commands"
	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInitiateCheckoutCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	parcelID := kernel.NewUUID()

	cmd, err := commands.NewInitiateCheckoutCommand(parcelID, "Documents", 150, "alice@example.com")
	require.NoError(t, err)

	expectedHandle := ports.SessionHandle{
		ID:          "cs_test_abc123",
		RedirectURL: "https://checkout.example.com/cs_test_abc123",
	}

	mockGateway := new(MockCheckoutGateway)
	mockGateway.On("CreateSession", ctx, ports.CreateSessionRequest{
		ParcelID:    parcelID,
		ParcelName:  "Documents",
		AmountUnits: 150,
		SenderEmail: "alice@example.com",
	}).Return(expectedHandle, nil).Once()

	handler := commands.NewInitiateCheckoutCommandHandler(mockGateway)

	// Act
	handle, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, expectedHandle, handle)
	mockGateway.AssertExpectations(t)
}

func TestInitiateCheckoutCommandHandler_Handle_GatewayError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewInitiateCheckoutCommand(kernel.NewUUID(), "Documents", 150, "alice@example.com")
	require.NoError(t, err)

	expectedError := errors.New("processor unavailable")
	mockGateway := new(MockCheckoutGateway)
	mockGateway.On("CreateSession", ctx, mock.AnythingOfType("ports.CreateSessionRequest")).
		Return(ports.SessionHandle{}, expectedError).Once()

	handler := commands.NewInitiateCheckoutCommandHandler(mockGateway)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	mockGateway.AssertExpectations(t)
}

func TestInitiateCheckoutCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.InitiateCheckoutCommand

	mockGateway := new(MockCheckoutGateway)
	handler := commands.NewInitiateCheckoutCommandHandler(mockGateway)

	// Act
	_, err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrInitiateCheckoutCommandIsNotConstructed)
	mockGateway.AssertExpectations(t)
}

func TestNewInitiateCheckoutCommand_Validation(t *testing.T) {
	parcelID := kernel.NewUUID()

	_, err := commands.NewInitiateCheckoutCommand(parcelID, "", 150, "alice@example.com")
	require.ErrorIs(t, err, commands.ErrParcelNameIsRequired)

	_, err = commands.NewInitiateCheckoutCommand(parcelID, "Documents", 0, "alice@example.com")
	require.ErrorIs(t, err, commands.ErrCostIsInvalid)

	_, err = commands.NewInitiateCheckoutCommand(parcelID, "Documents", 150, "")
	require.ErrorIs(t, err, commands.ErrSenderEmailIsRequired)
}
