package commands

import (
	"context"

	"zapshift/internal/core/ports"
)

// InitiateCheckoutCommandHandler opens payment sessions with the external
// processor. It performs no store mutation: parcel state changes only when
// reconciliation later confirms the payment.
type InitiateCheckoutCommandHandler struct {
	gateway ports.CheckoutGateway
}

// NewInitiateCheckoutCommandHandler creates a handler for checkout initiation.
// Requires a CheckoutGateway for talking to the payment processor.
func NewInitiateCheckoutCommandHandler(gateway ports.CheckoutGateway) InitiateCheckoutCommandHandler {
	return InitiateCheckoutCommandHandler{
		gateway: gateway,
	}
}

// Handle opens a checkout session scoped to the command's parcel and returns
// the processor-hosted redirect handle for the payer.
func (h *InitiateCheckoutCommandHandler) Handle(
	ctx context.Context,
	cmd InitiateCheckoutCommand,
) (ports.SessionHandle, error) {
	if err := cmd.Validate(); err != nil {
		return ports.SessionHandle{}, err
	}

	return h.gateway.CreateSession(ctx, ports.CreateSessionRequest{
		ParcelID:    cmd.ParcelID(),
		ParcelName:  cmd.ParcelName(),
		AmountUnits: cmd.Cost(),
		SenderEmail: cmd.SenderEmail(),
	})
}
