package commands

import (
	"context"
	"errors"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/payment"
	"zapshift/internal/core/ports"
	"zapshift/internal/pkg/errs"
)

// ReconcilePaymentResult reports the outcome of a reconciliation attempt.
// Success is false only when the processor has not collected the payment.
// AlreadyDone marks repeat calls for a transaction that was settled earlier;
// such calls return the originally issued tracking ID and mutate nothing.
type ReconcilePaymentResult struct {
	Success       bool
	AlreadyDone   bool
	TrackingID    kernel.TrackingID
	TransactionID string
	ParcelID      kernel.UUID
}

// ReconcilePaymentCommandHandler settles a paid checkout session: it issues a
// tracking ID, marks the parcel paid, and appends the payment to the ledger.
// The parcel update and the ledger insert commit in one transaction.
//
// The handler is safe to call any number of times for the same session. The
// ledger lookup by transaction identity short-circuits repeats, and the
// storage uniqueness constraint on that identity resolves the race between
// two concurrent first calls: the loser re-reads the winner's record.
//
// Example:
//
//	handler := NewReconcilePaymentCommandHandler(uowFactory, gateway)
//	cmd, _ := NewReconcilePaymentCommand("cs_test_abc123")
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ports.ErrSessionNotFound):
//	    log.Println("Unknown session")
//	case err != nil:
//	    log.Printf("Reconciliation failed: %v", err)
//	case !result.Success:
//	    log.Println("Payment not collected yet")
//	default:
//	    log.Printf("Settled, tracking %s", result.TrackingID)
//	}
type ReconcilePaymentCommandHandler struct {
	uowFactory ReconcileUoWFactory
	gateway    ports.CheckoutGateway
}

// NewReconcilePaymentCommandHandler creates a handler for payment reconciliation.
// Requires a ReconcileUoWFactory for the coupled parcel+ledger write and a
// CheckoutGateway for confirming sessions with the processor.
func NewReconcilePaymentCommandHandler(
	uowFactory ReconcileUoWFactory,
	gateway ports.CheckoutGateway,
) ReconcilePaymentCommandHandler {
	return ReconcilePaymentCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the reconciliation command.
// Confirms the session with the processor, then settles it transactionally.
// Returns ports.ErrSessionNotFound for unknown sessions, errs.ErrObjectNotFound
// when the session references a parcel that no longer exists, and a result
// with Success=false (and no error) when the payment was not collected.
func (h *ReconcilePaymentCommandHandler) Handle(
	ctx context.Context,
	cmd ReconcilePaymentCommand,
) (ReconcilePaymentResult, error) {
	if err := cmd.Validate(); err != nil {
		return ReconcilePaymentResult{}, err
	}

	session, err := h.gateway.RetrieveSession(ctx, cmd.SessionID())
	if err != nil {
		return ReconcilePaymentResult{}, err
	}

	if !session.Paid {
		return ReconcilePaymentResult{
			Success:       false,
			TransactionID: session.TransactionID,
			ParcelID:      session.ParcelID,
		}, nil
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return ReconcilePaymentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	paymentRepo := uow.PaymentRepository()

	existing, err := paymentRepo.GetByTransactionID(ctx, session.TransactionID)
	if err == nil {
		return alreadySettledResult(existing), nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return ReconcilePaymentResult{}, err
	}

	parcelRepo := uow.ParcelRepository()

	parcelEntity, err := parcelRepo.Get(ctx, session.ParcelID)
	if err != nil {
		return ReconcilePaymentResult{}, err
	}

	trackingID := kernel.GenerateTrackingID()
	if err = parcelEntity.MarkPaid(trackingID); err != nil {
		return ReconcilePaymentResult{}, err
	}

	if err = parcelRepo.Update(ctx, parcelEntity); err != nil {
		return ReconcilePaymentResult{}, err
	}

	record, err := payment.NewRecord(
		kernel.NewUUID(),
		session.AmountUnits,
		session.Currency,
		session.CustomerEmail,
		session.ParcelID,
		session.ParcelName,
		session.TransactionID,
		trackingID,
		time.Now().UTC(),
	)
	if err != nil {
		return ReconcilePaymentResult{}, err
	}

	if err = paymentRepo.Add(ctx, record); err != nil {
		// A concurrent reconciliation won the insert on the unique
		// transaction identity. Drop this transaction and report theirs.
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			_ = uow.Rollback(ctx)
			return h.settledByWinner(ctx, session.TransactionID)
		}
		return ReconcilePaymentResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ReconcilePaymentResult{}, err
	}

	return ReconcilePaymentResult{
		Success:       true,
		TrackingID:    trackingID,
		TransactionID: session.TransactionID,
		ParcelID:      session.ParcelID,
	}, nil
}

// settledByWinner re-reads the ledger outside the failed transaction to return
// the record committed by the concurrent winner.
func (h *ReconcilePaymentCommandHandler) settledByWinner(
	ctx context.Context,
	transactionID string,
) (ReconcilePaymentResult, error) {
	uow := h.uowFactory.Create()

	record, err := uow.PaymentRepository().GetByTransactionID(ctx, transactionID)
	if err != nil {
		return ReconcilePaymentResult{}, err
	}

	return alreadySettledResult(record), nil
}

func alreadySettledResult(record *payment.Record) ReconcilePaymentResult {
	return ReconcilePaymentResult{
		Success:       true,
		AlreadyDone:   true,
		TrackingID:    record.TrackingID(),
		TransactionID: record.TransactionID(),
		ParcelID:      record.ParcelID(),
	}
}
