package queries

import (
	"context"

	"zapshift/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListPaymentsQueryHandler retrieves ledger read models from the database.
type ListPaymentsQueryHandler struct {
	db *gorm.DB
}

// NewListPaymentsQueryHandler creates a handler for payment history queries.
// Requires a GORM database connection for query execution.
func NewListPaymentsQueryHandler(db *gorm.DB) ListPaymentsQueryHandler {
	return ListPaymentsQueryHandler{db: db}
}

// Handle executes the query to retrieve ledger records, most recent first.
// Applies the payer scope when present.
func (h ListPaymentsQueryHandler) Handle(ctx context.Context, query ListPaymentsQuery) ([]PaymentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT
			id,
			amount,
			currency,
			payer_email,
			parcel_id,
			parcel_name,
			transaction_id,
			tracking_id,
			paid_at
		FROM payments
	`
	args := make([]any, 0, 1)

	if query.PayerEmail() != "" {
		sqlText += " WHERE payer_email = ?"
		args = append(args, query.PayerEmail())
	}
	sqlText += " ORDER BY paid_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]PaymentResponse, 0)

	for rows.Next() {
		var resp PaymentResponse
		var id, parcelID uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Amount,
			&resp.Currency,
			&resp.PayerEmail,
			&parcelID,
			&resp.ParcelName,
			&resp.TransactionID,
			&resp.TrackingID,
			&resp.PaidAt,
		)
		if err != nil {
			return nil, err
		}

		recordID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = recordID

		recordParcelID, idErr := kernel.UUIDFromBytes(parcelID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ParcelID = recordParcelID

		payments = append(payments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
