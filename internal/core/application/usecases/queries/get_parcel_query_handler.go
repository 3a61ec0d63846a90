package queries

import (
	"context"

	"zapshift/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetParcelQueryHandler retrieves a single parcel read model from the database.
type GetParcelQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelQueryHandler creates a handler for single-parcel queries.
// Requires a GORM database connection for query execution.
func NewGetParcelQueryHandler(db *gorm.DB) GetParcelQueryHandler {
	return GetParcelQueryHandler{db: db}
}

// Handle executes the query to retrieve one parcel.
// Returns errs.ErrObjectNotFound when no parcel exists under the given ID.
func (h GetParcelQueryHandler) Handle(ctx context.Context, query GetParcelQuery) (ParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return ParcelResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			sender_email,
			cost,
			delivery_status,
			payment_status,
			tracking_id,
			rider_id,
			rider_name,
			rider_email,
			created_at
		FROM parcels
		WHERE id = ?
	`, query.ParcelID().String()).Rows()
	if err != nil {
		return ParcelResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ParcelResponse{}, err
		}
		return ParcelResponse{}, errs.NewObjectNotFoundError("parcelId", query.ParcelID())
	}

	return scanParcelResponse(rows)
}
