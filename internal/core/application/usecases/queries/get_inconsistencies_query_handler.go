package queries

import (
	"context"
	"database/sql"

	"zapshift/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetInconsistenciesQueryHandler scans for parcels whose coupled writes are
// out of sync. Run periodically by the consistency audit job.
type GetInconsistenciesQueryHandler struct {
	db *gorm.DB
}

// NewGetInconsistenciesQueryHandler creates a handler for consistency audits.
// Requires a GORM database connection for query execution.
func NewGetInconsistenciesQueryHandler(db *gorm.DB) GetInconsistenciesQueryHandler {
	return GetInconsistenciesQueryHandler{db: db}
}

// Handle executes the audit.
// Returns one row per violating parcel; an empty slice means the store honors
// both cross-entity invariants.
func (h GetInconsistenciesQueryHandler) Handle(
	ctx context.Context,
	query GetInconsistenciesQuery,
) ([]InconsistencyResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT p.id, p.tracking_id, ? AS kind
		FROM parcels p
		LEFT JOIN payments pay ON pay.parcel_id = p.id
		WHERE p.payment_status = 'paid' AND pay.id IS NULL

		UNION ALL

		SELECT p.id, p.tracking_id, ? AS kind
		FROM parcels p
		LEFT JOIN riders r ON r.id = p.rider_id
		WHERE p.delivery_status = 'deliver-assigned'
		  AND (r.id IS NULL OR r.work_status != 'in-delivery')
	`, InconsistencyMissingLedgerRecord, InconsistencyRiderNotInDelivery).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	findings := make([]InconsistencyResponse, 0)

	for rows.Next() {
		var resp InconsistencyResponse
		var id uuid.UUID
		var trackingID sql.NullString

		if err = rows.Scan(&id, &trackingID, &resp.Kind); err != nil {
			return nil, err
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ParcelID = parcelID
		resp.TrackingID = trackingID.String
		findings = append(findings, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return findings, nil
}
