package queries

import (
	"context"
	"database/sql"

	"zapshift/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListParcelsQueryHandler retrieves parcel read models from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type ListParcelsQueryHandler struct {
	db *gorm.DB
}

// NewListParcelsQueryHandler creates a handler for parcel listing queries.
// Requires a GORM database connection for query execution.
func NewListParcelsQueryHandler(db *gorm.DB) ListParcelsQueryHandler {
	return ListParcelsQueryHandler{db: db}
}

// Handle executes the query to retrieve parcels, newest first.
// Applies the sender and delivery status filters when present.
func (h ListParcelsQueryHandler) Handle(ctx context.Context, query ListParcelsQuery) ([]ParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
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
		WHERE 1=1
	`
	args := make([]any, 0, 2)

	if query.SenderEmail() != "" {
		sqlText += " AND sender_email = ?"
		args = append(args, query.SenderEmail())
	}
	if query.DeliveryStatus() != "" {
		sqlText += " AND delivery_status = ?"
		args = append(args, query.DeliveryStatus())
	}
	sqlText += " ORDER BY created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parcels := make([]ParcelResponse, 0)

	for rows.Next() {
		resp, scanErr := scanParcelResponse(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		parcels = append(parcels, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}

// scanParcelResponse reads one parcel row, folding the nullable tracking and
// rider columns into empty strings.
func scanParcelResponse(rows *sql.Rows) (ParcelResponse, error) {
	var resp ParcelResponse
	var id uuid.UUID
	var trackingID, riderID, riderName, riderEmail sql.NullString

	err := rows.Scan(
		&id,
		&resp.Name,
		&resp.SenderEmail,
		&resp.Cost,
		&resp.DeliveryStatus,
		&resp.PaymentStatus,
		&trackingID,
		&riderID,
		&riderName,
		&riderEmail,
		&resp.CreatedAt,
	)
	if err != nil {
		return ParcelResponse{}, err
	}

	parcelID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ParcelResponse{}, err
	}

	resp.ID = parcelID
	resp.TrackingID = trackingID.String
	resp.RiderID = riderID.String
	resp.RiderName = riderName.String
	resp.RiderEmail = riderEmail.String
	return resp, nil
}
