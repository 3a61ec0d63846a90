package queries

import (
	"context"

	"zapshift/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListRidersQueryHandler retrieves rider read models from the database.
type ListRidersQueryHandler struct {
	db *gorm.DB
}

// NewListRidersQueryHandler creates a handler for rider listing queries.
// Requires a GORM database connection for query execution.
func NewListRidersQueryHandler(db *gorm.DB) ListRidersQueryHandler {
	return ListRidersQueryHandler{db: db}
}

// Handle executes the query to retrieve riders, newest application first.
// Applies the approval, district, and work status filters when present.
func (h ListRidersQueryHandler) Handle(ctx context.Context, query ListRidersQuery) ([]RiderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT
			id,
			name,
			email,
			district,
			approval_status,
			work_status,
			created_at
		FROM riders
		WHERE 1=1
	`
	args := make([]any, 0, 3)

	if query.ApprovalStatus() != "" {
		sqlText += " AND approval_status = ?"
		args = append(args, query.ApprovalStatus())
	}
	if query.District() != "" {
		sqlText += " AND district = ?"
		args = append(args, query.District())
	}
	if query.WorkStatus() != "" {
		sqlText += " AND work_status = ?"
		args = append(args, query.WorkStatus())
	}
	sqlText += " ORDER BY created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	riders := make([]RiderResponse, 0)

	for rows.Next() {
		var resp RiderResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Email,
			&resp.District,
			&resp.ApprovalStatus,
			&resp.WorkStatus,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		riderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = riderID
		riders = append(riders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return riders, nil
}
