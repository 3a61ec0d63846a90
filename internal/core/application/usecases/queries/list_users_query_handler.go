package queries

import (
	"context"

	"zapshift/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListUsersQueryHandler retrieves account read models from the database.
type ListUsersQueryHandler struct {
	db *gorm.DB
}

// NewListUsersQueryHandler creates a handler for account listing queries.
// Requires a GORM database connection for query execution.
func NewListUsersQueryHandler(db *gorm.DB) ListUsersQueryHandler {
	return ListUsersQueryHandler{db: db}
}

// Handle executes the query to retrieve accounts, newest first.
// A non-empty search term matches email or display name case-insensitively.
func (h ListUsersQueryHandler) Handle(ctx context.Context, query ListUsersQuery) ([]UserResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT
			id,
			email,
			name,
			role,
			created_at
		FROM users
	`
	args := make([]any, 0, 2)

	if query.Search() != "" {
		sqlText += " WHERE email ILIKE ? OR name ILIKE ?"
		pattern := "%" + query.Search() + "%"
		args = append(args, pattern, pattern)
	}
	sqlText += " ORDER BY created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]UserResponse, 0)

	for rows.Next() {
		var resp UserResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Email,
			&resp.Name,
			&resp.Role,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		userID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = userID
		users = append(users, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
