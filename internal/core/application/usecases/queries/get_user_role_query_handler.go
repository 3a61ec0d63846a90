package queries

import (
	"context"

	"zapshift/internal/core/domain/model/user"

	"gorm.io/gorm"
)

// GetUserRoleQueryHandler resolves account roles from the database.
type GetUserRoleQueryHandler struct {
	db *gorm.DB
}

// NewGetUserRoleQueryHandler creates a handler for role lookups.
// Requires a GORM database connection for query execution.
func NewGetUserRoleQueryHandler(db *gorm.DB) GetUserRoleQueryHandler {
	return GetUserRoleQueryHandler{db: db}
}

// Handle executes the role lookup.
// An email with no registered account resolves to the base user role rather
// than an error, so authorization checks degrade to least privilege.
func (h GetUserRoleQueryHandler) Handle(ctx context.Context, query GetUserRoleQuery) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT role
		FROM users
		WHERE email = ?
	`, query.Email()).Rows()
	if err != nil {
		return "", err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return "", err
		}
		return user.RoleUser.String(), nil
	}

	var role string
	if err = rows.Scan(&role); err != nil {
		return "", err
	}

	return role, nil
}
