package queries

import (
	"errors"

	"zapshift/internal/pkg/guard"
)

var (
	ErrGetUserRoleQueryIsNotConstructed = errors.New(
		"GetUserRoleQuery must be created via NewGetUserRoleQuery constructor",
	)
	ErrEmailIsRequired = errors.New("email is required")
)

// GetUserRoleQuery resolves the authorization role for an email.
// Used by the transport layer to gate admin-only routes.
type GetUserRoleQuery struct {
	email string

	guard guard.ConstructorGuard
}

// NewGetUserRoleQuery creates a role lookup query.
// Validates that the email is not empty.
func NewGetUserRoleQuery(email string) (GetUserRoleQuery, error) {
	if email == "" {
		return GetUserRoleQuery{}, ErrEmailIsRequired
	}

	return GetUserRoleQuery{
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUserRoleQueryIsNotConstructed if validation fails.
func (q GetUserRoleQuery) Validate() error {
	return q.guard.Validate(ErrGetUserRoleQueryIsNotConstructed)
}

// Email returns the email from the query.
func (q GetUserRoleQuery) Email() string {
	return q.email
}
