package queries

import (
	"errors"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/guard"
)

var ErrListUsersQueryIsNotConstructed = errors.New(
	"ListUsersQuery must be created via NewListUsersQuery constructor",
)

// ListUsersQuery retrieves accounts with an optional case-insensitive search
// over email and display name. Results are newest first.
type ListUsersQuery struct {
	search string

	guard guard.ConstructorGuard
}

// NewListUsersQuery creates an account listing query.
// An empty search string returns all accounts.
func NewListUsersQuery(search string) ListUsersQuery {
	return ListUsersQuery{
		search: search,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListUsersQueryIsNotConstructed if validation fails.
func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}

// Search returns the search term, empty for no filtering.
func (q ListUsersQuery) Search() string {
	return q.search
}

// UserResponse is the flat read model for an account.
type UserResponse struct {
	ID        kernel.UUID
	Email     string
	Name      string
	Role      string
	CreatedAt time.Time
}
