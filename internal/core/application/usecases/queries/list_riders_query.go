package queries

import (
	"errors"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/rider"
	"zapshift/internal/pkg/guard"
)

var ErrListRidersQueryIsNotConstructed = errors.New(
	"ListRidersQuery must be created via NewListRidersQuery constructor",
)

// ListRidersQuery retrieves riders filtered by approval status, district, and
// work status. All filters are optional. The approval filter is how the admin
// panel separates the pending application queue from the active fleet.
type ListRidersQuery struct {
	approvalStatus string
	district       string
	workStatus     string

	guard guard.ConstructorGuard
}

// NewListRidersQuery creates a rider listing query.
// Empty strings disable the corresponding filter; non-empty status filters
// must be known status strings.
func NewListRidersQuery(approvalStatus, district, workStatus string) (ListRidersQuery, error) {
	if approvalStatus != "" {
		if _, err := rider.ApprovalStatusFromString(approvalStatus); err != nil {
			return ListRidersQuery{}, err
		}
	}
	if workStatus != "" {
		if _, err := rider.WorkStatusFromString(workStatus); err != nil {
			return ListRidersQuery{}, err
		}
	}

	return ListRidersQuery{
		approvalStatus: approvalStatus,
		district:       district,
		workStatus:     workStatus,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListRidersQueryIsNotConstructed if validation fails.
func (q ListRidersQuery) Validate() error {
	return q.guard.Validate(ErrListRidersQueryIsNotConstructed)
}

// ApprovalStatus returns the approval status filter, empty for no filtering.
func (q ListRidersQuery) ApprovalStatus() string {
	return q.approvalStatus
}

// District returns the district filter, empty for no filtering.
func (q ListRidersQuery) District() string {
	return q.district
}

// WorkStatus returns the work status filter, empty for no filtering.
func (q ListRidersQuery) WorkStatus() string {
	return q.workStatus
}

// RiderResponse is the flat read model for a rider.
type RiderResponse struct {
	ID             kernel.UUID
	Name           string
	Email          string
	District       string
	ApprovalStatus string
	WorkStatus     string
	CreatedAt      time.Time
}
