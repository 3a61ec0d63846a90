package rider_test

import (
	"testing"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/rider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRider(t *testing.T) *rider.Rider {
	t.Helper()
	r, err := rider.NewRider(kernel.NewUUID(), "Karim", "karim@example.com", "Dhaka", time.Now())
	require.NoError(t, err)
	return r
}

func TestNewRider(t *testing.T) {
	t.Run("starts pending and unavailable", func(t *testing.T) {
		r := newTestRider(t)

		assert.Equal(t, rider.ApprovalPending, r.ApprovalStatus())
		assert.Equal(t, rider.Unavailable, r.WorkStatus())
		require.NoError(t, r.Validate())
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		now := time.Now()
		_, err := rider.NewRider(kernel.NewUUID(), "", "k@e.com", "Dhaka", now)
		require.ErrorIs(t, err, rider.ErrNameIsRequired)

		_, err = rider.NewRider(kernel.NewUUID(), "Karim", "", "Dhaka", now)
		require.ErrorIs(t, err, rider.ErrEmailIsRequired)

		_, err = rider.NewRider(kernel.NewUUID(), "Karim", "k@e.com", "", now)
		require.ErrorIs(t, err, rider.ErrDistrictIsRequired)

		_, err = rider.NewRider(kernel.UUID{}, "Karim", "k@e.com", "Dhaka", now)
		require.Error(t, err)
	})
}

func TestRider_Validate_ZeroValue(t *testing.T) {
	var r rider.Rider
	require.ErrorIs(t, r.Validate(), rider.ErrRiderIsNotConstructed)
}

func TestRider_Approve(t *testing.T) {
	t.Run("approval makes rider available", func(t *testing.T) {
		r := newTestRider(t)

		require.NoError(t, r.Approve())

		assert.Equal(t, rider.Approved, r.ApprovalStatus())
		assert.Equal(t, rider.Available, r.WorkStatus())
	})

	t.Run("cannot approve twice", func(t *testing.T) {
		r := newTestRider(t)
		require.NoError(t, r.Approve())
		require.Error(t, r.Approve())
	})

	t.Run("cannot approve a rejected rider", func(t *testing.T) {
		r := newTestRider(t)
		require.NoError(t, r.Reject())
		require.Error(t, r.Approve())
	})
}

func TestRider_Reject(t *testing.T) {
	r := newTestRider(t)

	require.NoError(t, r.Reject())

	assert.Equal(t, rider.Rejected, r.ApprovalStatus())
	// Rejection must not touch availability.
	assert.Equal(t, rider.Unavailable, r.WorkStatus())
}

func TestRider_StartDelivery(t *testing.T) {
	t.Run("available rider starts delivery", func(t *testing.T) {
		r := newTestRider(t)
		require.NoError(t, r.Approve())

		require.NoError(t, r.StartDelivery())
		assert.Equal(t, rider.InDelivery, r.WorkStatus())
	})

	t.Run("unapproved rider cannot start", func(t *testing.T) {
		r := newTestRider(t)
		require.Error(t, r.StartDelivery())
	})

	t.Run("rider already delivering cannot start", func(t *testing.T) {
		r := newTestRider(t)
		require.NoError(t, r.Approve())
		require.NoError(t, r.StartDelivery())
		require.Error(t, r.StartDelivery())
	})
}

func TestRestoreRider(t *testing.T) {
	id := kernel.NewUUID()
	now := time.Now()

	r, err := rider.RestoreRider(id, "Karim", "k@e.com", "Dhaka", rider.Approved, rider.InDelivery, now)
	require.NoError(t, err)
	assert.Equal(t, rider.InDelivery, r.WorkStatus())

	_, err = rider.RestoreRider(id, "Karim", "k@e.com", "Dhaka", rider.ApprovalStatusUnknown, rider.Available, now)
	require.Error(t, err)

	_, err = rider.RestoreRider(id, "Karim", "k@e.com", "Dhaka", rider.Approved, rider.WorkStatus(9), now)
	require.Error(t, err)
}

func TestApprovalStatusRoundTrip(t *testing.T) {
	for _, s := range []rider.ApprovalStatus{rider.ApprovalPending, rider.Approved, rider.Rejected} {
		parsed, err := rider.ApprovalStatusFromString(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := rider.ApprovalStatusFromString("banned")
	require.Error(t, err)
}

func TestWorkStatusRoundTrip(t *testing.T) {
	for _, s := range []rider.WorkStatus{rider.Unavailable, rider.Available, rider.InDelivery} {
		parsed, err := rider.WorkStatusFromString(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := rider.WorkStatusFromString("busy")
	require.Error(t, err)
}
