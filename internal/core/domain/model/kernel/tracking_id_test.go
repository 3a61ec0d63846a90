package kernel_test

import (
	"regexp"
	"testing"
	"time"

	"zapshift/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTrackingID_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^ZAP-\d{8}-[0-9A-F]{6}$`)

	for range 100 {
		id := kernel.GenerateTrackingID()
		assert.Regexp(t, pattern, id.String())
	}
}

func TestGenerateTrackingID_ContainsTodayUTC(t *testing.T) {
	id := kernel.GenerateTrackingID()
	assert.Contains(t, id.String(), time.Now().UTC().Format("20060102"))
}

func TestGenerateTrackingID_IsValid(t *testing.T) {
	id := kernel.GenerateTrackingID()
	require.NoError(t, id.Validate())
}

func TestTrackingIDFromString(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id, err := kernel.TrackingIDFromString("ZAP-20240521-9F3C1A")
		require.NoError(t, err)
		assert.Equal(t, "ZAP-20240521-9F3C1A", id.String())
	})

	t.Run("round trip", func(t *testing.T) {
		generated := kernel.GenerateTrackingID()
		parsed, err := kernel.TrackingIDFromString(generated.String())
		require.NoError(t, err)
		assert.True(t, parsed.IsEqual(generated))
	})

	t.Run("invalid", func(t *testing.T) {
		for _, s := range []string{
			"",
			"ZAP-20240521",
			"ZAP-20240521-9f3c1a", // lowercase suffix
			"XYZ-20240521-9F3C1A", // wrong prefix
			"ZAP-2024052-9F3C1A",  // short date
			"ZAP-20240521-9F3C1AB",
		} {
			_, err := kernel.TrackingIDFromString(s)
			require.Error(t, err, s)
		}
	})
}

func TestTrackingID_Validate_ZeroValue(t *testing.T) {
	var id kernel.TrackingID
	require.Error(t, id.Validate())
}
