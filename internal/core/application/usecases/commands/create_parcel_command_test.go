package commands_test

import (
	"testing"

	"zapshift/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateParcelCommand(t *testing.T) {
	tests := []struct {
		name        string
		parcelName  string
		senderEmail string
		cost        int64
		wantErr     error
	}{
		{
			name:        "valid command",
			parcelName:  "Documents",
			senderEmail: "alice@example.com",
			cost:        150,
		},
		{
			name:        "empty name",
			parcelName:  "",
			senderEmail: "alice@example.com",
			cost:        150,
			wantErr:     commands.ErrParcelNameIsRequired,
		},
		{
			name:        "empty sender email",
			parcelName:  "Documents",
			senderEmail: "",
			cost:        150,
			wantErr:     commands.ErrSenderEmailIsRequired,
		},
		{
			name:        "zero cost",
			parcelName:  "Documents",
			senderEmail: "alice@example.com",
			cost:        0,
			wantErr:     commands.ErrCostIsInvalid,
		},
		{
			name:        "negative cost",
			parcelName:  "Documents",
			senderEmail: "alice@example.com",
			cost:        -10,
			wantErr:     commands.ErrCostIsInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := commands.NewCreateParcelCommand(tt.parcelName, tt.senderEmail, tt.cost)

			if tt.wantErr != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NoError(t, cmd.Validate())
			assert.Equal(t, tt.parcelName, cmd.Name())
			assert.Equal(t, tt.senderEmail, cmd.SenderEmail())
			assert.Equal(t, tt.cost, cmd.Cost())
			assert.NoError(t, cmd.ParcelID().Validate())
		})
	}
}

func TestCreateParcelCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CreateParcelCommand

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateParcelCommandIsNotConstructed)
}

func TestNewCreateParcelCommand_GeneratesUniqueIDs(t *testing.T) {
	cmd1, err := commands.NewCreateParcelCommand("Parcel 1", "alice@example.com", 100)
	require.NoError(t, err)

	cmd2, err := commands.NewCreateParcelCommand("Parcel 2", "alice@example.com", 100)
	require.NoError(t, err)

	assert.NotEqual(t, cmd1.ParcelID(), cmd2.ParcelID(), "Different commands should generate unique parcel IDs")
}
