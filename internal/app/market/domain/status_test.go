package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProductStatus(t *testing.T) {
	t.Run("accepts the three enumerants", func(t *testing.T) {
		for _, s := range []string{"available", "cancelled", "sold"} {
			status, err := ParseProductStatus(s)
			require.NoError(t, err)
			assert.Equal(t, ProductStatus(s), status)
		}
	})

	t.Run("rejects anything else", func(t *testing.T) {
		for _, s := range []string{"", "Available", "SOLD", "archived", "sold "} {
			_, err := ParseProductStatus(s)
			assert.ErrorIs(t, err, ErrInvalidStatus, "input %q", s)
		}
	})
}

// TestValidateStatusTransition covers the full 3x3 matrix.
//
//	From\To    | available | cancelled | sold
//	-----------|-----------|-----------|------
//	available  | same      | ok        | ok
//	cancelled  | ok        | same      | already sold
//	sold       | ok        | already cancelled | same
func TestValidateStatusTransition(t *testing.T) {
	tests := []struct {
		current   ProductStatus
		requested ProductStatus
		wantErr   error
	}{
		{StatusAvailable, StatusAvailable, ErrSameStatus},
		{StatusAvailable, StatusCancelled, nil},
		{StatusAvailable, StatusSold, nil},
		{StatusCancelled, StatusAvailable, nil},
		{StatusCancelled, StatusCancelled, ErrSameStatus},
		{StatusCancelled, StatusSold, ErrAlreadySold},
		{StatusSold, StatusAvailable, nil},
		{StatusSold, StatusCancelled, ErrAlreadyCancelled},
		{StatusSold, StatusSold, ErrSameStatus},
	}

	for _, tt := range tests {
		t.Run(string(tt.current)+" → "+string(tt.requested), func(t *testing.T) {
			err := ValidateStatusTransition(tt.current, tt.requested)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}

	t.Run("malformed requested status", func(t *testing.T) {
		err := ValidateStatusTransition(StatusAvailable, ProductStatus("archived"))
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}
