package order_test

import (
	"strings"
	"testing"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	assert.Equal(t, "pending", order.Pending.String())
	assert.Equal(t, "in_progress", order.InProgress.String())
	assert.Equal(t, "ready", order.Ready.String())
	assert.Equal(t, "completed", order.Completed.String())
}

func TestStatus_IsKnown(t *testing.T) {
	for _, s := range []order.Status{order.Pending, order.InProgress, order.Ready, order.Completed} {
		assert.True(t, s.IsKnown(), s.String())
	}
	assert.False(t, order.Status("delivered").IsKnown())
	assert.False(t, order.Status("").IsKnown())
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.Status("").Validate())
	require.NoError(t, order.Status("cancelled").Validate())
	require.NoError(t, order.Status(strings.Repeat("a", order.MaxStatusLength)).Validate())

	err := order.Status(strings.Repeat("a", order.MaxStatusLength+1)).Validate()
	require.Error(t, err)
	assert.IsType(t, &errs.ValueIsOutOfRangeError{}, err)
	assert.Contains(t, err.Error(), "status length")
}

func TestStatus_Claim(t *testing.T) {
	testCases := []struct {
		name    string
		from    order.Status
		to      order.Status
		wantErr bool
	}{
		{name: "pending to in_progress", from: order.Pending, to: order.InProgress},
		{name: "pending to custom", from: order.Pending, to: order.Status("baking")},
		{name: "pending to pending", from: order.Pending, to: order.Pending, wantErr: true},
		{name: "ready to in_progress", from: order.Ready, to: order.InProgress, wantErr: true},
		{name: "completed to in_progress", from: order.Completed, to: order.InProgress, wantErr: true},
		{name: "too long target", from: order.Pending, to: order.Status(strings.Repeat("a", 65)), wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.from.Claim(tc.to)

			if tc.wantErr {
				require.Error(t, err)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.to, got)
		})
	}
}
