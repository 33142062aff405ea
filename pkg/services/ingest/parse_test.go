package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrders(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected int
		wantErr  bool
		shapeErr bool
	}{
		{
			name:     "bare array",
			payload:  `[{"restaurantName":"Thai Basil","date":"Jun 1","time":"6:00 PM","total":"$20.00","canceled":false}]`,
			expected: 1,
		},
		{
			name:     "wrapped object",
			payload:  `{"orders":[{"restaurantName":"A","date":"Jun 1","time":"6:00 PM","total":"$20.00"},{"restaurantName":"B","date":"May 1","time":"1:00 PM","total":"$10.00"}]}`,
			expected: 2,
		},
		{
			name:     "empty array",
			payload:  `[]`,
			expected: 0,
		},
		{
			name:     "wrapped empty array",
			payload:  `{"orders":[]}`,
			expected: 0,
		},
		{
			name:     "wrapped null",
			payload:  `{"orders":null}`,
			expected: 0,
		},
		{
			name:     "object without orders field",
			payload:  `{"items":[]}`,
			wantErr:  true,
			shapeErr: true,
		},
		{
			name:     "scalar payload",
			payload:  `"not orders"`,
			wantErr:  true,
			shapeErr: true,
		},
		{
			name:     "empty payload",
			payload:  ``,
			wantErr:  true,
			shapeErr: true,
		},
		{
			name:    "malformed array",
			payload: `[{"restaurantName":`,
			wantErr: true,
		},
		{
			name:    "orders field is not an array",
			payload: `{"orders":"lots"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders, err := ParseOrders([]byte(tt.payload))
			if tt.wantErr {
				require.Error(t, err)
				if tt.shapeErr {
					assert.ErrorIs(t, err, ErrUnexpectedShape)
				}
				return
			}
			require.NoError(t, err)
			assert.Len(t, orders, tt.expected)
		})
	}
}

func TestParseOrders_FieldMapping(t *testing.T) {
	payload := `[{"restaurantName":"Thai Basil","date":"Jun 1","time":"6:00 PM","total":"$20.00","canceled":true}]`

	orders, err := ParseOrders([]byte(payload))
	require.NoError(t, err)
	require.Len(t, orders, 1)

	assert.Equal(t, "Thai Basil", orders[0].RestaurantName)
	assert.Equal(t, "Jun 1", orders[0].Date)
	assert.Equal(t, "6:00 PM", orders[0].Time)
	assert.Equal(t, "$20.00", orders[0].Total)
	assert.True(t, orders[0].Canceled)
}
