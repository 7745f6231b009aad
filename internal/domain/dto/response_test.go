//go:build !integration

package dto

import (
	"encoding/json"
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorResponse_WithRequestID(t *testing.T) {
	err := NewError(ErrCodeInternal, "test error").WithRequestID("test-id")

	assert.Equal(t, "test-id", err.RequestID)
	assert.Equal(t, ErrCodeInternal, err.Error)
	assert.Equal(t, "test error", err.Message)
}

func TestErrCodeFromStatus(t *testing.T) {
	tests := []struct {
		status       int
		expectedCode string
	}{
		{400, ErrCodeInvalidRequest},
		{404, ErrCodeNotFound},
		{408, ErrCodeTimeout},
		{409, ErrCodeConflict},
		{429, ErrCodeRateLimit},
		{504, ErrCodeTimeout},
		{500, ErrCodeInternal},
		{502, ErrCodeInternal},
		{503, ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expectedCode, ErrCodeFromStatus(tt.status))
		})
	}
}

func TestNewError(t *testing.T) {
	err := NewError(ErrCodeInvalidRequest, "test message")

	assert.Equal(t, ErrCodeInvalidRequest, err.Error)
	assert.Equal(t, "test message", err.Message)
	assert.WithinDuration(t, time.Now(), err.Timestamp, time.Second)
}

func TestSessionView_JSON(t *testing.T) {
	view := SessionView{
		ID:              "abc",
		Headcount:       700,
		Step:            100,
		Tier:            "Enterprise",
		TierCost:        150,
		AnnualSavings:   decimal.NewFromInt(-588000),
		Currency:        "USD",
		ActiveToolCount: 1,
		MinActiveTools:  3,
		BelowFloor:      true,
		Digits:          []DigitStrip{{Digit: 1, OffsetPx: -32}},
	}

	raw, err := json.Marshal(view)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "-588000", decoded["annual_savings"])
	assert.Equal(t, true, decoded["below_floor"])
	assert.Equal(t, float64(3), decoded["min_active_tools"])

	digits, ok := decoded["digits"].([]interface{})
	require.True(t, ok)
	require.Len(t, digits, 1)
	assert.Equal(t, float64(-32), digits[0].(map[string]interface{})["offset_px"])
}
