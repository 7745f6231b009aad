//go:build !integration

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStep(t *testing.T) {
	tests := []struct {
		value    int
		expected int
	}{
		{1, 1},
		{9, 1},
		{10, 10},
		{99, 10},
		{100, 100},
		{1000, 100},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Step(tt.value), "step at %d", tt.value)
	}
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{name: "step 1 below 10", input: 7, expected: 7},
		{name: "step 10 floors", input: 47, expected: 40},
		{name: "step 100 floors", input: 733, expected: 700},
		{name: "exact 10", input: 10, expected: 10},
		{name: "exact 100", input: 100, expected: 100},
		{name: "99 floors to 90", input: 99, expected: 90},
		{name: "max stays", input: 1000, expected: 1000},
		{name: "zero clamps to min", input: 0, expected: 1},
		{name: "negative clamps to min", input: -40, expected: 1},
		{name: "above max clamps", input: 5000, expected: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Quantize(tt.input))
		})
	}
}

func TestQuantize_StaysInRange(t *testing.T) {
	for v := -10; v <= 1100; v++ {
		q := Quantize(v)
		assert.GreaterOrEqual(t, q, MinHeadcount)
		assert.LessOrEqual(t, q, MaxHeadcount)
		assert.Equal(t, q, Quantize(q), "quantize must be stable for %d", v)
	}
}

func TestSliderMarks(t *testing.T) {
	assert.Len(t, SliderMarks, 4)
	assert.Equal(t, MinHeadcount, SliderMarks[0].Value)
	assert.Equal(t, "1000+", SliderMarks[3].Label)
}
