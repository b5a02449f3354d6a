package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApproachNeverCrossesZero(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		step float64
		want float64
	}{
		{"positive", 5, 2, 3},
		{"positive_overshoot", 1, 2, 0},
		{"negative", -5, 2, -3},
		{"negative_overshoot", -1, 2, 0},
		{"zero", 0, 2, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Approach(tc.v, tc.step))
		})
	}
}

func TestSnapToZero(t *testing.T) {
	assert.Equal(t, 0.0, SnapToZero(0.19, 0.2))
	assert.Equal(t, 0.0, SnapToZero(-0.19, 0.2))
	assert.Equal(t, 0.2, SnapToZero(0.2, 0.2))
}
