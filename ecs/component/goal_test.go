package component

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
)

func TestGoalContains(t *testing.T) {
	g := Goal{Point: cp.Vector{X: 100, Y: 100}, Radius: 50}

	assert.True(t, g.Contains(cp.Vector{X: 100, Y: 100}))
	assert.True(t, g.Contains(cp.Vector{X: 150, Y: 100}))
	assert.False(t, g.Contains(cp.Vector{X: 151, Y: 100}))
}

func TestGoalArrowAlpha(t *testing.T) {
	g := Goal{Point: cp.Vector{}, SafeDistance: 200}

	cases := []struct {
		name string
		x    float64
		want float64
	}{
		{"far", 1000, 1},
		{"band_edge", 300, 1},
		{"halfway", 250, 0.5},
		{"safe_edge", 200, 0},
		{"inside", 10, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.want, g.ArrowAlpha(cp.Vector{X: c.x}), 1e-12)
		})
	}

	assert.Equal(t, 1.0, (&Goal{}).ArrowAlpha(cp.Vector{}))
}
