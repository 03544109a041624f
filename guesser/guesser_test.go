package guesser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpBisectInitialGuessIsOne(t *testing.T) {
	g := NewExpBisect(0.5, 0.05)
	assert.Equal(t, 1.0, g.PCurr())
}

func TestExpBisectWidensOnAbove(t *testing.T) {
	g := NewExpBisect(0.5, 0.01)
	g.Above()
	assert.InDelta(t, 0.5, g.PCurr(), 1e-9) // 1 - 0.5*2^0
	g.Above()
	// 1 - 0.5*2^1 = 0.0 <= p_low, so the candidate clamps to p_low and the
	// guesser switches to bisection: PCurr is now the midpoint of (0.5, 0.01).
	assert.InDelta(t, 0.255, g.PCurr(), 1e-9)
}

func TestExpBisectSwitchesToBisectionOnBelow(t *testing.T) {
	g := NewExpBisect(0.5, 0.01)
	g.Above() // lower=0.5, upper=1.0
	g.Below() // starts bisection at same bounds
	assert.InDelta(t, 0.75, g.PCurr(), 1e-9)
	assert.True(t, g.Stop(), "(1 - 0.5/1.0) == gamma already satisfies the stop condition")
}

func TestExpBisectStopsWhenBoundsClose(t *testing.T) {
	g := NewExpBisect(0.5, 0.01)
	g.Above()
	g.Below()
	// (1 - lower/upper) = (1 - 0.5/1.0) = 0.5 <= gamma(0.5) -> stop already
	assert.True(t, g.Stop())
}

func TestGeometricAboveMultipliesByGamma(t *testing.T) {
	g := NewGeometric(0.5, 0.1)
	assert.Equal(t, 1.0, g.PCurr())
	g.Above()
	assert.Equal(t, 0.5, g.PCurr())
	g.Above()
	assert.Equal(t, 0.25, g.PCurr())
}

func TestGeometricStopsOnBelow(t *testing.T) {
	g := NewGeometric(0.5, 0.1)
	assert.False(t, g.Stop())
	g.Below()
	assert.True(t, g.Stop())
}

func TestGeometricStopsBelowFloor(t *testing.T) {
	g := NewGeometric(0.1, 0.5)
	g.Above() // 0.1 < 0.5
	assert.True(t, g.Stop())
}

func TestUniformStepsDown(t *testing.T) {
	g := NewUniform(0.1, 0.05)
	g.Above()
	assert.InDelta(t, 0.9, g.PCurr(), 1e-9)
	g.Above()
	assert.InDelta(t, 0.8, g.PCurr(), 1e-9)
}

func TestUniformStopsAtFloor(t *testing.T) {
	g := NewUniform(0.5, 0.5)
	g.Above()
	assert.True(t, g.Stop())
}

func TestScoreGuesserTracksBest(t *testing.T) {
	sg := NewScoreGuesser(NewExpBisect(0.5, 0.01))
	sg.Update(1.0) // first score always "best" -> Below
	assert.False(t, sg.Stop())
	sg.Update(0.5) // worse -> Above
	assert.False(t, sg.Stop())
}

func TestDirectionalDescendsThenBacktracks(t *testing.T) {
	d := NewDirectional(0.1, 0.01)
	d.Update(1.0) // improves -> step down
	assert.InDelta(t, 0.9, d.PCurr(), 1e-9)
	d.Update(0.5) // worse -> halve step, back up
	assert.InDelta(t, 0.95, d.PCurr(), 1e-9)
}
