package guesser

// ScoreGuesser adapts a binary-signal Guesser to the avg-prob engine, which
// judges an iteration by a continuous score (the sum of covered
// probabilities) rather than a covered/uncovered verdict. A score that
// strictly improves on the best seen so far is treated as Below (the
// threshold was met or exceeded); anything else is Above.
type ScoreGuesser struct {
	inner   Guesser
	bestSet bool
	best    float64
}

// NewScoreGuesser wraps inner, which drives the underlying threshold
// sequence (typically an *ExpBisect, giving "G1-APC").
func NewScoreGuesser(inner Guesser) *ScoreGuesser {
	return &ScoreGuesser{inner: inner}
}

func (g *ScoreGuesser) PCurr() float64 { return g.inner.PCurr() }
func (g *ScoreGuesser) Stop() bool     { return g.inner.Stop() }

// Update feeds one iteration's score into the guesser.
func (g *ScoreGuesser) Update(score float64) {
	if !g.bestSet || score > g.best {
		g.best = score
		g.bestSet = true
		g.inner.Below()
		return
	}
	g.inner.Above()
}

// Directional is the alternative avg-prob guesser named in spec.md §4.4: it
// decreases p_curr by a fixed step while the score keeps improving, and
// halves the step (bisecting back up) on the first non-improving score —
// a simple hill-descent without the exponential phase of ExpBisect.
type Directional struct {
	step, pLow float64
	guess      float64
	bestSet    bool
	best       float64
	stopped    bool
}

// NewDirectional constructs the directional score-monotone guesser with
// initial step and floor pLow.
func NewDirectional(step, pLow float64) *Directional {
	return &Directional{step: step, pLow: pLow, guess: 1.0}
}

func (g *Directional) PCurr() float64 { return g.guess }

func (g *Directional) Update(score float64) {
	if !g.bestSet || score > g.best {
		g.best = score
		g.bestSet = true
		g.guess -= g.step
		if g.guess <= g.pLow {
			g.guess = g.pLow
			g.stopped = true
		}
		return
	}
	g.step /= 2
	g.guess += g.step
}

func (g *Directional) Stop() bool {
	return g.stopped || g.step < 1e-12
}
