package sampler

import "math"

// requiredSamples computes N(p) = ceil((alpha / (epsilon^2 * p)) * ln(1/delta)),
// the Monte-Carlo sample count needed for a probability estimate at
// threshold p to be reliable within (epsilon, delta).
func requiredSamples(p, epsilon, delta, alpha float64) int {
	n := (alpha / (epsilon * epsilon * p)) * math.Log(1/delta)
	return int(math.Ceil(n))
}

func validParams(epsilon, delta, alpha float64) bool {
	inUnit := func(x float64) bool { return x > 0 && x < 1 }
	return inUnit(epsilon) && inUnit(delta) && inUnit(alpha)
}
