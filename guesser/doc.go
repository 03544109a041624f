// Package guesser implements the threshold-sequence state machines that
// drive the clustering engine's probing loop: each Guesser tracks a current
// guess p_curr and advances it in response to above()/below() signals
// ("too permissive" / "too tight-or-met"), until it decides to stop.
//
// Three binary-signal variants are provided (Exponential-then-Bisect,
// Geometric, Uniform), plus a ScoreGuesser adapter that turns a continuous
// score into above/below signals for the avg-prob engine, which has no
// natural binary "covered everything" outcome to report.
package guesser
