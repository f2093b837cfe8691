// internal/player/solver.go
//
// Elimination guesser: a simple consistency-filtering Mastermind strategy.
// Keeps the full candidate set (NumColors^Size codes), always guesses the
// first remaining candidate, and after each score discards every candidate
// that could not have produced that feedback. A correct secret is never
// eliminated, so the candidate set never empties against an honest scorer.

package player

import "mastermind/internal/game"

// Elimination is a Guesser that narrows a candidate set by feedback.
// Not safe for concurrent use; one instance drives one game.
type Elimination struct {
	candidates []game.Code
	last       game.Code
	lost       bool
}

// NewElimination constructs an Elimination guesser with every possible code
// as a candidate.
func NewElimination() *Elimination {
	return &Elimination{candidates: AllCodes()}
}

// GuessCode returns the first remaining candidate.
func (e *Elimination) GuessCode() game.Code {
	e.last = e.candidates[0]
	return e.last
}

// SetScore filters the candidate set down to codes that, as secret, would
// have scored the last guess with the same exact/present counts.
func (e *Elimination) SetScore(s game.Score) {
	kept := e.candidates[:0]
	for _, c := range e.candidates {
		got := game.NewScorer(c).Score(e.last)
		if got.Exact() == s.Exact() && got.Present() == s.Present() {
			kept = append(kept, c)
		}
	}
	e.candidates = kept
}

// Lose records the loss notification.
func (e *Elimination) Lose() { e.lost = true }

// Lost reports whether the guesser was notified of a loss.
func (e *Elimination) Lost() bool { return e.lost }

// Remaining returns the current candidate count.
func (e *Elimination) Remaining() int { return len(e.candidates) }

// AllCodes enumerates every possible code, in lexicographic color order.
func AllCodes() []game.Code {
	total := 1
	for i := 0; i < game.Size; i++ {
		total *= game.NumColors
	}
	out := make([]game.Code, 0, total)
	var c game.Code
	var walk func(pos int)
	walk = func(pos int) {
		if pos == game.Size {
			out = append(out, c)
			return
		}
		for v := 0; v < game.NumColors; v++ {
			c[pos] = game.Color(v)
			walk(pos + 1)
		}
	}
	walk(0)
	return out
}
