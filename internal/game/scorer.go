// internal/game/scorer.go
//
// Scoring for a single Mastermind game.
// Responsibilities:
//   - Hold the secret code for the lifetime of one game.
//   - Compare guesses to the secret with the classic two-pass algorithm.
//
// Notes:
//   - Scoring is a total, pure function: no error paths, no mutation of
//     the secret.
//   - Each secret peg and each guess peg contributes to at most one
//     feedback mark. Repeated colors in the guess therefore never earn
//     more feedback than the secret can account for.

package game

// Scorer scores guesses against a fixed secret code.
type Scorer struct {
	secret Code
}

// NewScorer constructs a Scorer holding the given secret.
func NewScorer(secret Code) Scorer {
	return Scorer{secret: secret}
}

// Score compares guess to the secret and returns the packed feedback.
//
// Pass 1:
//   - For each position where secret and guess agree, record MarkExact and
//     consume both pegs.
//   - Pegs that did not match positionally are set aside, in order, into
//     two residual lists.
//
// Pass 2:
//   - For each residual guess peg, in order, find the first residual secret
//     peg of the same color. If found, record MarkPresent and remove that
//     secret peg so it cannot match again; otherwise the guess peg earns
//     nothing.
//
// The linear search is O(n^2) but n is the fixed code size.
func (s Scorer) Score(guess Code) Score {
	out := make(Score, 0, Size)

	secretLeft := make([]Color, 0, Size)
	guessLeft := make([]Color, 0, Size)

	for i := 0; i < Size; i++ {
		if s.secret[i] == guess[i] {
			out = append(out, MarkExact)
		} else {
			secretLeft = append(secretLeft, s.secret[i])
			guessLeft = append(guessLeft, guess[i])
		}
	}

	for _, peg := range guessLeft {
		for j, left := range secretLeft {
			if left == peg {
				out = append(out, MarkPresent)
				secretLeft = append(secretLeft[:j], secretLeft[j+1:]...)
				break
			}
		}
	}

	return out
}
