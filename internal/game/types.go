// internal/game/types.go
//
// Core type definitions for the Mastermind engine.
// Defines:
//   - Color: one of the six code peg colors.
//   - Code:  a fixed-length ordered sequence of colors (secret or guess).
//   - Mark:  per-peg feedback kind (exact/present).
//   - Score: the packed feedback pegs for one guess.

package game

// Size is the number of pegs in a code. Secrets and guesses always have
// exactly this length, so a malformed-length code is unrepresentable.
const Size = 4

// Color is a single code peg color.
type Color int

const (
	Red Color = iota
	Green
	Blue
	Yellow
	Orange
	Purple
)

// NumColors is the size of the peg alphabet.
const NumColors = 6

var colorNames = [NumColors]string{"red", "green", "blue", "yellow", "orange", "purple"}

// String returns the lowercase color name, or "unknown" for out-of-range values.
func (c Color) String() string {
	if c < 0 || int(c) >= NumColors {
		return "unknown"
	}
	return colorNames[c]
}

// Code is an ordered sequence of Size peg colors. Positions are significant
// and duplicate colors across positions are allowed. Codes are value types
// and never mutated after construction.
type Code [Size]Color

// String renders a code as "red green blue yellow" for logs.
func (c Code) String() string {
	s := c[0].String()
	for i := 1; i < Size; i++ {
		s += " " + c[i].String()
	}
	return s
}

// Mark represents the feedback for a single matched peg.
// Possible values:
//   - MarkExact:   a peg correct in both color and position.
//   - MarkPresent: a peg correct in color only, at a different position.
//
// There is no "absent" mark; pegs that match nothing simply contribute no
// feedback at all.
type Mark int

const (
	MarkExact Mark = iota
	MarkPresent
)

// Score holds the feedback pegs produced by comparing a guess to the secret.
// It is packed: all exact marks first (in ascending position order), then all
// present marks; its length never exceeds Size. The ordering of marks carries
// no positional meaning relative to the guess; only the counts by kind are
// information.
type Score []Mark

// Exact returns the number of exact-match feedback pegs.
func (s Score) Exact() int {
	n := 0
	for _, m := range s {
		if m == MarkExact {
			n++
		}
	}
	return n
}

// Present returns the number of present (color-only) feedback pegs.
func (s Score) Present() int {
	return len(s) - s.Exact()
}

// IsWin reports whether the score is the all-exact score, i.e. the guess
// equals the secret.
func (s Score) IsWin() bool {
	return len(s) == Size && s.Exact() == Size
}
