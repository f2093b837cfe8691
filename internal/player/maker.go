// internal/player/maker.go
//
// Code maker implementations for the game loop.
// Responsibilities:
//   - RandomMaker: uniform secret selection over the peg alphabet
//     (crypto/rand, so simulations are not trivially predictable).
//   - FixedMaker: a deterministic secret for tests and replays.
//   - ParseCode: turn a space-separated color string (e.g. from an env
//     variable) into a Code.

package player

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"mastermind/internal/game"
)

// RandomMaker generates a fresh uniformly random secret per game.
type RandomMaker struct{}

// SecretCode picks each peg color independently with crypto/rand.
func (RandomMaker) SecretCode() game.Code {
	var c game.Code
	for i := range c {
		n, _ := rand.Int(rand.Reader, big.NewInt(int64(game.NumColors)))
		c[i] = game.Color(n.Int64())
	}
	return c
}

// FixedMaker always returns the same secret.
type FixedMaker struct {
	Code game.Code
}

// SecretCode returns the configured secret.
func (f FixedMaker) SecretCode() game.Code { return f.Code }

// ParseCode parses a code from space-separated lowercase color names,
// e.g. "red green blue yellow".
func ParseCode(s string) (game.Code, error) {
	var c game.Code
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) != game.Size {
		return c, fmt.Errorf("parse code %q: want %d colors, got %d", s, game.Size, len(fields))
	}
	for i, name := range fields {
		color, err := parseColor(name)
		if err != nil {
			return c, fmt.Errorf("parse code %q: %w", s, err)
		}
		c[i] = color
	}
	return c, nil
}

// parseColor maps one color name to its Color value.
func parseColor(name string) (game.Color, error) {
	for c := game.Color(0); int(c) < game.NumColors; c++ {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown color %q", name)
}
