// internal/game/game.go
//
// Turn loop for a single Mastermind game.
// Responsibilities:
//   - Ask the code maker for a secret exactly once, before the first round.
//   - Each round: fetch a guess, score it, deliver the score back.
//   - Stop on the all-exact score (won) or when the round budget runs out
//     (lost, with a single loss notification).
//
// Notes:
//   - Play runs synchronously to completion in the calling goroutine. No
//     I/O, no blocking, no state kept across Play calls.
//   - Collaborators are trusted to behave per their contracts; the fixed
//     Code type already rules out wrong-length secrets and guesses.

package game

// CodeMaker produces the secret code for one game.
// SecretCode is called exactly once, before the first round.
type CodeMaker interface {
	SecretCode() Code
}

// Guesser produces guesses and consumes feedback.
// Per round, GuessCode is called once and SetScore is called once with the
// resulting score, winning round included. Lose is called at most once, only
// when the round budget is exhausted without a win.
type Guesser interface {
	GuessCode() Code
	SetScore(Score)
	Lose()
}

// Game runs the guess/score/feedback loop between a CodeMaker and a Guesser.
type Game struct {
	rounds  int
	maker   CodeMaker
	guesser Guesser
}

// NewGame constructs a Game with the given round budget (must be positive)
// and collaborators.
func NewGame(rounds int, maker CodeMaker, guesser Guesser) *Game {
	return &Game{rounds: rounds, maker: maker, guesser: guesser}
}

// Play runs one complete game. The outcome is observed through the guesser:
// a won game ends after the winning score is delivered, a lost game ends
// with a Lose call after the final score.
func (g *Game) Play() {
	scorer := NewScorer(g.maker.SecretCode())

	for round := 1; round <= g.rounds; round++ {
		score := scorer.Score(g.guesser.GuessCode())
		g.guesser.SetScore(score)
		if score.IsWin() {
			return
		}
	}
	g.guesser.Lose()
}
