// internal/sim/sim.go
//
// Plays batches of complete games and aggregates outcomes. Each game gets a
// uuid for log correlation; outcomes are observed purely through the guesser
// contract (score deliveries and loss notifications), never by peeking at
// engine internals.

package sim

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"mastermind/internal/game"
)

// Runner plays Games games of Rounds rounds each. A fresh guesser is built
// per game via NewGuesser; the maker is shared across games.
type Runner struct {
	Games      int
	Rounds     int
	Maker      game.CodeMaker
	NewGuesser func() game.Guesser
}

// Summary aggregates the outcomes of one Run.
type Summary struct {
	Games     int
	Wins      int
	Losses    int
	WinRounds int // total rounds used across won games
}

// AvgWinRounds returns the mean rounds-to-win, or 0 with no wins.
func (s Summary) AvgWinRounds() float64 {
	if s.Wins == 0 {
		return 0
	}
	return float64(s.WinRounds) / float64(s.Wins)
}

// Run plays all games sequentially and returns the summary.
func (r *Runner) Run() Summary {
	sum := Summary{Games: r.Games}
	for i := 0; i < r.Games; i++ {
		id := uuid.NewString()
		obs := &observer{next: r.NewGuesser()}
		game.NewGame(r.Rounds, r.Maker, obs).Play()

		if obs.won {
			sum.Wins++
			sum.WinRounds += obs.rounds
			log.Debug().Str("gameId", id).Int("rounds", obs.rounds).Msg("won")
		} else {
			sum.Losses++
			log.Debug().Str("gameId", id).Int("rounds", obs.rounds).Msg("lost")
		}
	}
	log.Info().
		Int("games", sum.Games).
		Int("wins", sum.Wins).
		Int("losses", sum.Losses).
		Float64("avgWinRounds", sum.AvgWinRounds()).
		Msg("simulation finished")
	return sum
}

// observer forwards the guesser contract to the wrapped guesser while
// counting rounds and recording the outcome.
type observer struct {
	next   game.Guesser
	rounds int
	won    bool
	lost   bool
}

func (o *observer) GuessCode() game.Code {
	o.rounds++
	return o.next.GuessCode()
}

func (o *observer) SetScore(s game.Score) {
	if s.IsWin() {
		o.won = true
	}
	o.next.SetScore(s)
}

func (o *observer) Lose() {
	o.lost = true
	o.next.Lose()
}
