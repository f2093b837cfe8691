package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"mastermind/internal/game"
	"mastermind/internal/player"
	"mastermind/internal/sim"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	games := getEnvInt("GAMES", 100)
	rounds := getEnvInt("MAX_ROUNDS", 10)

	// SECRET pins the maker to one code, e.g. "red green blue yellow".
	var maker game.CodeMaker = player.RandomMaker{}
	if s := os.Getenv("SECRET"); s != "" {
		code, err := player.ParseCode(s)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid SECRET")
		}
		maker = player.FixedMaker{Code: code}
	}

	log.Info().Int("games", games).Int("rounds", rounds).Msg("starting simulation")
	r := &sim.Runner{
		Games:      games,
		Rounds:     rounds,
		Maker:      maker,
		NewGuesser: func() game.Guesser { return player.NewElimination() },
	}
	r.Run()
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" { return v }
	return def
}

func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
		log.Warn().Str("key", k).Str("value", v).Msg("ignoring invalid env value")
	}
	return def
}
