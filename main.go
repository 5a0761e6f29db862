package main

import (
	"fmt"
	"os"
	"time"

	"loa/engine"
	"loa/game"
	"loa/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	blackDepth int
	whiteDepth int // 0 plays the random baseline
	games      int
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	runMatch(config{blackDepth: 3, whiteDepth: 0, games: 3})
}

// runMatch plays a series of games between a minimax agent and either
// another minimax agent or the random baseline, reporting each result.
func runMatch(cfg config) {
	fmt.Printf("Running %d game(s): depth-%d minimax vs %s...\n",
		cfg.games, cfg.blackDepth, describeWhite(cfg))
	for i := 0; i < cfg.games; i++ {
		black := engine.SearcherAgent{
			Searcher: searcher.New(searcher.WithDepth(cfg.blackDepth)),
		}
		var white engine.Agent
		if cfg.whiteDepth > 0 {
			white = engine.SearcherAgent{
				Searcher: searcher.New(searcher.WithDepth(cfg.whiteDepth)),
			}
		} else {
			white = engine.NewRandom(uint64(time.Now().UnixNano()))
		}

		e := engine.LocalEngine(black, white)
		winner, moves := e.Run()
		if winner == game.Empty {
			fmt.Printf("Game %d tied after %d moves\n", i+1, moves)
		} else {
			fmt.Printf("Game %d won by %s in %d moves\n", i+1, winner, moves)
		}
	}
}

func describeWhite(cfg config) string {
	if cfg.whiteDepth > 0 {
		return fmt.Sprintf("depth-%d minimax", cfg.whiteDepth)
	}
	return "random baseline"
}
