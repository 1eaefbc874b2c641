// Package main provides the console arena: pick a fighter from a random
// roster and watch it duel a random opponent.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/arena/internal/config"
	"github.com/cory-johannsen/arena/internal/frontend/console"
	"github.com/cory-johannsen/arena/internal/game/arena"
	"github.com/cory-johannsen/arena/internal/game/dice"
	"github.com/cory-johannsen/arena/internal/game/ruleset"
	"github.com/cory-johannsen/arena/internal/observability"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	rosterPath := flag.String("roster", "content/roster.yaml", "path to the fighter and equipment name pools")
	racesDir := flag.String("races", "content/races", "path to race YAML files directory")
	seed := flag.Int64("seed", 0, "random seed for a reproducible run; overrides arena.seed when non-zero")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *seed != 0 {
		cfg.Arena.Seed = *seed
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	content, err := ruleset.LoadRoster(*rosterPath)
	if err != nil {
		logger.Fatal("loading roster", zap.Error(err))
	}
	if err := content.Validate(arena.RosterSize, arena.MaxItems); err != nil {
		logger.Fatal("validating roster", zap.Error(err))
	}
	raceDefs, err := ruleset.LoadRaces(*racesDir)
	if err != nil {
		logger.Fatal("loading races", zap.Error(err))
	}
	races, err := ruleset.NewRaceIndex(raceDefs)
	if err != nil {
		logger.Fatal("indexing races", zap.Error(err))
	}
	logger.Info("content loaded",
		zap.Int("names", len(content.Names)),
		zap.Int("equipment", len(content.Equipment)),
		zap.Int("races", len(races)),
	)

	src := dice.NewCryptoSource()
	if cfg.Arena.Seed != 0 {
		src = dice.NewSeededSource(cfg.Arena.Seed)
	}
	roller := dice.NewLoggedRoller(src, logger)

	game := console.NewGame(content, roller,
		console.NewRenderer(cfg.Arena.Color, races),
		console.NewPrompter(os.Stdin, os.Stdout),
		os.Stdout,
		logger,
		console.WithPacing(cfg.Arena.Pacing),
		console.WithMaxRounds(cfg.Arena.MaxRounds),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("arena initialized",
		zap.Duration("startup", time.Since(start)),
		zap.Int64("seed", cfg.Arena.Seed),
		zap.Int("max_rounds", cfg.Arena.MaxRounds),
	)

	if err := game.Run(ctx); err != nil {
		logger.Fatal("game error", zap.Error(err))
	}
}
