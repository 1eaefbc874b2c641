package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/arena/internal/config"
	"github.com/cory-johannsen/arena/internal/game/arena"
	"github.com/cory-johannsen/arena/internal/game/combat"
	"github.com/cory-johannsen/arena/internal/game/dice"
	"github.com/cory-johannsen/arena/internal/game/ruleset"
)

// Sleeper pauses between presentation phases. It returns early with
// ctx.Err() when ctx is cancelled.
type Sleeper func(ctx context.Context, d time.Duration) error

// SleepContext is the real-time Sleeper.
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// GameOption configures a Game.
type GameOption func(*Game)

// WithPacing sets the delays between presentation phases.
func WithPacing(p config.PacingConfig) GameOption {
	return func(g *Game) { g.pacing = p }
}

// WithMaxRounds sets the draw limit passed to every battle.
func WithMaxRounds(n int) GameOption {
	return func(g *Game) { g.maxRounds = n }
}

// WithSleeper replaces the real-time Sleeper.
func WithSleeper(s Sleeper) GameOption {
	return func(g *Game) { g.sleep = s }
}

// Game drives complete arena sessions on the console.
type Game struct {
	content   ruleset.Roster
	roller    *dice.Roller
	renderer  *Renderer
	prompter  *Prompter
	out       io.Writer
	logger    *zap.Logger
	pacing    config.PacingConfig
	maxRounds int
	sleep     Sleeper
}

// NewGame wires a Game.
//
// Precondition: every argument must be non-nil.
func NewGame(content ruleset.Roster, roller *dice.Roller, renderer *Renderer, prompter *Prompter, out io.Writer, logger *zap.Logger, opts ...GameOption) *Game {
	g := &Game{
		content:  content,
		roller:   roller,
		renderer: renderer,
		prompter: prompter,
		out:      out,
		logger:   logger,
		sleep:    SleepContext,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Game) print(s string) {
	fmt.Fprint(g.out, s)
}

// PlayOnce runs a single game: roster, pick, introductions, countdown, battle.
//
// Postcondition: Returns the finished battle's result, io.EOF if the player
// left at the prompt, or ctx.Err() if cancelled between phases or while
// waiting for an answer.
func (g *Game) PlayOnce(ctx context.Context) (combat.Result, error) {
	roster, err := arena.GenerateRoster(g.content, g.roller)
	if err != nil {
		return combat.Result{}, fmt.Errorf("generating roster: %w", err)
	}
	for i, f := range roster {
		g.print(g.renderer.RosterCard(i, f))
		if err := g.sleep(ctx, g.pacing.Reveal); err != nil {
			return combat.Result{}, err
		}
	}

	chosen, err := g.prompter.ChooseFighter(ctx, roster)
	if err != nil {
		return combat.Result{}, err
	}
	opponent, err := arena.DrawOpponent(roster, chosen, g.roller)
	if err != nil {
		return combat.Result{}, err
	}
	g.logger.Info("fighters chosen",
		zap.String("red", chosen.Name),
		zap.String("red_race", chosen.Race.String()),
		zap.String("blue", opponent.Name),
		zap.String("blue_race", opponent.Race.String()),
	)

	intro := []string{
		g.renderer.Welcome(),
		g.renderer.Corner(combat.Red, chosen),
		g.renderer.Corner(combat.Blue, opponent),
	}
	for _, s := range intro {
		g.print(s)
		if err := g.sleep(ctx, g.pacing.Intro); err != nil {
			return combat.Result{}, err
		}
	}

	g.print("FIGHT STARTS IN...\n")
	for n := 3; n > 0; n-- {
		g.print(g.renderer.Countdown(n))
		if err := g.sleep(ctx, g.pacing.Countdown); err != nil {
			return combat.Result{}, err
		}
	}
	g.print("\n")

	battle, err := combat.NewBattle(chosen, opponent, g.roller,
		combat.WithMaxRounds(g.maxRounds),
		combat.WithLogger(g.logger),
	)
	if err != nil {
		return combat.Result{}, err
	}
	for battle.Status == combat.InProgress {
		if err := g.sleep(ctx, g.pacing.Round); err != nil {
			return combat.Result{}, err
		}
		ev, err := battle.Step()
		if err != nil {
			return combat.Result{}, err
		}
		g.print(g.renderer.Round(ev, chosen, opponent))
	}

	res := battle.Result()
	g.print(g.renderer.Outcome(res))
	return res, nil
}

// Run plays games until the player declines another, input ends, or ctx is
// cancelled. Leaving at a prompt or cancelling is not an error.
func (g *Game) Run(ctx context.Context) error {
	for game := 1; ; game++ {
		g.logger.Info("game starting", zap.Int("game", game))
		if _, err := g.PlayOnce(ctx); err != nil {
			return g.endSession(err)
		}
		again, err := g.prompter.PlayAgain(ctx)
		if err != nil {
			return g.endSession(err)
		}
		if !again {
			return nil
		}
	}
}

// endSession maps the player leaving or the session being cancelled to a
// clean exit and passes every other error through.
func (g *Game) endSession(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		g.logger.Info("session ended", zap.Error(err))
		return nil
	}
	return err
}
