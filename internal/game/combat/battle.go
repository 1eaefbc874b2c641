// Package combat implements the duel loop: each round a uniformly random
// fighter attacks the other until one drops to zero health.
package combat

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/arena/internal/game/character"
)

// ErrBattleFinished is returned by Step once the battle has ended.
var ErrBattleFinished = errors.New("battle already finished")

// Status is the battle state.
type Status int

const (
	InProgress Status = iota
	Finished
)

// String returns a human-readable status label.
func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Corner identifies which side of the ring a fighter stands in.
type Corner int

const (
	// Red is the player's corner.
	Red Corner = iota
	// Blue is the opponent's corner.
	Blue
)

// String returns the corner name.
func (c Corner) String() string {
	if c == Red {
		return "red"
	}
	return "blue"
}

// Source is the subset of dice.Source used to pick attackers.
type Source interface {
	Intn(n int) int
}

// RoundEvent records one resolved round.
type RoundEvent struct {
	Round    int
	Attacker *character.Fighter
	Defender *character.Fighter
	// Corner is the attacker's corner.
	Corner    Corner
	Damage    int
	Narrative string
}

// Result summarises a finished battle. Winner and Loser are nil on a draw.
type Result struct {
	Winner       *character.Fighter
	Loser        *character.Fighter
	WinnerCorner Corner
	Rounds       int
	Draw         bool
}

// Option configures a Battle.
type Option func(*Battle)

// WithMaxRounds ends the battle as a draw after n rounds without a knockout.
// Zero, the default, never stops early.
func WithMaxRounds(n int) Option {
	return func(b *Battle) { b.maxRounds = n }
}

// WithLogger sets the logger used for per-round debug logs.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Battle) { b.logger = logger }
}

// Battle is a duel between the fighters in the red and blue corners.
type Battle struct {
	ID     string
	Red    *character.Fighter
	Blue   *character.Fighter
	Round  int
	Status Status

	result    Result
	maxRounds int
	src       Source
	logger    *zap.Logger
}

// NewBattle prepares a battle between red and blue.
//
// Precondition: red and blue must be distinct non-nil fighters; src must be non-nil.
// Postcondition: Returns an InProgress battle at round 0 or a non-nil error.
func NewBattle(red, blue *character.Fighter, src Source, opts ...Option) (*Battle, error) {
	if red == nil || blue == nil {
		return nil, errors.New("battle requires two fighters")
	}
	if red == blue {
		return nil, fmt.Errorf("fighter %q cannot fight itself", red.Name)
	}
	if src == nil {
		return nil, errors.New("battle requires a random source")
	}
	b := &Battle{
		ID:     uuid.New().String(),
		Red:    red,
		Blue:   blue,
		Status: InProgress,
		src:    src,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.maxRounds < 0 {
		return nil, fmt.Errorf("max rounds must be >= 0, got %d", b.maxRounds)
	}
	return b, nil
}

// Step resolves a single round: a uniformly chosen attacker strikes the other
// fighter. The battle finishes when the defender's health drops to zero or
// below, or when the max-rounds limit is reached.
//
// Postcondition: Returns the round's event, or ErrBattleFinished if the
// battle had already ended.
func (b *Battle) Step() (RoundEvent, error) {
	if b.Status == Finished {
		return RoundEvent{}, ErrBattleFinished
	}
	b.Round++

	attacker, defender, corner := b.Red, b.Blue, Red
	if b.src.Intn(2) == 1 {
		attacker, defender, corner = b.Blue, b.Red, Blue
	}
	dmg := defender.ResolveIncomingAttack(attacker.Attack)

	ev := RoundEvent{
		Round:     b.Round,
		Attacker:  attacker,
		Defender:  defender,
		Corner:    corner,
		Damage:    dmg,
		Narrative: fmt.Sprintf("%s hits %s for %d damage", attacker.Name, defender.Name, dmg),
	}
	b.logger.Debug("round resolved",
		zap.String("battle_id", b.ID),
		zap.Int("round", b.Round),
		zap.String("attacker_id", attacker.ID),
		zap.String("defender_id", defender.ID),
		zap.Int("damage", dmg),
		zap.Int("defender_health", defender.Health),
	)

	switch {
	case defender.IsDefeated():
		b.finish(Result{Winner: attacker, Loser: defender, WinnerCorner: corner, Rounds: b.Round})
	case b.maxRounds > 0 && b.Round >= b.maxRounds:
		b.finish(Result{Rounds: b.Round, Draw: true})
	}
	return ev, nil
}

func (b *Battle) finish(r Result) {
	b.Status = Finished
	b.result = r
	if r.Draw {
		b.logger.Info("battle drawn", zap.String("battle_id", b.ID), zap.Int("rounds", r.Rounds))
		return
	}
	b.logger.Info("battle finished",
		zap.String("battle_id", b.ID),
		zap.String("winner", r.Winner.Name),
		zap.String("winner_race", r.Winner.Race.String()),
		zap.Int("rounds", r.Rounds),
	)
}

// Run steps the battle until it finishes, passing every event to observe.
// observe may be nil.
//
// Postcondition: Status == Finished; for a non-draw exactly the loser has
// Health <= 0.
func (b *Battle) Run(observe func(RoundEvent)) Result {
	for b.Status == InProgress {
		ev, err := b.Step()
		if err != nil {
			break
		}
		if observe != nil {
			observe(ev)
		}
	}
	return b.result
}

// Result returns the outcome. It is the zero Result while the battle is in progress.
func (b *Battle) Result() Result { return b.result }
