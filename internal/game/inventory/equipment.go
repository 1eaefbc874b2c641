// Package inventory defines equipment items: one-shot additive stat bonuses
// dealt to fighters before a battle.
package inventory

import (
	"errors"

	"github.com/cory-johannsen/arena/internal/game/dice"
)

// Bonus ranges for a freshly rolled item.
var (
	HealthBonusRange     = dice.MustParse("1d10")
	AttackBonusRange     = dice.MustParse("1d5")
	ProtectionBonusRange = dice.MustParse("1d3")
)

// Item is an immutable equipment value. Its bonuses are added to a fighter's
// stats exactly once; the fighter keeps no reference to the item.
type Item struct {
	Name            string
	HealthBonus     int
	AttackBonus     int
	ProtectionBonus int
}

// Roller is the subset of *dice.Roller used to roll item bonuses.
type Roller interface {
	Roll(expr dice.Expression) dice.RollResult
}

// RollItem creates an item called name with bonuses rolled from the fixed ranges.
//
// Precondition: name must be non-empty; r must be non-nil.
// Postcondition: each bonus lies within its range.
func RollItem(name string, r Roller) (Item, error) {
	if name == "" {
		return Item{}, errors.New("item name must not be empty")
	}
	return Item{
		Name:            name,
		HealthBonus:     r.Roll(HealthBonusRange).Total(),
		AttackBonus:     r.Roll(AttackBonusRange).Total(),
		ProtectionBonus: r.Roll(ProtectionBonusRange).Total(),
	}, nil
}
