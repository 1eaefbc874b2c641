// Package arena generates the fighter roster, deals equipment and resolves
// the player's pick and the opponent draw.
package arena

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/arena/internal/game/character"
	"github.com/cory-johannsen/arena/internal/game/dice"
	"github.com/cory-johannsen/arena/internal/game/inventory"
	"github.com/cory-johannsen/arena/internal/game/ruleset"
)

const (
	// RosterSize is the number of candidate fighters offered each game.
	RosterSize = 10
	// MaxItems is the most equipment a single fighter can be dealt.
	MaxItems = 4
	// EquipProtectionLimit stops equipment dealing once a fighter's
	// protection exceeds it.
	EquipProtectionLimit = 10
)

// Base stat ranges for a freshly generated fighter.
var (
	HealthRange     = dice.MustParse("1d11+39") // 40-50
	AttackRange     = dice.MustParse("1d6+4")   // 5-10
	ProtectionRange = dice.MustParse("1d4")     // 1-4
)

// ErrOutOfRange is wrapped by SelectionError.
var ErrOutOfRange = errors.New("selection out of range")

// SelectionError reports a roster index outside [0, Size).
type SelectionError struct {
	Index int
	Size  int
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("fighter index %d not in [0, %d]", e.Index, e.Size-1)
}

func (e *SelectionError) Unwrap() error { return ErrOutOfRange }

// Roller is the subset of *dice.Roller the arena draws from.
type Roller interface {
	Roll(expr dice.Expression) dice.RollResult
	Intn(n int) int
}

// GenerateRoster creates RosterSize fighters with uniform races, unique names
// and rolled base stats, then deals each of them equipment.
//
// Precondition: content must validate for RosterSize names and MaxItems equipment names.
// Postcondition: Returns RosterSize fighters with distinct names, or a non-nil error.
func GenerateRoster(content ruleset.Roster, r Roller) ([]*character.Fighter, error) {
	if err := content.Validate(RosterSize, MaxItems); err != nil {
		return nil, err
	}
	names := append([]string(nil), content.Names...)
	races := character.AllRaces()

	fighters := make([]*character.Fighter, 0, RosterSize)
	for i := 0; i < RosterSize; i++ {
		race := races[r.Intn(len(races))]
		var name string
		name, names = draw(names, r)
		f := character.New(race, name,
			r.Roll(HealthRange).Total(),
			r.Roll(AttackRange).Total(),
			r.Roll(ProtectionRange).Total(),
		)
		if _, err := Equip(f, content.Equipment, r); err != nil {
			return nil, fmt.Errorf("equipping %s: %w", name, err)
		}
		fighters = append(fighters, f)
	}
	return fighters, nil
}

// Equip deals up to MaxItems items to f, drawing names without replacement
// from pool. An item is dealt only while f's protection is at most
// EquipProtectionLimit, so heavily armored fighters receive fewer items.
//
// Postcondition: Returns the dealt items in order; their bonuses are already applied to f.
func Equip(f *character.Fighter, pool []string, r Roller) ([]inventory.Item, error) {
	remaining := append([]string(nil), pool...)
	var dealt []inventory.Item
	for i := 0; i < MaxItems && len(remaining) > 0; i++ {
		if f.Protection > EquipProtectionLimit {
			break
		}
		var name string
		name, remaining = draw(remaining, r)
		item, err := inventory.RollItem(name, r)
		if err != nil {
			return dealt, err
		}
		f.ApplyEquipment(item)
		dealt = append(dealt, item)
	}
	return dealt, nil
}

// Select returns the fighter at index.
//
// Postcondition: Returns the fighter, or a *SelectionError wrapping ErrOutOfRange.
func Select(roster []*character.Fighter, index int) (*character.Fighter, error) {
	if index < 0 || index >= len(roster) {
		return nil, &SelectionError{Index: index, Size: len(roster)}
	}
	return roster[index], nil
}

// DrawOpponent picks uniformly among the roster fighters other than chosen.
//
// Precondition: roster must contain at least one fighter besides chosen.
// Postcondition: Returns a fighter != chosen.
func DrawOpponent(roster []*character.Fighter, chosen *character.Fighter, r Roller) (*character.Fighter, error) {
	others := make([]*character.Fighter, 0, len(roster))
	for _, f := range roster {
		if f != chosen {
			others = append(others, f)
		}
	}
	if len(others) == 0 {
		return nil, errors.New("no opponent available")
	}
	return others[r.Intn(len(others))], nil
}

// draw removes and returns a uniformly chosen element of pool.
func draw(pool []string, r Roller) (string, []string) {
	i := r.Intn(len(pool))
	picked := pool[i]
	pool[i] = pool[len(pool)-1]
	return picked, pool[:len(pool)-1]
}
