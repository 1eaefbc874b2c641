// Package character defines the fighter model: race construction multipliers,
// equipment folding, and race-specific resolution of incoming attacks.
package character

import (
	"math"

	"github.com/google/uuid"

	"github.com/cory-johannsen/arena/internal/game/inventory"
)

const (
	// ElfHeal is the health an elf recovers each time it is struck.
	ElfHeal = 5
	// GnomeAttackGrowth multiplies a gnome's attack each time it is struck.
	GnomeAttackGrowth = 1.2
	// GnomeProtectionGrowth is added to a gnome's protection each time it is struck.
	GnomeProtectionGrowth = 10
)

// Fighter is a combat participant. Stats are mutated in place by equipment
// and by combat.
type Fighter struct {
	ID   string
	Name string
	Race Race

	Health int
	// Attack is real-valued because gnomes grow it multiplicatively.
	Attack float64
	// Protection is a damage reduction percentage. It is not clamped, so a
	// gnome can grow past 100 and start healing from hits.
	Protection int
}

// New constructs a fighter, applying the race multiplier once:
// humans double health and protection, orks double attack, elves and gnomes
// keep their base stats.
//
// Postcondition: Returns a non-nil Fighter with a fresh ID and the given race.
func New(race Race, name string, baseHealth, baseAttack, baseProtection int) *Fighter {
	f := &Fighter{
		ID:         uuid.New().String(),
		Name:       name,
		Race:       race,
		Health:     baseHealth,
		Attack:     float64(baseAttack),
		Protection: baseProtection,
	}
	switch race {
	case Human:
		f.Health *= 2
		f.Protection *= 2
	case Ork:
		f.Attack *= 2
	}
	return f
}

// ApplyEquipment adds the item's bonuses to the fighter's stats. Race
// multipliers are not applied to the bonuses.
func (f *Fighter) ApplyEquipment(item inventory.Item) {
	f.Health += item.HealthBonus
	f.Attack += float64(item.AttackBonus)
	f.Protection += item.ProtectionBonus
}

// Damage returns round(incoming * (100 - protection) / 100), rounding half to
// even. Protection above 100 yields negative damage.
func Damage(incoming float64, protection int) int {
	return int(math.RoundToEven(incoming * float64(100-protection) / 100))
}

// ResolveIncomingAttack applies an attack of the given strength to f and
// returns the damage dealt, measured before any race side effect:
//   - Elf: heals ElfHeal after taking the damage.
//   - Gnome: attack grows by GnomeAttackGrowth and protection by
//     GnomeProtectionGrowth, regardless of the damage taken.
//
// Postcondition: Health decreased by the returned damage, adjusted by the
// race side effect.
func (f *Fighter) ResolveIncomingAttack(incoming float64) int {
	dmg := Damage(incoming, f.Protection)
	f.Health -= dmg
	switch f.Race {
	case Elf:
		f.Health += ElfHeal
	case Gnome:
		f.Attack *= GnomeAttackGrowth
		f.Protection += GnomeProtectionGrowth
	}
	return dmg
}

// IsDefeated reports whether the fighter's health has dropped to zero or below.
func (f *Fighter) IsDefeated() bool { return f.Health <= 0 }

// Info is a read-only snapshot of a fighter for display.
type Info struct {
	Name       string
	Race       Race
	Health     int
	Attack     float64
	Protection int
}

// Info returns a snapshot of the fighter's current stats.
func (f *Fighter) Info() Info {
	return Info{
		Name:       f.Name,
		Race:       f.Race,
		Health:     f.Health,
		Attack:     f.Attack,
		Protection: f.Protection,
	}
}
