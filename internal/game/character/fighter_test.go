package character_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/arena/internal/game/character"
	"github.com/cory-johannsen/arena/internal/game/inventory"
)

// expectedDamage is an integer oracle for round-half-to-even of
// incoming*(100-protection)/100.
func expectedDamage(incoming, protection int) int {
	n := incoming * (100 - protection)
	q, r := n/100, n%100
	switch {
	case r > 50:
		q++
	case r == 50 && q%2 == 1:
		q++
	}
	return q
}

func TestNew_Human(t *testing.T) {
	f := character.New(character.Human, "James", 50, 5, 2)
	assert.Equal(t, 100, f.Health)
	assert.Equal(t, 5.0, f.Attack)
	assert.Equal(t, 4, f.Protection)
	assert.Equal(t, character.Human, f.Race)
	assert.NotEmpty(t, f.ID)
}

func TestNew_Ork(t *testing.T) {
	f := character.New(character.Ork, "Bruce", 45, 7, 3)
	assert.Equal(t, 45, f.Health)
	assert.Equal(t, 14.0, f.Attack)
	assert.Equal(t, 3, f.Protection)
}

func TestNew_ElfAndGnomeUnmodified(t *testing.T) {
	for _, race := range []character.Race{character.Elf, character.Gnome} {
		f := character.New(race, "Ryan", 42, 6, 1)
		assert.Equal(t, 42, f.Health, race.String())
		assert.Equal(t, 6.0, f.Attack, race.String())
		assert.Equal(t, 1, f.Protection, race.String())
	}
}

func TestNew_UniqueIDs(t *testing.T) {
	a := character.New(character.Elf, "A", 40, 5, 1)
	b := character.New(character.Elf, "A", 40, 5, 1)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestResolveIncomingAttack_HumanExample(t *testing.T) {
	f := character.New(character.Human, "James", 50, 5, 2)
	dmg := f.ResolveIncomingAttack(10)
	assert.Equal(t, 10, dmg) // round(9.6)
	assert.Equal(t, 90, f.Health)
}

func TestResolveIncomingAttack_ElfExample(t *testing.T) {
	f := character.New(character.Elf, "Peter", 40, 8, 0)
	dmg := f.ResolveIncomingAttack(20)
	assert.Equal(t, 20, dmg)
	assert.Equal(t, 25, f.Health)
}

func TestResolveIncomingAttack_GnomeExample(t *testing.T) {
	f := character.New(character.Gnome, "Walter", 40, 5, 1)
	f.ResolveIncomingAttack(10)
	assert.InDelta(t, 6.0, f.Attack, 1e-9)
	assert.Equal(t, 11, f.Protection)
	f.ResolveIncomingAttack(10)
	assert.InDelta(t, 7.2, f.Attack, 1e-9)
	assert.Equal(t, 21, f.Protection)
}

func TestDamage_RoundsHalfToEven(t *testing.T) {
	assert.Equal(t, 2, character.Damage(5, 50))  // 2.5
	assert.Equal(t, 4, character.Damage(7, 50))  // 3.5
	assert.Equal(t, 0, character.Damage(1, 50))  // 0.5
	assert.Equal(t, 0, character.Damage(10, 100))
}

func TestDamage_ProtectionOver100Heals(t *testing.T) {
	f := character.New(character.Ork, "Jack", 40, 5, 0)
	f.Protection = 120
	dmg := f.ResolveIncomingAttack(10)
	assert.Equal(t, -2, dmg)
	assert.Equal(t, 42, f.Health)
}

func TestApplyEquipment(t *testing.T) {
	f := character.New(character.Human, "Jose", 40, 5, 1)
	f.ApplyEquipment(inventory.Item{Name: "Helmet", HealthBonus: 7, AttackBonus: 2, ProtectionBonus: 3})
	assert.Equal(t, 87, f.Health)
	assert.Equal(t, 7.0, f.Attack)
	assert.Equal(t, 5, f.Protection)
}

func TestApplyEquipment_NoRaceMultiplier(t *testing.T) {
	f := character.New(character.Ork, "Frank", 40, 5, 1)
	f.ApplyEquipment(inventory.Item{Name: "Ax", AttackBonus: 4})
	assert.Equal(t, 14.0, f.Attack) // 5*2 + 4, bonus not doubled
}

func TestIsDefeated(t *testing.T) {
	f := character.New(character.Elf, "Bobby", 1, 5, 1)
	assert.False(t, f.IsDefeated())
	f.Health = 0
	assert.True(t, f.IsDefeated())
	f.Health = -3
	assert.True(t, f.IsDefeated())
}

func TestInfo_Snapshot(t *testing.T) {
	f := character.New(character.Gnome, "Martin", 44, 6, 2)
	info := f.Info()
	f.ResolveIncomingAttack(10)
	assert.Equal(t, 44, info.Health)
	assert.Equal(t, 2, info.Protection)
	assert.Equal(t, "Martin", info.Name)
	assert.Equal(t, character.Gnome, info.Race)
}

// Property: for humans and orks, damage follows the formula and health drops by exactly that much.
func TestResolveIncomingAttack_Property_BaseRule(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		race := rapid.SampledFrom([]character.Race{character.Human, character.Ork}).Draw(rt, "race")
		incoming := rapid.IntRange(0, 500).Draw(rt, "incoming")
		prot := rapid.IntRange(0, 100).Draw(rt, "protection")
		f := character.New(race, "X", 45, 5, 1)
		f.Protection = prot
		before := f.Health
		dmg := f.ResolveIncomingAttack(float64(incoming))
		assert.Equal(rt, expectedDamage(incoming, prot), dmg)
		assert.Equal(rt, before-dmg, f.Health)
		assert.Equal(rt, prot, f.Protection)
	})
}

// Property: elves lose the damage and then heal ElfHeal.
func TestResolveIncomingAttack_Property_Elf(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		incoming := rapid.IntRange(0, 500).Draw(rt, "incoming")
		prot := rapid.IntRange(0, 100).Draw(rt, "protection")
		f := character.New(character.Elf, "X", 45, 5, prot)
		before := f.Health
		dmg := f.ResolveIncomingAttack(float64(incoming))
		assert.Equal(rt, expectedDamage(incoming, prot), dmg)
		assert.Equal(rt, before-dmg+character.ElfHeal, f.Health)
	})
}

// Property: gnomes grow attack by 20% and protection by 10 regardless of damage.
func TestResolveIncomingAttack_Property_Gnome(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		incoming := rapid.IntRange(0, 500).Draw(rt, "incoming")
		prot := rapid.IntRange(0, 100).Draw(rt, "protection")
		attack := rapid.IntRange(1, 30).Draw(rt, "attack")
		f := character.New(character.Gnome, "X", 45, attack, prot)
		before := f.Health
		dmg := f.ResolveIncomingAttack(float64(incoming))
		assert.Equal(rt, before-dmg, f.Health)
		assert.InDelta(rt, float64(attack)*1.2, f.Attack, 1e-9)
		assert.Equal(rt, prot+10, f.Protection)
	})
}

// Property: equipment bonuses commute.
func TestApplyEquipment_Property_OrderIndependent(t *testing.T) {
	genItem := rapid.Custom(func(rt *rapid.T) inventory.Item {
		return inventory.Item{
			Name:            "x",
			HealthBonus:     rapid.IntRange(1, 10).Draw(rt, "hp"),
			AttackBonus:     rapid.IntRange(1, 5).Draw(rt, "atk"),
			ProtectionBonus: rapid.IntRange(1, 3).Draw(rt, "prot"),
		}
	})
	rapid.Check(t, func(rt *rapid.T) {
		items := rapid.SliceOfN(genItem, 0, 4).Draw(rt, "items")
		race := rapid.SampledFrom(character.AllRaces()).Draw(rt, "race")
		a := character.New(race, "A", 45, 7, 2)
		b := character.New(race, "B", 45, 7, 2)
		for _, it := range items {
			a.ApplyEquipment(it)
		}
		for i := len(items) - 1; i >= 0; i-- {
			b.ApplyEquipment(items[i])
		}
		assert.Equal(rt, a.Health, b.Health)
		assert.Equal(rt, a.Attack, b.Attack)
		assert.Equal(rt, a.Protection, b.Protection)
	})
}

func TestParseRace(t *testing.T) {
	for _, r := range character.AllRaces() {
		got, err := character.ParseRace(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}
	got, err := character.ParseRace("  gnome ")
	require.NoError(t, err)
	assert.Equal(t, character.Gnome, got)

	_, err = character.ParseRace("dwarf")
	assert.Error(t, err)
}

func TestRace_String_Unknown(t *testing.T) {
	assert.Equal(t, "Unknown", character.Race(99).String())
}
