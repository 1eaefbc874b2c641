package character

import (
	"fmt"
	"strings"
)

// Race is the closed set of fighter behaviour variants.
type Race int

const (
	Human Race = iota
	Ork
	Elf
	Gnome
)

// AllRaces returns every race in declaration order.
func AllRaces() []Race {
	return []Race{Human, Ork, Elf, Gnome}
}

// String returns the race display name.
func (r Race) String() string {
	switch r {
	case Human:
		return "Human"
	case Ork:
		return "Ork"
	case Elf:
		return "Elf"
	case Gnome:
		return "Gnome"
	default:
		return "Unknown"
	}
}

// ParseRace resolves a race by case-insensitive name.
//
// Postcondition: Returns a known Race or a non-nil error.
func ParseRace(s string) (Race, error) {
	for _, r := range AllRaces() {
		if strings.EqualFold(strings.TrimSpace(s), r.String()) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown race %q", s)
}
