package ruleset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/arena/internal/game/character"
)

// RaceDef is the presentation lore for a race. Behaviour lives in
// character.Race; this only describes it.
type RaceDef struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	// Color is a console color name such as "cyan" or "bright_red".
	Color string `yaml:"color"`

	Race character.Race `yaml:"-"`
}

// LoadRaces reads every .yaml file in dir as a RaceDef.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Every returned RaceDef has a resolved Race, or a non-nil error is returned.
func LoadRaces(dir string) ([]*RaceDef, error) {
	files, err := yamlFiles(dir)
	if err != nil {
		return nil, err
	}
	defs := make([]*RaceDef, 0, len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var d RaceDef
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("parsing race file %s: %w", path, err)
		}
		race, err := character.ParseRace(d.ID)
		if err != nil {
			return nil, fmt.Errorf("race file %s: %w", path, err)
		}
		d.Race = race
		if d.Name == "" {
			d.Name = race.String()
		}
		defs = append(defs, &d)
	}
	return defs, nil
}

// RaceIndex maps each race to its lore.
type RaceIndex map[character.Race]*RaceDef

// NewRaceIndex indexes defs by race.
//
// Postcondition: Returns an error if a race is defined twice.
func NewRaceIndex(defs []*RaceDef) (RaceIndex, error) {
	idx := make(RaceIndex, len(defs))
	for _, d := range defs {
		if _, dup := idx[d.Race]; dup {
			return nil, fmt.Errorf("race %s defined more than once", d.Race)
		}
		idx[d.Race] = d
	}
	return idx, nil
}

// Lookup returns the lore for race, falling back to a bare definition when
// the content does not cover it.
func (idx RaceIndex) Lookup(race character.Race) *RaceDef {
	if d, ok := idx[race]; ok {
		return d
	}
	return &RaceDef{ID: race.String(), Name: race.String(), Race: race}
}
