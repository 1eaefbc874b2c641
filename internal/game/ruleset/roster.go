// Package ruleset loads arena content: the fighter name pool, the equipment
// name pool and per-race lore. Content is passed explicitly to the arena;
// nothing here is package state.
package ruleset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Roster holds the name pools fighters and equipment are drawn from.
type Roster struct {
	Names     []string `yaml:"names"`
	Equipment []string `yaml:"equipment"`
}

// Normalize trims every entry and title-cases it, so "  dagger" and "Dagger"
// are the same name.
func (r *Roster) Normalize() {
	title := cases.Title(language.English)
	for i, n := range r.Names {
		r.Names[i] = title.String(strings.TrimSpace(n))
	}
	for i, n := range r.Equipment {
		r.Equipment[i] = title.String(strings.TrimSpace(n))
	}
}

// Validate checks that both pools are free of blanks and duplicates and large
// enough to draw minNames fighters and minEquipment items without replacement.
//
// Postcondition: Returns nil iff all invariants hold, or an error listing every violation.
func (r Roster) Validate(minNames, minEquipment int) error {
	var errs []error
	errs = append(errs, validatePool("names", r.Names, minNames)...)
	errs = append(errs, validatePool("equipment", r.Equipment, minEquipment)...)
	if len(errs) > 0 {
		return fmt.Errorf("roster validation failed: %w", errors.Join(errs...))
	}
	return nil
}

func validatePool(field string, pool []string, minLen int) []error {
	var errs []error
	if len(pool) < minLen {
		errs = append(errs, fmt.Errorf("%s must have at least %d entries, got %d", field, minLen, len(pool)))
	}
	seen := make(map[string]bool, len(pool))
	for i, n := range pool {
		if n == "" {
			errs = append(errs, fmt.Errorf("%s[%d] must not be empty", field, i))
			continue
		}
		if seen[n] {
			errs = append(errs, fmt.Errorf("%s[%d] duplicates %q", field, i, n))
		}
		seen[n] = true
	}
	return errs
}

// LoadRoster reads a roster YAML file and normalizes it.
//
// Precondition: path must name a readable YAML file.
// Postcondition: Returns a normalized Roster or a non-nil error. The caller validates sizes.
func LoadRoster(path string) (Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Roster{}, fmt.Errorf("reading roster %s: %w", path, err)
	}
	var r Roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Roster{}, fmt.Errorf("parsing roster file %s: %w", path, err)
	}
	r.Normalize()
	return r, nil
}

func yamlFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	return paths, nil
}
