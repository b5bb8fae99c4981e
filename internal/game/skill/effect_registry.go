package skill

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// EffectResolver maps a skill at an effective level to its stat modifiers.
type EffectResolver interface {
	// Modifiers returns the modifiers for skill at level, nil if the skill has no numeric effect.
	Modifiers(skill string, level int) []StatModifier
	// Conditional reports whether the skill only applies while toggled active.
	Conditional(skill string) bool
}

// EffectEntry — numeric effect of one skill. Levels[i] holds the modifiers of level i+1.
type EffectEntry struct {
	Skill       string           `yaml:"skill"`
	Conditional bool             `yaml:"conditional"`
	Levels      [][]StatModifier `yaml:"levels"`
}

// EffectTable is an immutable EffectResolver backed by a name → entry map.
type EffectTable struct {
	entries map[string]EffectEntry
}

// NewEffectTable builds a table from entries. Later duplicates replace earlier ones.
func NewEffectTable(entries []EffectEntry) *EffectTable {
	t := &EffectTable{entries: make(map[string]EffectEntry, len(entries))}
	for _, e := range entries {
		levels := make([][]StatModifier, len(e.Levels))
		for i, mods := range e.Levels {
			levels[i] = slices.Clone(mods)
		}
		e.Levels = levels
		t.entries[e.Skill] = e
	}
	return t
}

// Modifiers returns the modifiers of skill at level. Levels above the highest
// defined level resolve to the highest one; level <= 0 and unknown skills yield nil.
func (t *EffectTable) Modifiers(skill string, level int) []StatModifier {
	if t == nil || level <= 0 {
		return nil
	}
	e, ok := t.entries[skill]
	if !ok || len(e.Levels) == 0 {
		return nil
	}
	level = min(level, len(e.Levels))
	return slices.Clone(e.Levels[level-1])
}

// Conditional reports whether skill is situational.
func (t *EffectTable) Conditional(skill string) bool {
	if t == nil {
		return false
	}
	return t.entries[skill].Conditional
}

// Len returns the number of skills with effects.
func (t *EffectTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// LoadEffectTable reads an effect table from a YAML file.
// A missing file yields DefaultEffects.
func LoadEffectTable(path string) (*EffectTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Info("effect table not found, using built-in effects", "path", path)
			return DefaultEffects(), nil
		}
		return nil, fmt.Errorf("reading effect table %s: %w", path, err)
	}

	var entries []EffectEntry
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parsing effect table %s: %w", path, err)
	}
	for _, e := range entries {
		if e.Skill == "" {
			return nil, fmt.Errorf("parsing effect table %s: entry without skill name", path)
		}
	}

	t := NewEffectTable(entries)
	slog.Info("loaded effect table", "path", path, "skills", t.Len())
	return t, nil
}
