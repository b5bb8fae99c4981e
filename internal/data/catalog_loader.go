package data

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Catalog table file names inside the data directory.
const (
	ArmorFile              = "armor.yaml"
	WeaponsFile            = "weapons.yaml"
	DecorationsFile        = "decorations.yaml"
	RampageDecorationsFile = "rampage_decorations.yaml"
	SkillsFile             = "skills.yaml"
	RampageSkillsFile      = "rampage_skills.yaml"
)

// LoadCatalog reads every table file from dir in parallel and builds a Catalog.
// Rampage tables are optional; the others must exist.
func LoadCatalog(ctx context.Context, dir string) (*Catalog, error) {
	var t Tables

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error { return loadTable(filepath.Join(dir, ArmorFile), true, &t.Armor) })
	g.Go(func() error { return loadTable(filepath.Join(dir, WeaponsFile), true, &t.Weapons) })
	g.Go(func() error { return loadTable(filepath.Join(dir, DecorationsFile), true, &t.Decorations) })
	g.Go(func() error { return loadTable(filepath.Join(dir, SkillsFile), true, &t.Skills) })
	g.Go(func() error {
		return loadTable(filepath.Join(dir, RampageDecorationsFile), false, &t.RampageDecorations)
	})
	g.Go(func() error { return loadTable(filepath.Join(dir, RampageSkillsFile), false, &t.RampageSkills) })

	if err := g.Wait(); err != nil {
		return nil, err
	}

	c := NewCatalog(t)
	counts := c.Counts()
	slog.Info("loaded catalog",
		"dir", dir,
		"armor", counts["armor"],
		"weapons", counts["weapons"],
		"decorations", counts["decorations"],
		"skills", counts["skills"],
		"rampage_decorations", counts["rampage_decorations"],
		"rampage_skills", counts["rampage_skills"])
	return c, nil
}

// loadTable decodes a YAML sequence from path into out.
func loadTable[T any](path string, required bool, out *[]T) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			slog.Debug("optional catalog table missing", "path", path)
			return nil
		}
		return fmt.Errorf("reading catalog table %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parsing catalog table %s: %w", path, err)
	}
	slog.Debug("loaded catalog table", "path", path, "count", len(*out))
	return nil
}
