// Package engine evaluates loadouts against an injected catalog and effect resolver.
//
// Evaluation is pure: no I/O, no shared mutable state. One Engine can serve
// any number of goroutines.
package engine

import (
	"slices"

	"github.com/udisondev/buildcalc/internal/data"
	"github.com/udisondev/buildcalc/internal/game/ordering"
	"github.com/udisondev/buildcalc/internal/game/scoring"
	"github.com/udisondev/buildcalc/internal/game/skill"
	"github.com/udisondev/buildcalc/internal/game/stats"
	"github.com/udisondev/buildcalc/internal/model"
)

// Result — outcome of one evaluation.
type Result struct {
	Skills  skill.EffectiveSet `json:"skills"`
	Rampage []string           `json:"rampageSkills"`
	Stats   stats.Derived      `json:"stats"`
}

// Clone returns a deep copy.
func (r Result) Clone() Result {
	return Result{
		Skills:  r.Skills.Clone(),
		Rampage: slices.Clone(r.Rampage),
		Stats:   r.Stats.Clone(),
	}
}

// Evaluator evaluates a loadout snapshot.
type Evaluator interface {
	Evaluate(l model.Loadout) Result
}

// Engine binds a catalog and an effect resolver.
type Engine struct {
	catalog  *data.Catalog
	resolver skill.EffectResolver
}

// New creates an Engine. A nil resolver disables skill effects on stats.
func New(c *data.Catalog, r skill.EffectResolver) *Engine {
	return &Engine{catalog: c, resolver: r}
}

// Catalog returns the bound catalog.
func (e *Engine) Catalog() *data.Catalog {
	return e.catalog
}

// Evaluate aggregates skills and derives stats of l.
func (e *Engine) Evaluate(l model.Loadout) Result {
	skills := skill.Aggregate(l, e.catalog)
	return Result{
		Skills:  skills,
		Rampage: skill.RampageSkills(l, e.catalog),
		Stats:   stats.Derive(l, e.catalog, skills, e.resolver),
	}
}

// ScoreArmor scores the armor named name against targets; unknown armor scores 0.
func (e *Engine) ScoreArmor(name string, targets []string) int {
	return scoring.ArmorScore(e.catalog.Armor(name), targets, e.catalog.DecorationIndex())
}

// RankArmor ranks all armor of type t at rank r against targets.
func (e *Engine) RankArmor(t data.ArmorType, r data.Rank, targets []string) []scoring.Ranked {
	return scoring.RankArmor(e.catalog, t, r, targets)
}

// Weapons returns weapons of type t at rank r sorted by key.
func (e *Engine) Weapons(t data.WeaponType, r data.Rank, key ordering.WeaponSortKey, desc bool) []*data.Weapon {
	names := e.catalog.WeaponsByTypeAndRank(t, r)
	out := make([]*data.Weapon, 0, len(names))
	for _, name := range names {
		if w := e.catalog.Weapon(name); w != nil {
			out = append(out, w)
		}
	}
	ordering.SortWeapons(out, key, desc)
	return out
}
