// Package scoring ranks armor pieces against a list of wanted skills.
package scoring

import (
	"cmp"
	"slices"

	"github.com/udisondev/buildcalc/internal/data"
	"github.com/udisondev/buildcalc/internal/game/ordering"
)

// ArmorScore scores one armor piece against targets: the innate levels of
// target skills, plus for every slot the best level of any target skill that
// a single decoration fitting the slot can grant.
//
// Slots are scored independently and greedily: the same decoration may count
// in several slots and no global assignment is solved. This is a fast ranking
// signal, not an optimizer.
func ArmorScore(a *data.Armor, targets []string, idx data.DecorationIndex) int {
	if a == nil || len(targets) == 0 {
		return 0
	}

	score := 0
	for _, s := range a.Skills {
		if s.Level > 0 && slices.Contains(targets, s.Name) {
			score += s.Level
		}
	}

	for _, slotSize := range a.Slots {
		best := 0
		for _, t := range targets {
			best = max(best, idx.BestLevel(t, slotSize))
		}
		score += best
	}
	return score
}

// Ranked — armor piece with its score.
type Ranked struct {
	Armor *data.Armor
	Score int
}

// RankArmor scores every armor of type t at rank r and sorts them:
// score desc, then slots desc, then name asc.
func RankArmor(c *data.Catalog, t data.ArmorType, r data.Rank, targets []string) []Ranked {
	names := c.ArmorByTypeAndRank(t, r)
	idx := c.DecorationIndex()

	out := make([]Ranked, 0, len(names))
	for _, name := range names {
		a := c.Armor(name)
		if a == nil {
			continue
		}
		out = append(out, Ranked{Armor: a, Score: ArmorScore(a, targets, idx)})
	}

	slices.SortStableFunc(out, func(x, y Ranked) int {
		if c := cmp.Compare(y.Score, x.Score); c != 0 {
			return c
		}
		if c := ordering.CompareSlots(y.Armor.Slots, x.Armor.Slots); c != 0 {
			return c
		}
		return cmp.Compare(x.Armor.Name, y.Armor.Name)
	})
	return out
}
