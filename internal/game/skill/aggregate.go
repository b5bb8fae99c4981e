package skill

import (
	"sort"

	"github.com/udisondev/buildcalc/internal/data"
	"github.com/udisondev/buildcalc/internal/model"
)

// Calculated — merged level of one skill.
// EffectiveLevel = min(Level, MaxLevel) and is what the skill actually does.
type Calculated struct {
	Level          int `json:"level"`
	MaxLevel       int `json:"maxLevel"`
	EffectiveLevel int `json:"effectiveLevel"`
}

// EffectiveSet maps skill name → merged, capped level.
type EffectiveSet map[string]Calculated

// Names returns the skill names in ascending order.
func (s EffectiveSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Effective returns the effective level of skill, 0 if absent.
func (s EffectiveSet) Effective(skill string) int {
	return s[skill].EffectiveLevel
}

// Clone returns a copy.
func (s EffectiveSet) Clone() EffectiveSet {
	out := make(EffectiveSet, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Aggregate collects every skill contribution of the loadout, sums levels per
// skill name and caps each sum at the skill's maximum level.
//
// Skills missing from the catalog are not capped (their cap is the summed level).
func Aggregate(l model.Loadout, c *data.Catalog) EffectiveSet {
	totals := make(map[string]int)
	for _, s := range Contributions(l, c) {
		totals[s.Name] += s.Level
	}

	out := make(EffectiveSet, len(totals))
	for name, level := range totals {
		if level <= 0 {
			continue
		}
		maxLevel := c.Skill(name).MaxLevel()
		if maxLevel <= 0 {
			maxLevel = level
		}
		out[name] = Calculated{
			Level:          level,
			MaxLevel:       maxLevel,
			EffectiveLevel: min(level, maxLevel),
		}
	}
	return out
}

// Contributions lists every skill grant of the loadout in a fixed order:
// weapon decorations, then armor (innate skills, decorations) head to legs,
// then talisman skills and talisman decorations.
func Contributions(l model.Loadout, c *data.Catalog) []data.ArmorSkill {
	var out []data.ArmorSkill

	if w := c.Weapon(l.Weapon.Name); w != nil {
		out = appendDecorationSkills(out, c, w.Slots, l.Weapon.Decorations)
	}

	for _, slot := range model.ArmorSlots {
		choice, ok := l.EquippedArmor(slot)
		if !ok {
			continue
		}
		a := c.Armor(choice.Name)
		if a == nil {
			continue
		}
		for _, s := range a.Skills {
			if s.Name != "" && s.Level > 0 {
				out = append(out, s)
			}
		}
		out = appendDecorationSkills(out, c, a.Slots, choice.Decorations)
	}

	for _, s := range l.Talisman.Skills() {
		if s.Name != "" && s.Level > 0 {
			out = append(out, data.ArmorSkill{Name: s.Name, Level: s.Level})
		}
	}
	for _, slot := range l.Talisman.Slots() {
		if d := fittingDecoration(c, slot.Name, slot.Size); d != nil {
			out = append(out, d.Skill)
		}
	}

	return out
}

// appendDecorationSkills adds the skill of every occupant that fits its slot.
// Occupants past the end of slots are ignored.
func appendDecorationSkills(out []data.ArmorSkill, c *data.Catalog, slots []int, occupants []string) []data.ArmorSkill {
	for i, name := range occupants {
		if i >= len(slots) {
			break
		}
		if d := fittingDecoration(c, name, slots[i]); d != nil {
			out = append(out, d.Skill)
		}
	}
	return out
}

// fits reports whether a decoration of size fits a slot of slotSize.
// Size 0 means "no slot" on either side.
func fits(size, slotSize int) bool {
	return slotSize > 0 && size > 0 && size <= slotSize
}

// fittingDecoration returns the decoration named name if it exists, grants a
// skill and fits a slot of slotSize; nil otherwise.
func fittingDecoration(c *data.Catalog, name string, slotSize int) *data.Decoration {
	if name == "" {
		return nil
	}
	d := c.Decoration(name)
	if d == nil || !fits(d.Size, slotSize) || d.Skill.Name == "" || d.Skill.Level <= 0 {
		return nil
	}
	return d
}

// RampageSkills returns the rampage skills granted by the weapon's rampage
// decorations, de-duplicated and sorted. Fitting rules match regular slots.
func RampageSkills(l model.Loadout, c *data.Catalog) []string {
	w := c.Weapon(l.Weapon.Name)
	if w == nil {
		return nil
	}

	seen := make(map[string]struct{})
	for i, name := range l.Weapon.RampageDecorations {
		if i >= len(w.RampageSlots) {
			break
		}
		if name == "" {
			continue
		}
		d := c.RampageDecoration(name)
		if d == nil || !fits(d.Size, w.RampageSlots[i]) || d.Skill == "" {
			continue
		}
		seen[d.Skill] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
