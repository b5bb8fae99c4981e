// Package stats derives combat statistics of a loadout.
package stats

import (
	"slices"

	"github.com/udisondev/buildcalc/internal/data"
	"github.com/udisondev/buildcalc/internal/game/skill"
	"github.com/udisondev/buildcalc/internal/model"
)

// Base critical multipliers without skills.
const (
	BaseCritMultiplier        = 1.25
	BaseElementCritMultiplier = 1.0
)

// Affinity bounds, percent.
const (
	MinAffinity = -100
	MaxAffinity = 100
)

// Derived — combat statistics of an evaluated loadout.
type Derived struct {
	EffectiveRaw   float64 `json:"effectiveRaw"`
	Raw            float64 `json:"raw"`
	Affinity       float64 `json:"affinity"`
	CritMultiplier float64 `json:"critMultiplier"`

	EffectiveElement      float64 `json:"effectiveElement"`
	Element               float64 `json:"element"`
	ElementType           string  `json:"elementType,omitempty"`
	ElementCritMultiplier float64 `json:"elementCritMultiplier"`
	Status                float64 `json:"status"`
	StatusType            string  `json:"statusType,omitempty"`

	Defense    float64 `json:"defense"`
	FireRes    float64 `json:"fireRes"`
	WaterRes   float64 `json:"waterRes"`
	ThunderRes float64 `json:"thunderRes"`
	IceRes     float64 `json:"iceRes"`
	DragonRes  float64 `json:"dragonRes"`

	Sharpness            []int                `json:"sharpness"`
	SharpnessClass       int                  `json:"sharpnessClass"`
	SharpnessMultipliers SharpnessMultipliers `json:"sharpnessMultipliers"`
}

// Clone returns a copy that shares no memory with d.
func (d Derived) Clone() Derived {
	d.Sharpness = slices.Clone(d.Sharpness)
	return d
}

// Derive computes the statistics of l.
//
// Bases come from the weapon (attack, affinity, element, status, defense,
// sharpness) and the five armor pieces (defense, resistances). Unknown items
// contribute zero. Skill modifiers are then applied in a fixed order:
//
//  1. skills are visited by ascending name; situational skills only while active;
//  2. per stat, all ADD modifiers are summed onto the base;
//  3. then all MUL modifiers are multiplied in.
//
// Element modifiers only apply to weapons that have an element, status
// modifiers only to weapons that have a status. Sharpness class comes from
// the maximum sharpness curve.
//
// Unlike the raw game formula, affinity is also clamped to
// [MinAffinity, MaxAffinity] after all modifiers.
func Derive(l model.Loadout, c *data.Catalog, skills skill.EffectiveSet, r skill.EffectResolver) Derived {
	base := make(map[skill.Stat]float64, 12)
	base[skill.StatCritMultiplier] = BaseCritMultiplier
	base[skill.StatElementCritMultiplier] = BaseElementCritMultiplier

	var (
		out                   Derived
		elementType, statusTy string
		maxSharpness          []int
	)

	if w := c.Weapon(l.Weapon.Name); w != nil {
		base[skill.StatRaw] = float64(w.Stats.Attack)
		base[skill.StatAffinity] = float64(w.Stats.Affinity)
		base[skill.StatDefense] = float64(w.Stats.Defense)
		if e := w.Stats.Element; e != nil {
			elementType = e.Type
			base[skill.StatElement] = float64(e.Power)
		}
		if s := w.Stats.Status; s != nil {
			statusTy = s.Type
			base[skill.StatStatus] = float64(s.Power)
		}
		out.Sharpness = slices.Clone(w.Sharpness)
		maxSharpness = w.MaxSharpness
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
		base[skill.StatDefense] += float64(a.Stats.Defense)
		base[skill.StatFireRes] += float64(a.Stats.FireRes)
		base[skill.StatWaterRes] += float64(a.Stats.WaterRes)
		base[skill.StatThunderRes] += float64(a.Stats.ThunderRes)
		base[skill.StatIceRes] += float64(a.Stats.IceRes)
		base[skill.StatDragonRes] += float64(a.Stats.DragonRes)
	}

	adds := make(map[skill.Stat]float64)
	muls := make(map[skill.Stat]float64)
	if r != nil {
		for _, name := range skills.Names() {
			if r.Conditional(name) && !l.IsActive(name) {
				continue
			}
			for _, m := range r.Modifiers(name, skills.Effective(name)) {
				if !applies(m, elementType, statusTy) {
					continue
				}
				switch m.Type {
				case skill.StatModAdd:
					adds[m.Stat] += m.Value
				case skill.StatModMul:
					if _, ok := muls[m.Stat]; !ok {
						muls[m.Stat] = 1
					}
					muls[m.Stat] *= m.Value
				}
			}
		}
	}

	final := func(s skill.Stat) float64 {
		v := base[s] + adds[s]
		if m, ok := muls[s]; ok {
			v *= m
		}
		return v
	}

	out.Raw = final(skill.StatRaw)
	out.Affinity = min(max(final(skill.StatAffinity), MinAffinity), MaxAffinity)
	out.CritMultiplier = final(skill.StatCritMultiplier)
	out.ElementCritMultiplier = final(skill.StatElementCritMultiplier)
	out.Defense = final(skill.StatDefense)
	out.FireRes = final(skill.StatFireRes)
	out.WaterRes = final(skill.StatWaterRes)
	out.ThunderRes = final(skill.StatThunderRes)
	out.IceRes = final(skill.StatIceRes)
	out.DragonRes = final(skill.StatDragonRes)
	if elementType != "" {
		out.ElementType = elementType
		out.Element = final(skill.StatElement)
	}
	if statusTy != "" {
		out.StatusType = statusTy
		out.Status = final(skill.StatStatus)
	}

	out.SharpnessClass = Class(maxSharpness)
	out.SharpnessMultipliers = Multipliers(out.SharpnessClass)
	out.EffectiveRaw = out.Raw * out.SharpnessMultipliers.Raw
	out.EffectiveElement = out.Element * out.SharpnessMultipliers.Elemental

	return out
}

// applies reports whether m may modify a weapon with the given payload types.
func applies(m skill.StatModifier, elementType, statusType string) bool {
	switch m.Stat {
	case skill.StatElement, skill.StatElementCritMultiplier:
		if elementType == "" {
			return false
		}
	case skill.StatStatus:
		if statusType == "" {
			return false
		}
	}
	if m.Element == "" {
		return true
	}
	return m.Element == elementType || m.Element == statusType
}
