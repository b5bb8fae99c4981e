package model

import (
	"maps"
	"slices"

	"github.com/udisondev/buildcalc/internal/data"
)

// ArmorSlot identifies an armor position on a loadout.
type ArmorSlot string

const (
	SlotHead  ArmorSlot = "head"
	SlotBody  ArmorSlot = "body"
	SlotArms  ArmorSlot = "arms"
	SlotWaist ArmorSlot = "waist"
	SlotLegs  ArmorSlot = "legs"
)

// ArmorSlots lists armor slots in evaluation order.
var ArmorSlots = []ArmorSlot{SlotHead, SlotBody, SlotArms, SlotWaist, SlotLegs}

// ArmorType returns the catalog armor type equipped in this slot.
func (s ArmorSlot) ArmorType() data.ArmorType {
	switch s {
	case SlotHead:
		return data.ArmorHead
	case SlotBody:
		return data.ArmorBody
	case SlotArms:
		return data.ArmorArms
	case SlotWaist:
		return data.ArmorWaist
	case SlotLegs:
		return data.ArmorLegs
	}
	return ""
}

// WeaponChoice — selected weapon and its slot occupants ("" = empty slot).
type WeaponChoice struct {
	Name               string   `yaml:"name" json:"name"`
	Decorations        []string `yaml:"decorations" json:"decorations"`
	RampageDecorations []string `yaml:"rampage_decorations" json:"rampageDecorations"`
}

// ArmorChoice — selected armor piece and its slot occupants ("" = empty slot).
type ArmorChoice struct {
	Name        string   `yaml:"name" json:"name"`
	Decorations []string `yaml:"decorations" json:"decorations"`
}

// TalismanSkillChoice — skill rolled on a talisman.
type TalismanSkillChoice struct {
	Name  string `yaml:"name" json:"name"`
	Level int    `yaml:"level" json:"level"`
}

// TalismanDecorationChoice — a talisman slot of Size holding Name ("" = empty).
type TalismanDecorationChoice struct {
	Size int    `yaml:"size" json:"size"`
	Name string `yaml:"name" json:"name"`
}

// TalismanChoice — up to two skills and three decoration slots. nil = unused.
type TalismanChoice struct {
	Skill1 *TalismanSkillChoice      `yaml:"skill1" json:"skill1"`
	Skill2 *TalismanSkillChoice      `yaml:"skill2" json:"skill2"`
	Slot1  *TalismanDecorationChoice `yaml:"slot1" json:"slot1"`
	Slot2  *TalismanDecorationChoice `yaml:"slot2" json:"slot2"`
	Slot3  *TalismanDecorationChoice `yaml:"slot3" json:"slot3"`
}

// Skills returns the non-nil talisman skills in order.
func (t TalismanChoice) Skills() []TalismanSkillChoice {
	out := make([]TalismanSkillChoice, 0, 2)
	for _, s := range []*TalismanSkillChoice{t.Skill1, t.Skill2} {
		if s != nil {
			out = append(out, *s)
		}
	}
	return out
}

// Slots returns the non-nil talisman decoration slots in order.
func (t TalismanChoice) Slots() []TalismanDecorationChoice {
	out := make([]TalismanDecorationChoice, 0, 3)
	for _, s := range []*TalismanDecorationChoice{t.Slot1, t.Slot2, t.Slot3} {
		if s != nil {
			out = append(out, *s)
		}
	}
	return out
}

// Loadout — a complete build selection. Evaluations receive it by value and never modify it.
type Loadout struct {
	ID             string                    `yaml:"id" json:"id"`
	Name           string                    `yaml:"name" json:"name"`
	Weapon         WeaponChoice              `yaml:"weapon" json:"weapon"`
	Armor          map[ArmorSlot]ArmorChoice `yaml:"armor" json:"armor"`
	Talisman       TalismanChoice            `yaml:"talisman" json:"talisman"`
	TargetRank     data.Rank                 `yaml:"target_rank" json:"targetRank"`
	PrioritySkills []string                  `yaml:"priority_skills" json:"prioritySkills"`
	ActiveSkills   map[string]bool           `yaml:"active_skills" json:"activeSkills"`
}

// EquippedArmor returns the armor choice for slot; ok=false if the slot is empty.
func (l Loadout) EquippedArmor(slot ArmorSlot) (ArmorChoice, bool) {
	a, ok := l.Armor[slot]
	if !ok || a.Name == "" {
		return ArmorChoice{}, false
	}
	return a, true
}

// IsActive reports whether a situational skill is toggled on.
func (l Loadout) IsActive(skill string) bool {
	return l.ActiveSkills[skill]
}

// Clone returns a deep copy.
func (l Loadout) Clone() Loadout {
	out := l
	out.Weapon.Decorations = slices.Clone(l.Weapon.Decorations)
	out.Weapon.RampageDecorations = slices.Clone(l.Weapon.RampageDecorations)
	if l.Armor != nil {
		out.Armor = make(map[ArmorSlot]ArmorChoice, len(l.Armor))
		for slot, a := range l.Armor {
			a.Decorations = slices.Clone(a.Decorations)
			out.Armor[slot] = a
		}
	}
	out.Talisman = l.Talisman.clone()
	out.PrioritySkills = slices.Clone(l.PrioritySkills)
	out.ActiveSkills = maps.Clone(l.ActiveSkills)
	return out
}

func (t TalismanChoice) clone() TalismanChoice {
	cp := func(s *TalismanSkillChoice) *TalismanSkillChoice {
		if s == nil {
			return nil
		}
		v := *s
		return &v
	}
	cpSlot := func(s *TalismanDecorationChoice) *TalismanDecorationChoice {
		if s == nil {
			return nil
		}
		v := *s
		return &v
	}
	return TalismanChoice{
		Skill1: cp(t.Skill1),
		Skill2: cp(t.Skill2),
		Slot1:  cpSlot(t.Slot1),
		Slot2:  cpSlot(t.Slot2),
		Slot3:  cpSlot(t.Slot3),
	}
}

// DefaultActiveSkills — situational skills the user can toggle, all off by default.
func DefaultActiveSkills() map[string]bool {
	return map[string]bool{
		"Agitator":         false,
		"Weakness Exploit": false,
		"Latent Power":     false,
		"Peak Performance": false,
		"Resentment":       false,
		"Resuscitate":      false,
		"Maximum Might":    false,
		"Counterstrike":    false,
		"Offensive Guard":  false,
		"Coalescence":      false,
		"Dragonheart":      false,
		"Heroics":          false,
		"Critical Draw":    false,
		"Punishing Draw":   false,
		"Affinity Sliding": false,
	}
}

// DefaultLoadout returns the starter build: Kamura weapon and armor, empty talisman, master rank.
func DefaultLoadout() Loadout {
	return Loadout{
		Weapon: WeaponChoice{Name: data.StarterWeapon},
		Armor: map[ArmorSlot]ArmorChoice{
			SlotHead:  {Name: data.StarterHead},
			SlotBody:  {Name: data.StarterBody},
			SlotArms:  {Name: data.StarterArms},
			SlotWaist: {Name: data.StarterWaist},
			SlotLegs:  {Name: data.StarterLegs},
		},
		TargetRank:   data.RankMaster,
		ActiveSkills: DefaultActiveSkills(),
	}
}
