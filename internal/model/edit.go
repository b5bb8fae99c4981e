package model

import (
	"crypto/rand"
	"encoding/hex"
	"slices"

	"github.com/udisondev/buildcalc/internal/data"
)

// Edit is a single change applied to a Loadout by Apply.
type Edit interface {
	apply(l Loadout) Loadout
}

// NewBuildID returns a random 20-char hex identifier for a build.
func NewBuildID() string {
	var b [10]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

// NewLoadout returns a DefaultLoadout with a fresh ID.
func NewLoadout() Loadout {
	l := DefaultLoadout()
	l.ID = NewBuildID()
	return l
}

// Apply returns a copy of l with e applied. l itself is never modified.
func Apply(l Loadout, e Edit) Loadout {
	if e == nil {
		return l.Clone()
	}
	return e.apply(l.Clone())
}

// ResetBuild replaces the build with a fresh default one.
type ResetBuild struct{}

func (ResetBuild) apply(Loadout) Loadout { return NewLoadout() }

// SetBuildName renames the build.
type SetBuildName struct{ Name string }

func (e SetBuildName) apply(l Loadout) Loadout {
	l.Name = e.Name
	return l
}

// SetTargetRank changes the target rank; unknown tokens become master.
type SetTargetRank struct{ Rank string }

func (e SetTargetRank) apply(l Loadout) Loadout {
	l.TargetRank = data.NormalizeRank(e.Rank)
	return l
}

// AddPrioritySkill appends a priority skill; the list stays sorted.
type AddPrioritySkill struct{ Name string }

func (e AddPrioritySkill) apply(l Loadout) Loadout {
	l.PrioritySkills = append(l.PrioritySkills, e.Name)
	slices.Sort(l.PrioritySkills)
	return l
}

// RemovePrioritySkill drops every occurrence of a priority skill.
type RemovePrioritySkill struct{ Name string }

func (e RemovePrioritySkill) apply(l Loadout) Loadout {
	l.PrioritySkills = slices.DeleteFunc(l.PrioritySkills, func(s string) bool { return s == e.Name })
	slices.Sort(l.PrioritySkills)
	return l
}

// SetWeapon replaces the weapon choice.
type SetWeapon struct{ Weapon WeaponChoice }

func (e SetWeapon) apply(l Loadout) Loadout {
	l.Weapon = WeaponChoice{
		Name:               e.Weapon.Name,
		Decorations:        slices.Clone(e.Weapon.Decorations),
		RampageDecorations: slices.Clone(e.Weapon.RampageDecorations),
	}
	return l
}

// SetArmor replaces the armor choice of one slot.
type SetArmor struct {
	Slot  ArmorSlot
	Armor ArmorChoice
}

func (e SetArmor) apply(l Loadout) Loadout {
	if e.Slot.ArmorType() == "" {
		return l
	}
	if l.Armor == nil {
		l.Armor = make(map[ArmorSlot]ArmorChoice, len(ArmorSlots))
	}
	l.Armor[e.Slot] = ArmorChoice{Name: e.Armor.Name, Decorations: slices.Clone(e.Armor.Decorations)}
	return l
}

// SetTalisman replaces the talisman.
type SetTalisman struct{ Talisman TalismanChoice }

func (e SetTalisman) apply(l Loadout) Loadout {
	l.Talisman = e.Talisman.clone()
	return l
}

// SetActiveSkill toggles a situational skill. Skills outside DefaultActiveSkills are ignored.
type SetActiveSkill struct {
	Skill string
	Value bool
}

func (e SetActiveSkill) apply(l Loadout) Loadout {
	if _, ok := DefaultActiveSkills()[e.Skill]; !ok {
		return l
	}
	if l.ActiveSkills == nil {
		l.ActiveSkills = DefaultActiveSkills()
	}
	l.ActiveSkills[e.Skill] = e.Value
	return l
}
