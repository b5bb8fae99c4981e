package data

import (
	"slices"
	"sort"
)

// Tables — raw catalog tables as loaded from disk (or built by hand in tests).
type Tables struct {
	Armor              []Armor
	Weapons            []Weapon
	Decorations        []Decoration
	RampageDecorations []RampageDecoration
	Skills             []Skill
	RampageSkills      []RampageSkill
}

// Catalog — immutable game-data registry. Build once with NewCatalog and share freely:
// nothing mutates a Catalog after construction, so concurrent readers need no locking.
type Catalog struct {
	armor              map[string]*Armor
	weapons            map[string]*Weapon
	decorations        map[string]*Decoration
	rampageDecorations map[string]*RampageDecoration
	skills             map[string]*Skill
	rampageSkills      map[string]*RampageSkill

	armorByType   map[ArmorType]ItemsByRank
	weaponsByType map[WeaponType]ItemsByRank
	decoIndex     DecorationIndex
}

// NewCatalog indexes tables by name and derives the categorized lists and the
// skill → decoration index. Later duplicates of a name replace earlier ones.
func NewCatalog(t Tables) *Catalog {
	c := &Catalog{
		armor:              make(map[string]*Armor, len(t.Armor)),
		weapons:            make(map[string]*Weapon, len(t.Weapons)),
		decorations:        make(map[string]*Decoration, len(t.Decorations)),
		rampageDecorations: make(map[string]*RampageDecoration, len(t.RampageDecorations)),
		skills:             make(map[string]*Skill, len(t.Skills)),
		rampageSkills:      make(map[string]*RampageSkill, len(t.RampageSkills)),
		armorByType:        make(map[ArmorType]ItemsByRank, len(ArmorTypes)),
		weaponsByType:      make(map[WeaponType]ItemsByRank, len(WeaponTypes)),
	}

	for i := range t.Armor {
		a := t.Armor[i]
		c.armor[a.Name] = &a
	}
	for i := range t.Weapons {
		w := t.Weapons[i]
		c.weapons[w.Name] = &w
	}
	for i := range t.Decorations {
		d := t.Decorations[i]
		c.decorations[d.Name] = &d
	}
	for i := range t.RampageDecorations {
		d := t.RampageDecorations[i]
		c.rampageDecorations[d.Name] = &d
	}
	for i := range t.Skills {
		s := t.Skills[i]
		c.skills[s.Name] = &s
	}
	for i := range t.RampageSkills {
		s := t.RampageSkills[i]
		c.rampageSkills[s.Name] = &s
	}

	for _, name := range sortedKeys(c.armor) {
		a := c.armor[name]
		items := c.armorByType[a.Type]
		items.add(a.Rank, name)
		c.armorByType[a.Type] = items
	}
	for _, name := range sortedKeys(c.weapons) {
		w := c.weapons[name]
		items := c.weaponsByType[w.Type]
		items.add(w.Rank, name)
		c.weaponsByType[w.Type] = items
	}

	c.decoIndex = buildDecorationIndex(c.decorations)
	return c
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Armor returns the armor named name, or nil if unknown.
func (c *Catalog) Armor(name string) *Armor {
	if c == nil {
		return nil
	}
	return c.armor[name]
}

// Weapon returns the weapon named name, or nil if unknown.
func (c *Catalog) Weapon(name string) *Weapon {
	if c == nil {
		return nil
	}
	return c.weapons[name]
}

// Decoration returns the decoration named name, or nil if unknown.
func (c *Catalog) Decoration(name string) *Decoration {
	if c == nil {
		return nil
	}
	return c.decorations[name]
}

// RampageDecoration returns the rampage decoration named name, or nil if unknown.
func (c *Catalog) RampageDecoration(name string) *RampageDecoration {
	if c == nil {
		return nil
	}
	return c.rampageDecorations[name]
}

// Skill returns the skill named name, or nil if unknown.
func (c *Catalog) Skill(name string) *Skill {
	if c == nil {
		return nil
	}
	return c.skills[name]
}

// RampageSkill returns the rampage skill named name, or nil if unknown.
func (c *Catalog) RampageSkill(name string) *RampageSkill {
	if c == nil {
		return nil
	}
	return c.rampageSkills[name]
}

// DecorationIndex returns the skill → decoration index.
func (c *Catalog) DecorationIndex() DecorationIndex {
	if c == nil {
		return nil
	}
	return c.decoIndex
}

// SkillNames returns all skill names, sorted.
func (c *Catalog) SkillNames() []string {
	if c == nil {
		return nil
	}
	return sortedKeys(c.skills)
}

// WeaponsByTypeAndRank returns weapon names of type t available at rank r, sorted by name.
// Unknown types and invalid ranks yield nil.
func (c *Catalog) WeaponsByTypeAndRank(t WeaponType, r Rank) []string {
	if c == nil || !IsWeaponType(string(t)) || !r.Valid() {
		return nil
	}
	return slices.Clone(c.weaponsByType[t].ForRank(r))
}

// ArmorByTypeAndRank returns armor names of type t available at rank r, sorted by name.
// Unknown types and invalid ranks yield nil.
func (c *Catalog) ArmorByTypeAndRank(t ArmorType, r Rank) []string {
	if c == nil || !IsArmorType(string(t)) || !r.Valid() {
		return nil
	}
	return slices.Clone(c.armorByType[t].ForRank(r))
}

// Counts returns table sizes, used for logging.
func (c *Catalog) Counts() map[string]int {
	return map[string]int{
		"armor":               len(c.armor),
		"weapons":             len(c.weapons),
		"decorations":         len(c.decorations),
		"rampage_decorations": len(c.rampageDecorations),
		"skills":              len(c.skills),
		"rampage_skills":      len(c.rampageSkills),
	}
}
