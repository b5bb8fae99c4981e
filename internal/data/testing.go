package data

// Starter equipment names. A fresh loadout starts with these.
const (
	StarterWeapon = "Kamura Cleaver I"
	StarterHead   = "Kamura Head Scarf"
	StarterBody   = "Kamura Garb"
	StarterArms   = "Kamura Braces"
	StarterWaist  = "Kamura Obi"
	StarterLegs   = "Kamura Leggings"
)

func levels(n int) []SkillLevel {
	out := make([]SkillLevel, n)
	for i := range out {
		out[i] = SkillLevel{Level: i + 1}
	}
	return out
}

// TestTables returns a small synthetic catalog for cross-package tests.
// Starter pieces carry no skills so a default loadout evaluates to an empty skill set.
func TestTables() Tables {
	return Tables{
		Armor: []Armor{
			{ID: 1, Name: StarterHead, Rarity: 1, Rank: RankLow, Type: ArmorHead,
				Stats: ArmorStats{Defense: 1, FireRes: 2}},
			{ID: 2, Name: StarterBody, Rarity: 1, Rank: RankLow, Type: ArmorBody,
				Stats: ArmorStats{Defense: 1, WaterRes: 2}},
			{ID: 3, Name: StarterArms, Rarity: 1, Rank: RankLow, Type: ArmorArms,
				Stats: ArmorStats{Defense: 1, ThunderRes: 2}},
			{ID: 4, Name: StarterWaist, Rarity: 1, Rank: RankLow, Type: ArmorWaist,
				Stats: ArmorStats{Defense: 1, IceRes: 2}},
			{ID: 5, Name: StarterLegs, Rarity: 1, Rank: RankLow, Type: ArmorLegs,
				Stats: ArmorStats{Defense: 1, DragonRes: 2}},
			{ID: 10, Name: "Rathalos Helm S", Rarity: 5, Rank: RankHigh, Type: ArmorHead, Slots: []int{2, 1},
				Stats:  ArmorStats{Defense: 50, FireRes: 3, WaterRes: -1, ThunderRes: -1, IceRes: -2, DragonRes: -3},
				Skills: []ArmorSkill{{Name: "Attack Boost", Level: 1}, {Name: "Weakness Exploit", Level: 1}}},
			{ID: 11, Name: "Rathalos Mail S", Rarity: 5, Rank: RankHigh, Type: ArmorBody, Slots: []int{1, 1},
				Stats:  ArmorStats{Defense: 50, FireRes: 3, WaterRes: -1, ThunderRes: -1, IceRes: -2, DragonRes: -3},
				Skills: []ArmorSkill{{Name: "Attack Boost", Level: 2}}},
			{ID: 12, Name: "Kaiser Crown S", Rarity: 6, Rank: RankHigh, Type: ArmorHead, Slots: []int{3},
				Stats:  ArmorStats{Defense: 56, FireRes: 4, WaterRes: -2, ThunderRes: 1, IceRes: -3, DragonRes: 0},
				Skills: []ArmorSkill{{Name: "Critical Eye", Level: 1}, {Name: "Agitator", Level: 1}}},
			{ID: 13, Name: "Ingot Helm S", Rarity: 4, Rank: RankHigh, Type: ArmorHead, Slots: []int{2},
				Stats:  ArmorStats{Defense: 48, FireRes: -1, WaterRes: 1, ThunderRes: 2, IceRes: 1, DragonRes: 0},
				Skills: []ArmorSkill{{Name: "Attack Boost", Level: 1}}},
		},
		Weapons: []Weapon{
			{ID: 1, Name: StarterWeapon, Type: GreatSword, Rarity: 1, Rank: RankLow,
				Stats:        WeaponStats{Attack: 50},
				Sharpness:    []int{60, 30, 30, 0, 0, 0, 0},
				MaxSharpness: []int{60, 30, 30, 40, 0, 0, 0}},
			{ID: 2, Name: "Rathalos Glinsword", Type: GreatSword, Rarity: 6, Rank: RankHigh,
				Slots: []int{1}, RampageSlots: []int{2},
				Stats:        WeaponStats{Attack: 190, Affinity: -10, Element: &Element{Type: "fire", Power: 20}},
				Sharpness:    []int{60, 50, 40, 60, 30, 10, 0},
				MaxSharpness: []int{60, 50, 40, 60, 30, 40, 20}},
			{ID: 3, Name: "Kamura Glintblades I", Type: DualBlades, Rarity: 1, Rank: RankLow,
				Stats:        WeaponStats{Attack: 80, Status: &Element{Type: "poison", Power: 12}},
				Sharpness:    []int{50, 50, 50, 0, 0, 0, 0},
				MaxSharpness: []int{50, 50, 50, 0, 0, 0, 0}},
		},
		Decorations: []Decoration{
			{ID: 1, Name: "Attack Jewel 1", Size: 1, Skill: ArmorSkill{Name: "Attack Boost", Level: 1}},
			{ID: 2, Name: "Expert Jewel 1", Size: 1, Skill: ArmorSkill{Name: "Critical Eye", Level: 1}},
			{ID: 3, Name: "Critical Jewel 2", Size: 2, Skill: ArmorSkill{Name: "Critical Boost", Level: 1}},
			{ID: 4, Name: "Tenderizer Jewel 2", Size: 2, Skill: ArmorSkill{Name: "Weakness Exploit", Level: 1}},
			{ID: 5, Name: "Blaze Jewel 1", Size: 1, Skill: ArmorSkill{Name: "Fire Attack", Level: 1}},
			{ID: 6, Name: "Defense Jewel 1", Size: 1, Skill: ArmorSkill{Name: "Defense Boost", Level: 1}},
			{ID: 7, Name: "Challenger Jewel 2", Size: 2, Skill: ArmorSkill{Name: "Agitator", Level: 1}},
			{ID: 8, Name: "Handicraft Jewel 3", Size: 3, Skill: ArmorSkill{Name: "Handicraft", Level: 1}},
			{ID: 9, Name: "Attack Jewel+ 4", Size: 4, Skill: ArmorSkill{Name: "Attack Boost", Level: 2}},
		},
		RampageDecorations: []RampageDecoration{
			{ID: 1, Name: "Affinity Jewel 1", Size: 1, Skill: "Affinity Boost I"},
			{ID: 2, Name: "Attack Jewel II 2", Size: 2, Skill: "Attack Boost II"},
			{ID: 3, Name: "Element Jewel 3", Size: 3, Skill: "Element Boost III"},
		},
		Skills: []Skill{
			{ID: 1, Name: "Attack Boost", Levels: levels(7)},
			{ID: 2, Name: "Critical Eye", Levels: levels(7)},
			{ID: 3, Name: "Critical Boost", Levels: levels(3)},
			{ID: 4, Name: "Weakness Exploit", Levels: levels(3)},
			{ID: 5, Name: "Fire Attack", Levels: levels(5)},
			{ID: 6, Name: "Defense Boost", Levels: levels(7)},
			{ID: 7, Name: "Agitator", Levels: levels(5)},
			{ID: 8, Name: "Handicraft", Levels: levels(5)},
		},
		RampageSkills: []RampageSkill{
			{ID: 1, Name: "Affinity Boost I"},
			{ID: 2, Name: "Attack Boost II"},
			{ID: 3, Name: "Element Boost III"},
		},
	}
}

// NewTestCatalog returns a Catalog built from TestTables.
func NewTestCatalog() *Catalog {
	return NewCatalog(TestTables())
}
