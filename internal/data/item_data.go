package data

// ArmorType — body slot an armor piece occupies.
type ArmorType string

const (
	ArmorHead  ArmorType = "HEAD"
	ArmorBody  ArmorType = "BODY"
	ArmorArms  ArmorType = "ARMS"
	ArmorWaist ArmorType = "WAIST"
	ArmorLegs  ArmorType = "LEGS"
)

// ArmorTypes lists armor types in display order.
var ArmorTypes = []ArmorType{ArmorHead, ArmorBody, ArmorArms, ArmorWaist, ArmorLegs}

// WeaponType — weapon class.
type WeaponType string

const (
	GreatSword     WeaponType = "GREAT_SWORD"
	SwordAndShield WeaponType = "SWORD_AND_SHIELD"
	DualBlades     WeaponType = "DUAL_BLADES"
	LongSword      WeaponType = "LONG_SWORD"
	Hammer         WeaponType = "HAMMER"
	HuntingHorn    WeaponType = "HUNTING_HORN"
	Lance          WeaponType = "LANCE"
	Gunlance       WeaponType = "GUNLANCE"
	SwitchAxe      WeaponType = "SWITCH_AXE"
	ChargeBlade    WeaponType = "CHARGE_BLADE"
	InsectGlaive   WeaponType = "INSECT_GLAIVE"
	Bow            WeaponType = "BOW"
	HeavyBowgun    WeaponType = "HEAVY_BOWGUN"
	LightBowgun    WeaponType = "LIGHT_BOWGUN"
)

// WeaponTypes lists every weapon class.
var WeaponTypes = []WeaponType{
	GreatSword, SwordAndShield, DualBlades, LongSword, Hammer, HuntingHorn, Lance,
	Gunlance, SwitchAxe, ChargeBlade, InsectGlaive, Bow, HeavyBowgun, LightBowgun,
}

// IsWeaponType reports whether s names a known weapon class.
func IsWeaponType(s string) bool {
	for _, t := range WeaponTypes {
		if string(t) == s {
			return true
		}
	}
	return false
}

// IsArmorType reports whether s names a known armor slot type.
func IsArmorType(s string) bool {
	for _, t := range ArmorTypes {
		if string(t) == s {
			return true
		}
	}
	return false
}

// ArmorSkill — skill granted at a fixed level (armor innate skill, decoration, talisman skill).
type ArmorSkill struct {
	Name  string `yaml:"name" json:"name"`
	Level int    `yaml:"level" json:"level"`
}

// ArmorStats — defense and elemental resistances of one armor piece.
type ArmorStats struct {
	Defense    int `yaml:"defense" json:"defense"`
	FireRes    int `yaml:"fire_res" json:"fireRes"`
	WaterRes   int `yaml:"water_res" json:"waterRes"`
	IceRes     int `yaml:"ice_res" json:"iceRes"`
	ThunderRes int `yaml:"thunder_res" json:"thunderRes"`
	DragonRes  int `yaml:"dragon_res" json:"dragonRes"`
}

// Armor — static armor definition.
type Armor struct {
	ID     int          `yaml:"id" json:"id"`
	Name   string       `yaml:"name" json:"name"`
	Rarity int          `yaml:"rarity" json:"rarity"`
	Rank   Rank         `yaml:"rank" json:"rank"`
	Type   ArmorType    `yaml:"type" json:"type"`
	Slots  []int        `yaml:"slots" json:"slots"`
	Stats  ArmorStats   `yaml:"stats" json:"stats"`
	Skills []ArmorSkill `yaml:"skills" json:"skills"`
}

// Element — elemental or status payload of a weapon. A nil *Element means none.
type Element struct {
	Type  string `yaml:"type" json:"type"`
	Power int    `yaml:"power" json:"power"`
}

// WeaponStats — base combat stats of a weapon.
type WeaponStats struct {
	Attack   int      `yaml:"attack" json:"attack"`
	Affinity int      `yaml:"affinity" json:"affinity"`
	Defense  int      `yaml:"defense" json:"defense"`
	Element  *Element `yaml:"element" json:"element"`
	Status   *Element `yaml:"status" json:"status"`
}

// Weapon — static weapon definition.
// Sharpness and MaxSharpness hold 7 band lengths, red (0) to white (6).
type Weapon struct {
	ID           int         `yaml:"id" json:"id"`
	Name         string      `yaml:"name" json:"name"`
	Type         WeaponType  `yaml:"type" json:"type"`
	Rarity       int         `yaml:"rarity" json:"rarity"`
	Rank         Rank        `yaml:"rank" json:"rank"`
	Slots        []int       `yaml:"slots" json:"slots"`
	RampageSlots []int       `yaml:"rampage_slots" json:"rampageSlots"`
	Stats        WeaponStats `yaml:"stats" json:"stats"`
	Sharpness    []int       `yaml:"sharpness" json:"sharpness"`
	MaxSharpness []int       `yaml:"max_sharpness" json:"maxSharpness"`
}

// Decoration — socketable jewel granting exactly one skill.
type Decoration struct {
	ID    int        `yaml:"id" json:"id"`
	Name  string     `yaml:"name" json:"name"`
	Skill ArmorSkill `yaml:"skill" json:"skill"`
	Size  int        `yaml:"size" json:"size"`
}

// RampageDecoration — jewel for weapon rampage slots, grants a rampage skill (no level).
type RampageDecoration struct {
	ID    int    `yaml:"id" json:"id"`
	Name  string `yaml:"name" json:"name"`
	Skill string `yaml:"skill" json:"skill"`
	Size  int    `yaml:"size" json:"size"`
}

// SkillLevel — description of one level of a skill.
type SkillLevel struct {
	Level       int    `yaml:"level" json:"level"`
	Description string `yaml:"description" json:"description"`
}

// Skill — armor skill definition.
type Skill struct {
	ID          int          `yaml:"id" json:"id"`
	Name        string       `yaml:"name" json:"name"`
	Description string       `yaml:"description" json:"description"`
	Levels      []SkillLevel `yaml:"levels" json:"levels"`
}

// MaxLevel returns the highest attainable level, i.e. the number of defined levels.
func (s *Skill) MaxLevel() int {
	if s == nil {
		return 0
	}
	return len(s.Levels)
}

// RampageSkill — weapon rampage skill definition.
type RampageSkill struct {
	ID          int    `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}
