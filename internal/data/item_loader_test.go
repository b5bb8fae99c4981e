package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Lookups(t *testing.T) {
	t.Parallel()

	c := NewTestCatalog()

	require.NotNil(t, c.Armor(StarterHead))
	assert.Equal(t, ArmorHead, c.Armor(StarterHead).Type)
	require.NotNil(t, c.Weapon(StarterWeapon))
	assert.Equal(t, 50, c.Weapon(StarterWeapon).Stats.Attack)
	require.NotNil(t, c.Decoration("Attack Jewel 1"))
	require.NotNil(t, c.RampageDecoration("Attack Jewel II 2"))
	require.NotNil(t, c.RampageSkill("Attack Boost II"))
	assert.Equal(t, 7, c.Skill("Attack Boost").MaxLevel())

	assert.Nil(t, c.Armor("nope"))
	assert.Nil(t, c.Weapon("nope"))
	assert.Nil(t, c.Decoration("nope"))
	assert.Nil(t, c.Skill("nope"))
	assert.Zero(t, c.Skill("nope").MaxLevel())
}

func TestCatalog_NilSafe(t *testing.T) {
	t.Parallel()

	var c *Catalog
	assert.Nil(t, c.Armor(StarterHead))
	assert.Nil(t, c.Weapon(StarterWeapon))
	assert.Nil(t, c.Skill("Attack Boost"))
	assert.Nil(t, c.DecorationIndex())
	assert.Nil(t, c.SkillNames())
	assert.Nil(t, c.ArmorByTypeAndRank(ArmorHead, RankHigh))
	assert.Nil(t, c.WeaponsByTypeAndRank(GreatSword, RankLow))
}

func TestCatalog_ByTypeAndRank(t *testing.T) {
	t.Parallel()

	c := NewTestCatalog()

	tests := []struct {
		name string
		got  []string
		want []string
	}{
		{"high rank heads sorted", c.ArmorByTypeAndRank(ArmorHead, RankHigh),
			[]string{"Ingot Helm S", "Kaiser Crown S", "Rathalos Helm S"}},
		{"low rank heads", c.ArmorByTypeAndRank(ArmorHead, RankLow), []string{StarterHead}},
		{"empty category", c.ArmorByTypeAndRank(ArmorLegs, RankMaster), nil},
		{"invalid rank", c.ArmorByTypeAndRank(ArmorHead, Rank("ultra")), nil},
		{"invalid armor type", c.ArmorByTypeAndRank(ArmorType("TAIL"), RankLow), nil},
		{"low rank great swords", c.WeaponsByTypeAndRank(GreatSword, RankLow), []string{StarterWeapon}},
		{"high rank great swords", c.WeaponsByTypeAndRank(GreatSword, RankHigh), []string{"Rathalos Glinsword"}},
		{"invalid weapon type", c.WeaponsByTypeAndRank(WeaponType("SPEAR"), RankLow), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestCatalog_ListsAreCopies(t *testing.T) {
	t.Parallel()

	c := NewTestCatalog()
	names := c.ArmorByTypeAndRank(ArmorHead, RankHigh)
	require.NotEmpty(t, names)
	names[0] = "mutated"

	assert.Equal(t, "Ingot Helm S", c.ArmorByTypeAndRank(ArmorHead, RankHigh)[0])
}

func TestCatalog_Counts(t *testing.T) {
	t.Parallel()

	counts := NewTestCatalog().Counts()
	assert.Equal(t, 9, counts["armor"])
	assert.Equal(t, 3, counts["weapons"])
	assert.Equal(t, 9, counts["decorations"])
	assert.Equal(t, 3, counts["rampage_decorations"])
	assert.Equal(t, 8, counts["skills"])
	assert.Equal(t, 3, counts["rampage_skills"])
}

func TestDecorationIndex_BestLevel(t *testing.T) {
	t.Parallel()

	idx := NewTestCatalog().DecorationIndex()

	tests := []struct {
		skill    string
		slotSize int
		want     int
	}{
		{"Attack Boost", 1, 1},
		{"Attack Boost", 3, 1},
		{"Attack Boost", 4, 2},
		{"Attack Boost", 0, 0},
		{"Critical Boost", 1, 0},
		{"Critical Boost", 2, 1},
		{"Unknown", 4, 0},
	}

	for _, tt := range tests {
		if got := idx.BestLevel(tt.skill, tt.slotSize); got != tt.want {
			t.Errorf("BestLevel(%q, %d) = %d, want %d", tt.skill, tt.slotSize, got, tt.want)
		}
	}

	assert.Equal(t, []SkillDecoration{{DecoSize: 1, SkillLevel: 1}, {DecoSize: 4, SkillLevel: 2}}, idx["Attack Boost"])
}

func TestDecorationIndex_SkipsInvalid(t *testing.T) {
	t.Parallel()

	c := NewCatalog(Tables{Decorations: []Decoration{
		{Name: "Empty", Size: 1},
		{Name: "Zero Level", Size: 1, Skill: ArmorSkill{Name: "Attack Boost"}},
		{Name: "No Size", Skill: ArmorSkill{Name: "Attack Boost", Level: 1}},
	}})

	assert.Empty(t, c.DecorationIndex())
}
