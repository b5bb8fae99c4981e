package ordering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/buildcalc/internal/data"
)

func weaponFixtures() []*data.Weapon {
	return []*data.Weapon{
		{Name: "Charlie", Stats: data.WeaponStats{Attack: 100, Affinity: 10},
			Slots: []int{1}, MaxSharpness: []int{10, 10, 10, 10, 10, 10, 10}},
		{Name: "Alpha", Stats: data.WeaponStats{Attack: 200, Affinity: -10, Element: &data.Element{Type: "fire", Power: 20}},
			Slots: []int{3, 1}, MaxSharpness: []int{10, 10, 10, 10}},
		{Name: "Bravo", Stats: data.WeaponStats{Attack: 100, Status: &data.Element{Type: "poison", Power: 12}},
			Slots: []int{3}, MaxSharpness: []int{10, 10, 10, 10, 10}},
	}
}

func names(ws []*data.Weapon) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.Name
	}
	return out
}

func TestSortWeapons(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  WeaponSortKey
		desc bool
		want []string
	}{
		{SortByName, false, []string{"Alpha", "Bravo", "Charlie"}},
		{SortByName, true, []string{"Charlie", "Bravo", "Alpha"}},
		{SortByAttack, false, []string{"Bravo", "Charlie", "Alpha"}},
		// ties stay name-ascending in both directions
		{SortByAttack, true, []string{"Alpha", "Bravo", "Charlie"}},
		{SortByAffinity, true, []string{"Charlie", "Bravo", "Alpha"}},
		{SortByElement, true, []string{"Alpha", "Bravo", "Charlie"}},
		{SortByStatus, true, []string{"Bravo", "Alpha", "Charlie"}},
		{SortBySlots, true, []string{"Alpha", "Bravo", "Charlie"}},
		{SortBySharpness, true, []string{"Charlie", "Bravo", "Alpha"}},
		{WeaponSortKey("bogus"), false, []string{"Alpha", "Bravo", "Charlie"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			t.Parallel()
			ws := weaponFixtures()
			SortWeapons(ws, tt.key, tt.desc)
			assert.Equal(t, tt.want, names(ws))
		})
	}
}

func TestParseWeaponSortKey(t *testing.T) {
	t.Parallel()

	k, err := ParseWeaponSortKey("rampage-slots")
	require.NoError(t, err)
	assert.Equal(t, SortByRampageSlots, k)

	_, err = ParseWeaponSortKey("weight")
	assert.Error(t, err)
}
