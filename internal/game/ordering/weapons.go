package ordering

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/udisondev/buildcalc/internal/data"
)

// WeaponSortKey selects the column weapons are sorted by.
type WeaponSortKey string

const (
	SortByName         WeaponSortKey = "name"
	SortByAttack       WeaponSortKey = "attack"
	SortByAffinity     WeaponSortKey = "affinity"
	SortByDefense      WeaponSortKey = "defense"
	SortByElement      WeaponSortKey = "element"
	SortByStatus       WeaponSortKey = "status"
	SortBySlots        WeaponSortKey = "slots"
	SortByRampageSlots WeaponSortKey = "rampage-slots"
	SortBySharpness    WeaponSortKey = "sharpness"
)

var weaponComparators = map[WeaponSortKey]func(a, b *data.Weapon) int{
	SortByName:         func(a, b *data.Weapon) int { return cmp.Compare(a.Name, b.Name) },
	SortByAttack:       func(a, b *data.Weapon) int { return cmp.Compare(a.Stats.Attack, b.Stats.Attack) },
	SortByAffinity:     func(a, b *data.Weapon) int { return cmp.Compare(a.Stats.Affinity, b.Stats.Affinity) },
	SortByDefense:      func(a, b *data.Weapon) int { return cmp.Compare(a.Stats.Defense, b.Stats.Defense) },
	SortByElement:      func(a, b *data.Weapon) int { return CompareElements(a.Stats.Element, b.Stats.Element) },
	SortByStatus:       func(a, b *data.Weapon) int { return CompareElements(a.Stats.Status, b.Stats.Status) },
	SortBySlots:        func(a, b *data.Weapon) int { return CompareSlots(a.Slots, b.Slots) },
	SortByRampageSlots: func(a, b *data.Weapon) int { return CompareSlots(a.RampageSlots, b.RampageSlots) },
	SortBySharpness:    func(a, b *data.Weapon) int { return CompareSharpness(a.MaxSharpness, b.MaxSharpness) },
}

// ParseWeaponSortKey validates a sort column name.
func ParseWeaponSortKey(s string) (WeaponSortKey, error) {
	k := WeaponSortKey(s)
	if _, ok := weaponComparators[k]; !ok {
		return "", fmt.Errorf("unknown weapon sort key %q", s)
	}
	return k, nil
}

// SortWeapons sorts ws in place by key. Ties fall back to name (always ascending).
// Unknown keys sort by name.
func SortWeapons(ws []*data.Weapon, key WeaponSortKey, desc bool) {
	by, ok := weaponComparators[key]
	if !ok {
		by = weaponComparators[SortByName]
	}
	slices.SortStableFunc(ws, func(a, b *data.Weapon) int {
		c := by(a, b)
		if desc {
			c = -c
		}
		if c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
}
