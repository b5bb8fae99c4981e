// Package ordering provides total-order comparators for equipment attributes.
// Every comparator returns -1, 0 or 1 and is usable as a slices.SortFunc key.
package ordering

import (
	"cmp"

	"github.com/udisondev/buildcalc/internal/data"
)

// SharpnessBands is the number of bands in a sharpness curve (red..white).
const SharpnessBands = 7

// CompareSlots compares decoration slot lists position by position, a missing
// position counting as size 0. If every compared position is equal the longer
// list is greater.
func CompareSlots(a, b []int) int {
	n := max(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := cmp.Compare(at(a, i), at(b, i)); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

// CompareElements compares two optional element/status payloads.
// nil sorts below any payload, two nils are equal; otherwise type, then power.
func CompareElements(a, b *data.Element) int {
	switch {
	case a == nil && b == nil:
		return 0
	case b == nil:
		return 1
	case a == nil:
		return -1
	}
	if c := cmp.Compare(a.Type, b.Type); c != 0 {
		return c
	}
	return cmp.Compare(a.Power, b.Power)
}

// CompareSharpness compares curves from the white band (6) down to red (0);
// the first differing band decides. Missing bands count as 0.
func CompareSharpness(a, b []int) int {
	for i := SharpnessBands - 1; i >= 0; i-- {
		if c := cmp.Compare(at(a, i), at(b, i)); c != 0 {
			return c
		}
	}
	return 0
}

func at(s []int, i int) int {
	if i < len(s) {
		return s[i]
	}
	return 0
}
