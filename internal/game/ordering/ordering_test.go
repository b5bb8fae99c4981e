package ordering

import (
	"testing"

	"github.com/udisondev/buildcalc/internal/data"
)

func TestCompareSlots(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b []int
		want int
	}{
		{"longer wins on equal prefix", []int{3, 2, 1}, []int{3, 2}, 1},
		{"shorter loses on equal prefix", []int{3, 2}, []int{3, 2, 1}, -1},
		{"first position decides", []int{1}, []int{2}, -1},
		{"bigger first slot beats more slots", []int{4}, []int{3, 3, 3}, 1},
		{"equal", []int{2, 1}, []int{2, 1}, 0},
		{"both empty", nil, nil, 0},
		{"empty vs any", nil, []int{1}, -1},
		{"trailing zero still longer", []int{2, 0}, []int{2}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CompareSlots(tt.a, tt.b); got != tt.want {
				t.Errorf("CompareSlots(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := CompareSlots(tt.b, tt.a); got != -tt.want {
				t.Errorf("CompareSlots(%v, %v) = %d, want %d (antisymmetry)", tt.b, tt.a, got, -tt.want)
			}
		})
	}
}

func TestCompareElements(t *testing.T) {
	t.Parallel()

	fire20 := &data.Element{Type: "fire", Power: 20}
	fire30 := &data.Element{Type: "fire", Power: 30}
	water10 := &data.Element{Type: "water", Power: 10}

	tests := []struct {
		name string
		a, b *data.Element
		want int
	}{
		{"both absent", nil, nil, 0},
		{"present beats absent", fire20, nil, 1},
		{"absent loses", nil, fire20, -1},
		{"same type higher power", fire30, fire20, 1},
		{"type ordered before power", fire30, water10, -1},
		{"equal payloads", fire20, &data.Element{Type: "fire", Power: 20}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CompareElements(tt.a, tt.b); got != tt.want {
				t.Errorf("CompareElements() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCompareSharpness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b []int
		want int
	}{
		{"white decides first", []int{0, 0, 0, 0, 0, 0, 10}, []int{100, 100, 100, 100, 100, 100, 0}, 1},
		{"falls through to lower bands", []int{60, 30, 30, 40, 0, 0, 0}, []int{60, 30, 30, 30, 0, 0, 0}, 1},
		{"red is the last tiebreak", []int{50, 50}, []int{60, 50}, -1},
		{"equal", []int{10, 20, 30, 40, 50, 60, 70}, []int{10, 20, 30, 40, 50, 60, 70}, 0},
		{"missing bands count as zero", []int{10}, []int{10, 0, 0, 0, 0, 0, 0}, 0},
		{"both empty", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CompareSharpness(tt.a, tt.b); got != tt.want {
				t.Errorf("CompareSharpness(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCompareSharpness_TotalOrder(t *testing.T) {
	t.Parallel()

	curves := [][]int{
		{60, 30, 30, 40, 0, 0, 0},
		{60, 50, 40, 60, 30, 40, 20},
		{50, 50, 50, 0, 0, 0, 0},
		{40, 40, 60, 80, 30, 0, 0},
		{50, 40, 40, 60, 80, 60, 30},
		{},
	}

	for _, a := range curves {
		if c := CompareSharpness(a, a); c != 0 {
			t.Errorf("CompareSharpness(%v, itself) = %d, want 0", a, c)
		}
		for _, b := range curves {
			for _, c := range curves {
				if CompareSharpness(a, b) <= 0 && CompareSharpness(b, c) <= 0 && CompareSharpness(a, c) > 0 {
					t.Errorf("not transitive: %v <= %v <= %v but %v > %v", a, b, c, a, c)
				}
			}
		}
	}
}
