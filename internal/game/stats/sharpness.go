package stats

// SharpnessMultipliers — raw and elemental damage multipliers of a sharpness class.
type SharpnessMultipliers struct {
	Raw       float64 `json:"raw"`
	Elemental float64 `json:"elemental"`
}

// sharpnessTable is indexed by sharpness class: red, orange, yellow, green, blue, white, purple.
var sharpnessTable = [...]SharpnessMultipliers{
	{Raw: 0.50, Elemental: 0.25},
	{Raw: 0.75, Elemental: 0.50},
	{Raw: 1.00, Elemental: 0.75},
	{Raw: 1.05, Elemental: 1.00},
	{Raw: 1.20, Elemental: 1.0625},
	{Raw: 1.32, Elemental: 1.15},
	{Raw: 1.39, Elemental: 1.25},
}

// MaxSharpnessClass is the highest valid sharpness class.
const MaxSharpnessClass = len(sharpnessTable) - 1

// Multipliers returns the multipliers of class.
// Out-of-range classes return {0, 0}: that is a catalog data defect and shows up as zero damage.
func Multipliers(class int) SharpnessMultipliers {
	if class < 0 || class > MaxSharpnessClass {
		return SharpnessMultipliers{}
	}
	return sharpnessTable[class]
}

// Class returns the index of the highest band of curve that has any length.
// An empty or all-zero curve returns -1. A curve longer than 7 bands may
// return a class above MaxSharpnessClass.
func Class(curve []int) int {
	for i := len(curve) - 1; i >= 0; i-- {
		if curve[i] > 0 {
			return i
		}
	}
	return -1
}
