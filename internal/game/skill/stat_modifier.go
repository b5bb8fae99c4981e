package skill

import (
	"fmt"
	"strings"
)

// StatModType defines how a stat modifier is applied.
type StatModType int8

const (
	StatModAdd StatModType = iota // Additive bonus (e.g. +9 raw)
	StatModMul                    // Multiplicative bonus (e.g. ×1.05 raw)
)

func (t StatModType) String() string {
	if t == StatModMul {
		return "MUL"
	}
	return "ADD"
}

// MarshalYAML writes the type as "ADD"/"MUL".
func (t StatModType) MarshalYAML() (any, error) {
	return t.String(), nil
}

// UnmarshalYAML accepts "ADD"/"MUL" (case-insensitive); empty means ADD.
func (t *StatModType) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	switch strings.ToUpper(s) {
	case "", "ADD":
		*t = StatModAdd
	case "MUL":
		*t = StatModMul
	default:
		return fmt.Errorf("unknown stat modifier type %q", s)
	}
	return nil
}

// Stat names a derived statistic a skill can modify.
type Stat string

const (
	StatRaw                   Stat = "raw"
	StatAffinity              Stat = "affinity"
	StatCritMultiplier        Stat = "crit_multiplier"
	StatElement               Stat = "element"
	StatElementCritMultiplier Stat = "element_crit_multiplier"
	StatStatus                Stat = "status"
	StatDefense               Stat = "defense"
	StatFireRes               Stat = "fire_res"
	StatWaterRes              Stat = "water_res"
	StatThunderRes            Stat = "thunder_res"
	StatIceRes                Stat = "ice_res"
	StatDragonRes             Stat = "dragon_res"
)

// StatModifier represents a single stat modification from a skill level.
// Multiple modifiers can stack on the same stat.
// Element, when set, restricts element/status modifiers to weapons whose
// payload type matches (e.g. Fire Attack only boosts fire weapons).
type StatModifier struct {
	Stat    Stat        `yaml:"stat"`
	Type    StatModType `yaml:"type"`
	Value   float64     `yaml:"value"`
	Element string      `yaml:"element,omitempty"`
}
