package model

import (
	"fmt"
	"strings"

	"github.com/udisondev/buildcalc/internal/data"
)

// SkillString formats a skill as "Attack Boost 3".
func SkillString(s data.ArmorSkill) string {
	return fmt.Sprintf("%s %d", s.Name, s.Level)
}

// SkillListString joins skills with ", ".
func SkillListString(skills []data.ArmorSkill) string {
	parts := make([]string, len(skills))
	for i, s := range skills {
		parts[i] = SkillString(s)
	}
	return strings.Join(parts, ", ")
}

// SharpnessString formats a 7-band curve as "a / b / c / d / e / f / g".
// Missing bands print as 0.
func SharpnessString(sharpness []int) string {
	parts := make([]string, 7)
	for i := range parts {
		v := 0
		if i < len(sharpness) {
			v = sharpness[i]
		}
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " / ")
}
