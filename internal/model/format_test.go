package model

import (
	"testing"

	"github.com/udisondev/buildcalc/internal/data"
)

func TestSkillListString(t *testing.T) {
	tests := []struct {
		skills []data.ArmorSkill
		want   string
	}{
		{nil, ""},
		{[]data.ArmorSkill{{Name: "Attack Boost", Level: 3}}, "Attack Boost 3"},
		{[]data.ArmorSkill{{Name: "Critical Eye", Level: 1}, {Name: "Agitator", Level: 2}}, "Critical Eye 1, Agitator 2"},
	}

	for _, tt := range tests {
		if got := SkillListString(tt.skills); got != tt.want {
			t.Errorf("SkillListString(%v) = %q, want %q", tt.skills, got, tt.want)
		}
	}
}

func TestSharpnessString(t *testing.T) {
	tests := []struct {
		curve []int
		want  string
	}{
		{[]int{60, 30, 30, 40, 0, 0, 0}, "60 / 30 / 30 / 40 / 0 / 0 / 0"},
		{[]int{10}, "10 / 0 / 0 / 0 / 0 / 0 / 0"},
		{nil, "0 / 0 / 0 / 0 / 0 / 0 / 0"},
	}

	for _, tt := range tests {
		if got := SharpnessString(tt.curve); got != tt.want {
			t.Errorf("SharpnessString(%v) = %q, want %q", tt.curve, got, tt.want)
		}
	}
}
