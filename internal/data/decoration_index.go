package data

import "sort"

// SkillDecoration — one decoration option for a skill: its size and the level it grants.
type SkillDecoration struct {
	DecoSize   int `yaml:"deco_size" json:"decoSize"`
	SkillLevel int `yaml:"skill_level" json:"skillLevel"`
}

// DecorationIndex maps skill name → decorations granting it.
type DecorationIndex map[string][]SkillDecoration

// buildDecorationIndex groups decorations by granted skill.
// Entries are ordered by size, then level.
func buildDecorationIndex(decos map[string]*Decoration) DecorationIndex {
	idx := make(DecorationIndex)
	for _, d := range decos {
		if d.Skill.Name == "" || d.Skill.Level <= 0 || d.Size <= 0 {
			continue
		}
		idx[d.Skill.Name] = append(idx[d.Skill.Name], SkillDecoration{
			DecoSize:   d.Size,
			SkillLevel: d.Skill.Level,
		})
	}
	for _, entries := range idx {
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].DecoSize != entries[j].DecoSize {
				return entries[i].DecoSize < entries[j].DecoSize
			}
			return entries[i].SkillLevel < entries[j].SkillLevel
		})
	}
	return idx
}

// BestLevel returns the highest level of skill obtainable from one decoration
// that fits a slot of slotSize. 0 if nothing fits.
func (idx DecorationIndex) BestLevel(skill string, slotSize int) int {
	best := 0
	for _, e := range idx[skill] {
		if e.DecoSize <= slotSize && e.SkillLevel > best {
			best = e.SkillLevel
		}
	}
	return best
}
