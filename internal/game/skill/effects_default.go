package skill

func add(stat Stat, v float64) StatModifier { return StatModifier{Stat: stat, Type: StatModAdd, Value: v} }
func mul(stat Stat, v float64) StatModifier { return StatModifier{Stat: stat, Type: StatModMul, Value: v} }

func only(element string, mods ...StatModifier) []StatModifier {
	for i := range mods {
		mods[i].Element = element
	}
	return mods
}

// perLevel builds one single-modifier level per value.
func perLevel(stat Stat, values ...float64) [][]StatModifier {
	out := make([][]StatModifier, len(values))
	for i, v := range values {
		out[i] = []StatModifier{add(stat, v)}
	}
	return out
}

// elementAttack — "<Element> Attack" skill: flat bonus, then a multiplier from level 3.
func elementAttack(element string) [][]StatModifier {
	return [][]StatModifier{
		only(element, add(StatElement, 2)),
		only(element, add(StatElement, 3)),
		only(element, add(StatElement, 4), mul(StatElement, 1.05)),
		only(element, add(StatElement, 4), mul(StatElement, 1.10)),
		only(element, add(StatElement, 4), mul(StatElement, 1.20)),
	}
}

// statusAttack — "<Status> Attack" skill.
func statusAttack(status string) [][]StatModifier {
	return [][]StatModifier{
		only(status, add(StatStatus, 1), mul(StatStatus, 1.05)),
		only(status, add(StatStatus, 2), mul(StatStatus, 1.10)),
		only(status, add(StatStatus, 5), mul(StatStatus, 1.20)),
	}
}

func resistance(stat Stat) [][]StatModifier {
	return perLevel(stat, 6, 12, 20)
}

// DefaultEffects returns the built-in effect table.
func DefaultEffects() *EffectTable {
	return NewEffectTable([]EffectEntry{
		{Skill: "Attack Boost", Levels: [][]StatModifier{
			{add(StatRaw, 3)},
			{add(StatRaw, 6)},
			{add(StatRaw, 9)},
			{add(StatRaw, 7), mul(StatRaw, 1.05)},
			{add(StatRaw, 8), mul(StatRaw, 1.06)},
			{add(StatRaw, 9), mul(StatRaw, 1.08)},
			{add(StatRaw, 10), mul(StatRaw, 1.10)},
		}},
		{Skill: "Critical Eye", Levels: perLevel(StatAffinity, 5, 10, 15, 20, 25, 30, 40)},
		{Skill: "Critical Boost", Levels: perLevel(StatCritMultiplier, 0.05, 0.10, 0.15)},
		{Skill: "Critical Element", Levels: perLevel(StatElementCritMultiplier, 0.05, 0.10, 0.15)},
		{Skill: "Weakness Exploit", Conditional: true, Levels: perLevel(StatAffinity, 15, 30, 50)},
		{Skill: "Latent Power", Conditional: true, Levels: perLevel(StatAffinity, 10, 20, 30, 40, 50)},
		{Skill: "Maximum Might", Conditional: true, Levels: perLevel(StatAffinity, 10, 20, 30)},
		{Skill: "Peak Performance", Conditional: true, Levels: perLevel(StatRaw, 5, 10, 20)},
		{Skill: "Resentment", Conditional: true, Levels: perLevel(StatRaw, 5, 10, 15, 20, 25)},
		{Skill: "Agitator", Conditional: true, Levels: [][]StatModifier{
			{add(StatRaw, 4), add(StatAffinity, 3)},
			{add(StatRaw, 8), add(StatAffinity, 5)},
			{add(StatRaw, 12), add(StatAffinity, 7)},
			{add(StatRaw, 16), add(StatAffinity, 10)},
			{add(StatRaw, 20), add(StatAffinity, 15)},
		}},
		{Skill: "Defense Boost", Levels: [][]StatModifier{
			{add(StatDefense, 5)},
			{add(StatDefense, 10)},
			{add(StatDefense, 10), mul(StatDefense, 1.05)},
			{add(StatDefense, 20), mul(StatDefense, 1.05)},
			{add(StatDefense, 20), mul(StatDefense, 1.08)},
			{add(StatDefense, 35), mul(StatDefense, 1.08),
				add(StatFireRes, 3), add(StatWaterRes, 3), add(StatThunderRes, 3), add(StatIceRes, 3), add(StatDragonRes, 3)},
			{add(StatDefense, 35), mul(StatDefense, 1.10),
				add(StatFireRes, 5), add(StatWaterRes, 5), add(StatThunderRes, 5), add(StatIceRes, 5), add(StatDragonRes, 5)},
		}},
		{Skill: "Fire Attack", Levels: elementAttack("fire")},
		{Skill: "Water Attack", Levels: elementAttack("water")},
		{Skill: "Thunder Attack", Levels: elementAttack("thunder")},
		{Skill: "Ice Attack", Levels: elementAttack("ice")},
		{Skill: "Dragon Attack", Levels: elementAttack("dragon")},
		{Skill: "Poison Attack", Levels: statusAttack("poison")},
		{Skill: "Paralysis Attack", Levels: statusAttack("paralyze")},
		{Skill: "Sleep Attack", Levels: statusAttack("sleep")},
		{Skill: "Blast Attack", Levels: statusAttack("blast")},
		{Skill: "Fire Resistance", Levels: resistance(StatFireRes)},
		{Skill: "Water Resistance", Levels: resistance(StatWaterRes)},
		{Skill: "Thunder Resistance", Levels: resistance(StatThunderRes)},
		{Skill: "Ice Resistance", Levels: resistance(StatIceRes)},
		{Skill: "Dragon Resistance", Levels: resistance(StatDragonRes)},
	})
}
