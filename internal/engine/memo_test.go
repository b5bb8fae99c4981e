package engine

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/buildcalc/internal/model"
)

type countingEvaluator struct {
	next  Evaluator
	calls atomic.Int32
}

func (c *countingEvaluator) Evaluate(l model.Loadout) Result {
	c.calls.Add(1)
	return c.next.Evaluate(l)
}

func TestMemo_CachesIdenticalSnapshots(t *testing.T) {
	t.Parallel()

	counter := &countingEvaluator{next: newTestEngine()}
	memo, err := NewMemo(counter, 8)
	require.NoError(t, err)

	l := model.DefaultLoadout()
	l.Armor[model.SlotHead] = model.ArmorChoice{Name: "Rathalos Helm S"}

	first := memo.Evaluate(l)
	second := memo.Evaluate(l.Clone())

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), counter.calls.Load())
	assert.Equal(t, 1, memo.Len())

	// ID and name do not change the result
	renamed := model.Apply(l, model.SetBuildName{Name: "other"})
	renamed.ID = "abc"
	memo.Evaluate(renamed)
	assert.Equal(t, int32(1), counter.calls.Load())

	changed := model.Apply(l, model.SetActiveSkill{Skill: "Weakness Exploit", Value: true})
	memo.Evaluate(changed)
	assert.Equal(t, int32(2), counter.calls.Load())
	assert.Equal(t, 2, memo.Len())
}

func TestMemo_MatchesUncached(t *testing.T) {
	t.Parallel()

	e := newTestEngine()
	memo, err := NewMemo(e, 0)
	require.NoError(t, err)

	l := model.DefaultLoadout()
	l.Weapon = model.WeaponChoice{Name: "Rathalos Glinsword", Decorations: []string{"Blaze Jewel 1"}}

	want := e.Evaluate(l)
	assert.Equal(t, want, memo.Evaluate(l))
	assert.Equal(t, want, memo.Evaluate(l))
}

func TestMemo_ReturnsPrivateCopies(t *testing.T) {
	t.Parallel()

	memo, err := NewMemo(newTestEngine(), 4)
	require.NoError(t, err)

	l := model.DefaultLoadout()
	l.Talisman.Skill1 = &model.TalismanSkillChoice{Name: "Attack Boost", Level: 1}

	first := memo.Evaluate(l)
	delete(first.Skills, "Attack Boost")
	first.Stats.Sharpness[0] = -1

	second := memo.Evaluate(l)
	assert.Equal(t, 1, second.Skills.Effective("Attack Boost"))
	assert.Equal(t, 60, second.Stats.Sharpness[0])
}

func TestSnapshotKey(t *testing.T) {
	t.Parallel()

	a := model.DefaultLoadout()
	b := model.DefaultLoadout()
	b.ID = "some-id"
	b.Name = "some name"

	ka, err := SnapshotKey(a)
	require.NoError(t, err)
	kb, err := SnapshotKey(b)
	require.NoError(t, err)
	assert.Equal(t, ka, kb)

	c := model.Apply(a, model.SetTargetRank{Rank: "low"})
	kc, err := SnapshotKey(c)
	require.NoError(t, err)
	assert.NotEqual(t, ka, kc)
}
