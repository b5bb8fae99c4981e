package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/buildcalc/internal/data"
	"github.com/udisondev/buildcalc/internal/model"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLogLevel(tt.in); got != tt.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSplitFlags(t *testing.T) {
	pos, flags := splitFlags([]string{"HEAD", "--xlsx", "high", "Attack Boost"})
	assert.Equal(t, []string{"HEAD", "high", "Attack Boost"}, pos)
	assert.True(t, flags["xlsx"])
	assert.False(t, flags["desc"])
}

func TestReadLoadout(t *testing.T) {
	l, err := readLoadout("../../builds/rathalos_gs.yaml")
	require.NoError(t, err)

	assert.Equal(t, "Rathalos GS", l.Name)
	assert.Equal(t, data.RankHigh, l.TargetRank)
	assert.Equal(t, "Rathalos Glinsword", l.Weapon.Name)
	head, ok := l.EquippedArmor(model.SlotHead)
	require.True(t, ok)
	assert.Equal(t, []string{"Tenderizer Jewel 2", "Attack Jewel 1"}, head.Decorations)
	require.NotNil(t, l.Talisman.Skill1)
	assert.Equal(t, 2, l.Talisman.Skill1.Level)
	assert.True(t, l.IsActive("Weakness Exploit"))
}

func TestReadLoadout_UnknownRankBecomesMaster(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: x\ntarget_rank: g-rank\n"), 0o644))

	l, err := readLoadout(path)
	require.NoError(t, err)
	assert.Equal(t, data.RankMaster, l.TargetRank)
}

func TestRun_UnknownCommand(t *testing.T) {
	err := run(context.Background(), []string{"frobnicate"})
	assert.ErrorContains(t, err, "unknown command")

	assert.Error(t, run(context.Background(), nil))
	assert.NoError(t, run(context.Background(), []string{"--list"}))
}
