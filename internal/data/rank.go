package data

import (
	"errors"
	"fmt"
)

// Rank — progression tier gating which items are eligible.
type Rank string

const (
	RankLow    Rank = "low"
	RankHigh   Rank = "high"
	RankMaster Rank = "master"
)

// Ranks lists the valid ranks from lowest to highest.
var Ranks = []Rank{RankLow, RankHigh, RankMaster}

// ErrInvalidRank is returned by ParseRank for tokens outside low/high/master.
var ErrInvalidRank = errors.New("invalid rank")

// Valid reports whether r is one of low, high, master.
func (r Rank) Valid() bool {
	switch r {
	case RankLow, RankHigh, RankMaster:
		return true
	}
	return false
}

// String returns the display label ("Master Rank"), or "" for an invalid rank.
func (r Rank) String() string {
	switch r {
	case RankMaster:
		return "Master Rank"
	case RankHigh:
		return "High Rank"
	case RankLow:
		return "Low Rank"
	default:
		return ""
	}
}

// ParseRank parses a rank token strictly.
func ParseRank(s string) (Rank, error) {
	r := Rank(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRank, s)
	}
	return r, nil
}

// NormalizeRank maps any unrecognized token to master.
func NormalizeRank(s string) Rank {
	r, err := ParseRank(s)
	if err != nil {
		return RankMaster
	}
	return r
}

// ItemsByRank — item names of one category split by rank.
type ItemsByRank struct {
	LowRank    []string `yaml:"low_rank" json:"lowRank"`
	HighRank   []string `yaml:"high_rank" json:"highRank"`
	MasterRank []string `yaml:"master_rank" json:"masterRank"`
}

// ForRank returns the names for r, nil for an invalid rank.
func (i ItemsByRank) ForRank(r Rank) []string {
	switch r {
	case RankMaster:
		return i.MasterRank
	case RankHigh:
		return i.HighRank
	case RankLow:
		return i.LowRank
	}
	return nil
}

func (i *ItemsByRank) add(r Rank, name string) {
	switch r {
	case RankMaster:
		i.MasterRank = append(i.MasterRank, name)
	case RankHigh:
		i.HighRank = append(i.HighRank, name)
	case RankLow:
		i.LowRank = append(i.LowRank, name)
	}
}
