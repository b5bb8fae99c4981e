package engine

import (
	"fmt"
	"log/slog"

	"github.com/bytedance/sonic"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/crypto/blake2b"

	"github.com/udisondev/buildcalc/internal/model"
)

// DefaultMemoSize — number of cached evaluations when size <= 0 is given.
const DefaultMemoSize = 256

// Memo caches evaluations keyed by the content of the loadout snapshot.
// It only skips work: results are identical to calling the wrapped Evaluator.
type Memo struct {
	next  Evaluator
	cache *lru.Cache[[blake2b.Size256]byte, Result]
}

// NewMemo wraps next with an LRU of size entries.
func NewMemo(next Evaluator, size int) (*Memo, error) {
	if size <= 0 {
		size = DefaultMemoSize
	}
	cache, err := lru.New[[blake2b.Size256]byte, Result](size)
	if err != nil {
		return nil, fmt.Errorf("creating evaluation cache: %w", err)
	}
	return &Memo{next: next, cache: cache}, nil
}

// Evaluate returns a cached result for an identical snapshot, evaluating otherwise.
// The returned Result is always a private copy.
func (m *Memo) Evaluate(l model.Loadout) Result {
	key, err := SnapshotKey(l)
	if err != nil {
		slog.Warn("loadout snapshot key failed, evaluating uncached", "err", err)
		return m.next.Evaluate(l)
	}
	if r, ok := m.cache.Get(key); ok {
		return r.Clone()
	}
	r := m.next.Evaluate(l)
	m.cache.Add(key, r.Clone())
	return r
}

// Len returns the number of cached evaluations.
func (m *Memo) Len() int {
	return m.cache.Len()
}

// SnapshotKey digests the canonical JSON of l (map keys sorted).
// ID and Name do not affect evaluation and are excluded.
func SnapshotKey(l model.Loadout) ([blake2b.Size256]byte, error) {
	l.ID = ""
	l.Name = ""
	raw, err := sonic.ConfigStd.Marshal(l)
	if err != nil {
		return [blake2b.Size256]byte{}, fmt.Errorf("encoding loadout snapshot: %w", err)
	}
	return blake2b.Sum256(raw), nil
}
