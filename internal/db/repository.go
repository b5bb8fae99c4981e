package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bytedance/sonic"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/buildcalc/internal/model"
)

// ErrBuildNotFound is returned when no build has the requested id.
var ErrBuildNotFound = errors.New("build not found")

// BuildSummary — list entry of a saved build.
type BuildSummary struct {
	ID         string
	Name       string
	TargetRank string
	UpdatedAt  time.Time
}

// BuildRepository manages the builds table.
type BuildRepository struct {
	db *pgxpool.Pool
}

// NewBuildRepository creates a new BuildRepository.
func NewBuildRepository(db *pgxpool.Pool) *BuildRepository {
	return &BuildRepository{db: db}
}

// Save inserts or replaces a build. A build without ID gets a fresh one.
// Returns the stored ID.
func (r *BuildRepository) Save(ctx context.Context, l model.Loadout) (string, error) {
	if l.ID == "" {
		l.ID = model.NewBuildID()
	}

	payload, err := sonic.Marshal(l)
	if err != nil {
		return "", fmt.Errorf("encoding build %s: %w", l.ID, err)
	}

	query := `
		INSERT INTO builds (id, name, target_rank, payload)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id)
		DO UPDATE SET name = $2, target_rank = $3, payload = $4, updated_at = now()
	`
	if _, err := r.db.Exec(ctx, query, l.ID, l.Name, string(l.TargetRank), payload); err != nil {
		return "", fmt.Errorf("saving build %s: %w", l.ID, err)
	}

	slog.Debug("build saved", "id", l.ID, "name", l.Name)
	return l.ID, nil
}

// Get loads a build by id. Returns ErrBuildNotFound if it does not exist.
func (r *BuildRepository) Get(ctx context.Context, id string) (model.Loadout, error) {
	var payload []byte
	err := r.db.QueryRow(ctx, `SELECT payload FROM builds WHERE id = $1`, id).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Loadout{}, fmt.Errorf("%w: %s", ErrBuildNotFound, id)
		}
		return model.Loadout{}, fmt.Errorf("querying build %s: %w", id, err)
	}

	var l model.Loadout
	if err := sonic.Unmarshal(payload, &l); err != nil {
		return model.Loadout{}, fmt.Errorf("decoding build %s: %w", id, err)
	}
	l.ID = id
	return l, nil
}

// List returns saved builds, most recently updated first.
func (r *BuildRepository) List(ctx context.Context) ([]BuildSummary, error) {
	query := `
		SELECT id, name, target_rank, updated_at
		FROM builds
		ORDER BY updated_at DESC, id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying builds: %w", err)
	}
	defer rows.Close()

	var out []BuildSummary
	for rows.Next() {
		var b BuildSummary
		if err := rows.Scan(&b.ID, &b.Name, &b.TargetRank, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning build row: %w", err)
		}
		out = append(out, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating build rows: %w", err)
	}

	return out, nil
}

// Delete removes a build. Returns ErrBuildNotFound if it does not exist.
func (r *BuildRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM builds WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting build %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrBuildNotFound, id)
	}
	return nil
}
