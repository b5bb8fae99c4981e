package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/udisondev/buildcalc/internal/config"
	"github.com/udisondev/buildcalc/internal/data"
	"github.com/udisondev/buildcalc/internal/db"
	"github.com/udisondev/buildcalc/internal/engine"
	"github.com/udisondev/buildcalc/internal/game/skill"
)

type app struct {
	cfg       config.Calculator
	engine    *engine.Engine
	evaluator engine.Evaluator
	database  *db.DB
}

func newApp(ctx context.Context, cfg config.Calculator) (*app, error) {
	catalog, err := data.LoadCatalog(ctx, cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	effects, err := skill.LoadEffectTable(cfg.EffectsFile)
	if err != nil {
		return nil, fmt.Errorf("loading effects: %w", err)
	}

	eng := engine.New(catalog, effects)
	a := &app{cfg: cfg, engine: eng, evaluator: eng}

	if cfg.CacheSize > 0 {
		memo, err := engine.NewMemo(eng, cfg.CacheSize)
		if err != nil {
			return nil, err
		}
		a.evaluator = memo
	}
	return a, nil
}

// builds connects to the database on first use and applies migrations.
func (a *app) builds(ctx context.Context) (*db.BuildRepository, error) {
	if a.database == nil {
		dsn := a.cfg.Database.DSN()
		database, err := db.New(ctx, dsn)
		if err != nil {
			return nil, err
		}
		if err := db.RunMigrations(ctx, dsn); err != nil {
			database.Close()
			return nil, fmt.Errorf("running migrations: %w", err)
		}
		slog.Info("database connected", "host", a.cfg.Database.Host, "db", a.cfg.Database.DBName)
		a.database = database
	}
	return a.database.Builds(), nil
}

func (a *app) close() {
	if a.database != nil {
		a.database.Close()
	}
}
