package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"retention/internal/authz"
	authzstore "retention/internal/authz/store"
	"retention/internal/classification"
	classstore "retention/internal/classification/store"
	"retention/internal/platform/config"
	"retention/internal/platform/postgres"
	"retention/internal/records/service"
	recordstore "retention/internal/records/store"
	"retention/internal/seed"
	"retention/migrations"
	audit "retention/pkg/platform/audit"
	auditmemory "retention/pkg/platform/audit/store/memory"
	auditpostgres "retention/pkg/platform/audit/store/postgres"
)

type classificationStore interface {
	classification.Lookup
	seed.ClassificationWriter
}

type authzStore interface {
	authz.RoleLookup
	authz.LocationLookup
	authz.MembershipLookup
	seed.AuthzWriter
}

type recordStore interface {
	service.Store
	seed.RecordWriter
}

// stores is the data-access layer for one storage backend.
type stores struct {
	classifications classificationStore
	authz           authzStore
	records         recordStore
	tx              service.TxRunner
	audit           audit.Store
	db              *sql.DB
}

func openStores(ctx context.Context, cfg config.Server, log *slog.Logger) (*stores, error) {
	if cfg.Storage == config.StorageMemory {
		log.Info("using in-memory storage")
		return &stores{
			classifications: classstore.NewInMemory(),
			authz:           authzstore.NewInMemory(),
			records:         recordstore.NewInMemory(),
			tx:              recordstore.NewMemoryTx(),
			audit:           auditmemory.NewInMemoryStore(),
		}, nil
	}

	db, err := postgres.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := migrations.Apply(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}
	log.Info("using postgres storage")
	return &stores{
		classifications: classstore.NewPostgres(db),
		authz:           authzstore.NewPostgres(db),
		records:         recordstore.NewPostgres(db),
		tx:              recordstore.NewPostgresTx(db),
		audit:           auditpostgres.New(db),
		db:              db,
	}, nil
}

// seed applies the seed file, if any, and returns the document it applied.
func (s *stores) seed(ctx context.Context, path string, log *slog.Logger) (*seed.File, error) {
	if path == "" {
		return nil, nil
	}
	f, err := seed.Load(path)
	if err != nil {
		return nil, err
	}
	if err := seed.Apply(ctx, f, seed.Targets{
		Classifications: s.classifications,
		Authz:           s.authz,
		Records:         s.records,
	}); err != nil {
		return nil, fmt.Errorf("apply seed %s: %w", path, err)
	}
	log.Info("seed applied", "file", path, "records", len(f.Records))
	return f, nil
}

func (s *stores) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
