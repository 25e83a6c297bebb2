package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"retention/internal/classification/models"
	id "retention/pkg/domain"
	"retention/pkg/platform/sentinel"
)

// PostgresStore reads classifications and the classification_children
// adjacency table. It is pure I/O; path rules live in the validator.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Save(ctx context.Context, c *models.Classification) error {
	query := `
		INSERT INTO classifications (id, name, type)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			type = EXCLUDED.type
	`
	if _, err := s.db.ExecContext(ctx, query, int64(c.ID), c.Name, string(c.Type)); err != nil {
		return fmt.Errorf("save classification: %w", err)
	}
	return nil
}

func (s *PostgresStore) AddChild(ctx context.Context, parent, child id.ClassificationID) error {
	query := `
		INSERT INTO classification_children (parent_id, child_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
	if _, err := s.db.ExecContext(ctx, query, int64(parent), int64(child)); err != nil {
		return fmt.Errorf("add classification child: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, classificationID id.ClassificationID) (*models.Classification, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, type FROM classifications WHERE id = $1`, int64(classificationID))
	c, err := scanClassification(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find classification by id: %w", err)
	}
	return c, nil
}

func (s *PostgresStore) FindByName(ctx context.Context, name string) (*models.Classification, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, type FROM classifications WHERE lower(name) = lower($1)`, name)
	c, err := scanClassification(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find classification by name: %w", err)
	}
	return c, nil
}

func (s *PostgresStore) FindChildren(ctx context.Context, parent id.ClassificationID) ([]id.ClassificationID, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT child_id FROM classification_children WHERE parent_id = $1 ORDER BY child_id`, int64(parent))
	if err != nil {
		return nil, fmt.Errorf("find classification children: %w", err)
	}
	defer rows.Close()

	var ids []id.ClassificationID
	for rows.Next() {
		var child int64
		if err := rows.Scan(&child); err != nil {
			return nil, fmt.Errorf("scan classification child: %w", err)
		}
		ids = append(ids, id.ClassificationID(child))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate classification children: %w", err)
	}
	return ids, nil
}

func scanClassification(row *sql.Row) (*models.Classification, error) {
	var (
		rawID   int64
		name    string
		rawType string
	)
	if err := row.Scan(&rawID, &name, &rawType); err != nil {
		return nil, err
	}
	t, err := models.ParseType(rawType)
	if err != nil {
		return nil, fmt.Errorf("classification %d: %w", rawID, err)
	}
	return &models.Classification{ID: id.ClassificationID(rawID), Name: name, Type: t}, nil
}
