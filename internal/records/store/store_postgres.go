package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"retention/internal/records/models"
	id "retention/pkg/domain"
	"retention/pkg/platform/sentinel"
	txcontext "retention/pkg/platform/tx"
)

// uniqueViolation is the Postgres SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// PostgresStore backs the register with the records, retention_schedules and
// containers tables. Writes join a transaction carried in the context.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) conn(ctx context.Context) txcontext.Querier {
	return txcontext.Conn(ctx, s.db)
}

const recordColumns = `
	r.id, r.number, r.title, r.container_id, r.schedule_id, s.years,
	r.classification_path, r.location_id, r.closed_at, r.destroyed_at,
	r.created_at, r.updated_at`

const recordFrom = `
	FROM records r
	JOIN retention_schedules s ON s.id = r.schedule_id`

func (s *PostgresStore) Create(ctx context.Context, r *models.Record) error {
	query := `
		INSERT INTO records (
			number, title, container_id, schedule_id, classification_path,
			location_id, closed_at, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, (SELECT years FROM retention_schedules WHERE id = $4)
	`
	var (
		rawID int64
		years sql.NullInt64
	)
	err := s.conn(ctx).QueryRowContext(ctx, query,
		r.Number,
		r.Title,
		nullID(int64(r.ContainerID)),
		int64(r.ScheduleID),
		pq.Array(int64s(r.ClassificationPath)),
		nullID(int64(r.LocationID)),
		r.ClosedAt,
		r.CreatedAt,
		r.UpdatedAt,
	).Scan(&rawID, &years)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch {
			case pqErr.Code == uniqueViolation:
				return fmt.Errorf("record number %s: %w", r.Number, sentinel.ErrConflict)
			case pqErr.Code.Class() == "23":
				return fmt.Errorf("record references: %w", sentinel.ErrNotFound)
			}
		}
		return fmt.Errorf("insert record: %w", err)
	}
	r.ID = id.RecordID(rawID)
	r.ScheduleYears = int(years.Int64)
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, recordID id.RecordID) (*models.Record, error) {
	row := s.conn(ctx).QueryRowContext(ctx,
		`SELECT `+recordColumns+recordFrom+` WHERE r.id = $1`, int64(recordID))
	r, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("record %d: %w", recordID, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find record: %w", err)
	}
	return r, nil
}

// FindByIDs returns the records that exist, in the order requested.
func (s *PostgresStore) FindByIDs(ctx context.Context, ids []id.RecordID) ([]*models.Record, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	raw := int64s(ids)
	rows, err := s.conn(ctx).QueryContext(ctx,
		`SELECT `+recordColumns+recordFrom+`
		 WHERE r.id = ANY($1)
		 ORDER BY array_position($1, r.id)`, pq.Array(raw))
	if err != nil {
		return nil, fmt.Errorf("find records: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

func (s *PostgresStore) FindByContainer(ctx context.Context, containerID id.ContainerID) ([]*models.Record, error) {
	rows, err := s.conn(ctx).QueryContext(ctx,
		`SELECT `+recordColumns+recordFrom+` WHERE r.container_id = $1 ORDER BY r.id`, int64(containerID))
	if err != nil {
		return nil, fmt.Errorf("find container records: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

func (s *PostgresStore) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	var exists bool
	err := s.conn(ctx).QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM records WHERE upper(number) = upper($1))`, number,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check record number: %w", err)
	}
	return exists, nil
}

func (s *PostgresStore) Close(ctx context.Context, recordID id.RecordID, closedAt time.Time) error {
	res, err := s.conn(ctx).ExecContext(ctx, `
		UPDATE records SET closed_at = $2, updated_at = $2
		WHERE id = $1 AND destroyed_at IS NULL`, int64(recordID), closedAt)
	if err != nil {
		return fmt.Errorf("close record: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("close record: %w", err)
	}
	if n == 0 {
		return s.missingOrDestroyed(ctx, recordID)
	}
	return nil
}

// MarkDestroyed stamps every listed record or none. Callers wrap it in a
// transaction so a partial update rolls back.
func (s *PostgresStore) MarkDestroyed(ctx context.Context, ids []id.RecordID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	res, err := s.conn(ctx).ExecContext(ctx, `
		UPDATE records SET destroyed_at = $2, updated_at = $2
		WHERE id = ANY($1) AND destroyed_at IS NULL`, pq.Array(int64s(ids)), at)
	if err != nil {
		return fmt.Errorf("mark records destroyed: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark records destroyed: %w", err)
	}
	if int(n) != len(ids) {
		return fmt.Errorf("destroyed %d of %d records: %w", n, len(ids), sentinel.ErrInvalidState)
	}
	return nil
}

func (s *PostgresStore) missingOrDestroyed(ctx context.Context, recordID id.RecordID) error {
	var destroyed bool
	err := s.conn(ctx).QueryRowContext(ctx,
		`SELECT destroyed_at IS NOT NULL FROM records WHERE id = $1`, int64(recordID)).Scan(&destroyed)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("record %d: %w", recordID, sentinel.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("find record: %w", err)
	}
	return fmt.Errorf("record %d is destroyed: %w", recordID, sentinel.ErrInvalidState)
}

// SaveSchedule upserts by id, or inserts with a generated id when ID is zero.
func (s *PostgresStore) SaveSchedule(ctx context.Context, sched *models.Schedule) error {
	if sched.ID == 0 {
		var rawID int64
		err := s.conn(ctx).QueryRowContext(ctx,
			`INSERT INTO retention_schedules (name, years) VALUES ($1, $2) RETURNING id`,
			sched.Name, sched.Years).Scan(&rawID)
		if err != nil {
			return fmt.Errorf("insert schedule: %w", err)
		}
		sched.ID = id.ScheduleID(rawID)
		return nil
	}
	_, err := s.conn(ctx).ExecContext(ctx, `
		INSERT INTO retention_schedules (id, name, years) VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, years = EXCLUDED.years`,
		int64(sched.ID), sched.Name, sched.Years)
	if err != nil {
		return fmt.Errorf("upsert schedule: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindSchedule(ctx context.Context, scheduleID id.ScheduleID) (*models.Schedule, error) {
	var (
		sched models.Schedule
		rawID int64
	)
	err := s.conn(ctx).QueryRowContext(ctx,
		`SELECT id, name, years FROM retention_schedules WHERE id = $1`, int64(scheduleID),
	).Scan(&rawID, &sched.Name, &sched.Years)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("schedule %d: %w", scheduleID, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find schedule: %w", err)
	}
	sched.ID = id.ScheduleID(rawID)
	return &sched, nil
}

// SaveContainer upserts by id, or inserts with a generated id when ID is zero.
func (s *PostgresStore) SaveContainer(ctx context.Context, c *models.Container) error {
	if c.ID == 0 {
		var rawID int64
		err := s.conn(ctx).QueryRowContext(ctx,
			`INSERT INTO containers (number, location_id) VALUES ($1, $2) RETURNING id`,
			c.Number, nullID(int64(c.LocationID))).Scan(&rawID)
		if err != nil {
			return fmt.Errorf("insert container: %w", err)
		}
		c.ID = id.ContainerID(rawID)
		return nil
	}
	_, err := s.conn(ctx).ExecContext(ctx, `
		INSERT INTO containers (id, number, location_id) VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET number = EXCLUDED.number, location_id = EXCLUDED.location_id`,
		int64(c.ID), c.Number, nullID(int64(c.LocationID)))
	if err != nil {
		return fmt.Errorf("upsert container: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindContainer(ctx context.Context, containerID id.ContainerID) (*models.Container, error) {
	var (
		c        models.Container
		rawID    int64
		location sql.NullInt64
	)
	err := s.conn(ctx).QueryRowContext(ctx,
		`SELECT id, number, location_id FROM containers WHERE id = $1`, int64(containerID),
	).Scan(&rawID, &c.Number, &location)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("container %d: %w", containerID, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find container: %w", err)
	}
	c.ID = id.ContainerID(rawID)
	c.LocationID = id.LocationID(location.Int64)
	return &c, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*models.Record, error) {
	var (
		r           models.Record
		rawID       int64
		container   sql.NullInt64
		schedule    int64
		path        []int64
		location    sql.NullInt64
		closedAt    sql.NullTime
		destroyedAt sql.NullTime
	)
	err := row.Scan(
		&rawID,
		&r.Number,
		&r.Title,
		&container,
		&schedule,
		&r.ScheduleYears,
		pq.Array(&path),
		&location,
		&closedAt,
		&destroyedAt,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	r.ID = id.RecordID(rawID)
	r.ContainerID = id.ContainerID(container.Int64)
	r.ScheduleID = id.ScheduleID(schedule)
	r.LocationID = id.LocationID(location.Int64)
	r.ClassificationPath = make([]id.ClassificationID, 0, len(path))
	for _, p := range path {
		r.ClassificationPath = append(r.ClassificationPath, id.ClassificationID(p))
	}
	if closedAt.Valid {
		t := closedAt.Time
		r.ClosedAt = &t
	}
	if destroyedAt.Valid {
		t := destroyedAt.Time
		r.DestroyedAt = &t
	}
	return &r, nil
}

func scanRecords(rows *sql.Rows) ([]*models.Record, error) {
	var out []*models.Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return out, nil
}

func int64s[T ~int64](ids []T) []int64 {
	out := make([]int64, len(ids))
	for i, v := range ids {
		out[i] = int64(v)
	}
	return out
}

// nullID maps the zero id onto SQL NULL.
func nullID(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: v != 0}
}
