package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"trainlock/internal/config"
	"trainlock/internal/models"
)

const defaultDBTimeout = 5 * time.Second

// SQLite is the sqlite-backed Store implementation.
type SQLite struct {
	DB  *sql.DB
	now func() time.Time
}

// Open opens (or creates) the database at path and ensures the schema.
func Open(ctx context.Context, path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	s := &SQLite{DB: db, now: time.Now}
	if err := s.createTables(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLite) Close() error {
	return s.DB.Close()
}

func (s *SQLite) withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}

func (s *SQLite) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			date TEXT NOT NULL,
			planned_type TEXT NOT NULL,
			planned_minutes INTEGER,
			planned_km REAL,
			focus TEXT DEFAULT '',
			instructions TEXT DEFAULT '',
			completed INTEGER DEFAULT 0,
			actual_minutes INTEGER,
			actual_km REAL,
			rpe INTEGER,
			notes TEXT DEFAULT '',
			block TEXT DEFAULT '',
			active INTEGER DEFAULT 1,
			updated_at INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_date ON sessions(date);`,
	}
	for _, query := range queries {
		if _, err := s.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	s.migrate(ctx)
	return nil
}

func (s *SQLite) migrate(ctx context.Context) {
	// Tolerated on existing databases; errors mean the column already exists.
	_, _ = s.DB.ExecContext(ctx, "ALTER TABLE sessions ADD COLUMN block TEXT DEFAULT ''")
	_, _ = s.DB.ExecContext(ctx, "ALTER TABLE sessions ADD COLUMN active INTEGER DEFAULT 1")
}

// Load reads the document version and the full collection ordered by date.
// An absent version row means a fresh database and yields the current schema
// version with no sessions.
func (s *SQLite) Load(ctx context.Context) (int, []models.Session, error) {
	ctx, cancel := s.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	version := config.SchemaVersion
	var raw string
	err := s.DB.QueryRowContext(ctx, "SELECT value FROM meta WHERE key = 'version'").Scan(&raw)
	if err == nil {
		if _, convErr := fmt.Sscanf(raw, "%d", &version); convErr != nil {
			version = config.SchemaVersion
		}
	} else if err != sql.ErrNoRows {
		return 0, nil, wrapErr("load version", "", err)
	}

	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, date, planned_type, planned_minutes, planned_km, focus, instructions,
		       completed, actual_minutes, actual_km, rpe, notes, block, active, updated_at
		FROM sessions
		ORDER BY date ASC, id ASC`)
	if err != nil {
		return 0, nil, wrapErr("load", "", err)
	}
	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		var rec models.Session
		var plannedMinutes, actualMin, rpe sql.NullInt64
		var plannedKm, actualKm sql.NullFloat64
		var completed, active int
		if err := rows.Scan(
			&rec.ID, &rec.Date, &rec.PlannedType, &plannedMinutes, &plannedKm,
			&rec.Focus, &rec.Instructions, &completed, &actualMin, &actualKm,
			&rpe, &rec.Notes, &rec.Block, &active, &rec.UpdatedAt,
		); err != nil {
			return 0, nil, wrapErr("scan", "", err)
		}
		if plannedMinutes.Valid {
			v := int(plannedMinutes.Int64)
			rec.PlannedMinutes = &v
		}
		if plannedKm.Valid {
			v := plannedKm.Float64
			rec.PlannedKm = &v
		}
		if actualMin.Valid {
			v := int(actualMin.Int64)
			rec.ActualMinutes = &v
		}
		if actualKm.Valid {
			v := actualKm.Float64
			rec.ActualKm = &v
		}
		if rpe.Valid {
			v := int(rpe.Int64)
			rec.RPE = &v
		}
		rec.Completed = completed == 1
		rec.Active = active == 1
		sessions = append(sessions, rec)
	}
	if err := rows.Err(); err != nil {
		return 0, nil, wrapErr("load", "", err)
	}
	return version, sessions, nil
}

// Save replaces the whole collection and the version atomically. Callers run
// the merge engine first; the store never reconciles.
func (s *SQLite) Save(ctx context.Context, version int, sessions []models.Session) error {
	ctx, cancel := s.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return wrapErr("save begin", "", err)
	}
	commit := false
	defer func() {
		if !commit {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx,
		"INSERT OR REPLACE INTO meta (key, value) VALUES ('version', ?)",
		fmt.Sprintf("%d", version)); err != nil {
		return wrapErr("save version", "", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM sessions"); err != nil {
		return wrapErr("save clear", "", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO sessions
		(id, date, planned_type, planned_minutes, planned_km, focus, instructions,
		 completed, actual_minutes, actual_km, rpe, notes, block, active, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return wrapErr("save prepare", "", err)
	}
	defer stmt.Close()

	for _, rec := range sessions {
		if rec.ID == "" {
			return wrapErr("save", "", fmt.Errorf("session on %s has no id", rec.Date))
		}
		if _, err := stmt.ExecContext(ctx,
			rec.ID, rec.Date, string(rec.PlannedType),
			nullableInt(rec.PlannedMinutes), nullableFloat(rec.PlannedKm),
			rec.Focus, rec.Instructions, boolToInt(rec.Completed),
			nullableInt(rec.ActualMinutes), nullableFloat(rec.ActualKm),
			nullableInt(rec.RPE), rec.Notes, rec.Block, boolToInt(rec.Active),
			rec.UpdatedAt,
		); err != nil {
			return wrapErr("save", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return wrapErr("save commit", "", err)
	}
	commit = true
	return nil
}

// HasData reports whether any sessions are stored.
func (s *SQLite) HasData(ctx context.Context) bool {
	ctx, cancel := s.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	var n int
	if err := s.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM sessions").Scan(&n); err != nil {
		return false
	}
	return n > 0
}

// SetCompleted toggles completion and refreshes the logical clock.
func (s *SQLite) SetCompleted(ctx context.Context, id string, completed bool) error {
	return s.update(ctx, "set completed", id,
		"UPDATE sessions SET completed = ?, updated_at = ? WHERE id = ?",
		boolToInt(completed), s.now().UnixMilli(), id)
}

// SetActuals records the user-entered outcome fields. Nil fields keep the
// stored value (COALESCE falls through to the column); notes always overwrite.
func (s *SQLite) SetActuals(ctx context.Context, id string, update ActualsUpdate) error {
	return s.update(ctx, "set actuals", id, `
		UPDATE sessions
		SET actual_minutes = COALESCE(?, actual_minutes),
		    actual_km = COALESCE(?, actual_km),
		    rpe = COALESCE(?, rpe),
		    notes = ?, updated_at = ?
		WHERE id = ?`,
		nullableInt(update.Minutes), nullableFloat(update.Km),
		nullableInt(update.RPE), update.Notes, s.now().UnixMilli(), id)
}

// SetActive flags a session in or out of compliance statistics. The record is
// kept either way; history is never deleted here.
func (s *SQLite) SetActive(ctx context.Context, id string, active bool) error {
	return s.update(ctx, "set active", id,
		"UPDATE sessions SET active = ?, updated_at = ? WHERE id = ?",
		boolToInt(active), s.now().UnixMilli(), id)
}

func (s *SQLite) update(ctx context.Context, op, id, query string, args ...interface{}) error {
	ctx, cancel := s.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	res, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapErr(op, id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return wrapErr(op, id, err)
	}
	if affected == 0 {
		return wrapErr(op, id, ErrNotFound)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullableInt(p *int) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func nullableFloat(p *float64) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
