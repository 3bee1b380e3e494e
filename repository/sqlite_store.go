package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"gpa-calculator/domain"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS snapshots (
	profile    TEXT PRIMARY KEY,
	courses    TEXT NOT NULL,
	saved_at   TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS preferences (
	profile TEXT NOT NULL,
	name    TEXT NOT NULL,
	value   TEXT NOT NULL,
	PRIMARY KEY (profile, name)
);`

// SQLiteStore provides SQLite-backed persistence for snapshots and
// preferences.
type SQLiteStore struct {
	sqlDB *sql.DB
}

// OpenSQLite opens (creating if needed) a SQLite store at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(sqliteSchema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteStore{sqlDB: sqlDB}, nil
}

func (s *SQLiteStore) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *SQLiteStore) Save(ctx context.Context, profile string, snapshot domain.Snapshot) error {
	courses, err := json.Marshal(snapshot.Courses)
	if err != nil {
		return fmt.Errorf("marshal courses: %w", err)
	}

	_, err = s.sqlDB.ExecContext(ctx, `
		INSERT INTO snapshots (profile, courses, saved_at) VALUES (?, ?, ?)
		ON CONFLICT(profile) DO UPDATE SET courses = excluded.courses, saved_at = excluded.saved_at`,
		profile, string(courses), snapshot.SavedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context, profile string) (domain.Snapshot, error) {
	var (
		coursesRaw string
		savedAtRaw string
	)
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT courses, saved_at FROM snapshots WHERE profile = ?`, profile,
	).Scan(&coursesRaw, &savedAtRaw)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Snapshot{}, ErrNotFound
	}
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("load snapshot: %w", err)
	}

	var courses []domain.CourseEntry
	if err := json.Unmarshal([]byte(coursesRaw), &courses); err != nil {
		return domain.Snapshot{}, fmt.Errorf("unmarshal courses: %w", err)
	}
	savedAt, err := time.Parse(time.RFC3339Nano, savedAtRaw)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("parse saved_at: %w", err)
	}
	return domain.Snapshot{Courses: courses, SavedAt: savedAt}, nil
}

func (s *SQLiteStore) Delete(ctx context.Context, profile string) error {
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM snapshots WHERE profile = ?`, profile); err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetPreference(ctx context.Context, profile, key string) (string, error) {
	var value string
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT value FROM preferences WHERE profile = ? AND name = ?`, profile, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get preference: %w", err)
	}
	return value, nil
}

func (s *SQLiteStore) SetPreference(ctx context.Context, profile, key, value string) error {
	_, err := s.sqlDB.ExecContext(ctx, `
		INSERT INTO preferences (profile, name, value) VALUES (?, ?, ?)
		ON CONFLICT(profile, name) DO UPDATE SET value = excluded.value`,
		profile, key, value,
	)
	if err != nil {
		return fmt.Errorf("set preference: %w", err)
	}
	return nil
}
