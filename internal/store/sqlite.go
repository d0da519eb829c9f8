package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// SQLite is the local-mode store: one file on disk, no server to run.
type SQLite struct {
	db *sql.DB
}

func OpenSQLite(dbPath string) (*SQLite, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	s := &SQLite{db: db}
	if err := s.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLite) Close() error { return s.db.Close() }

func (s *SQLite) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	email TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	created_at TEXT NOT NULL DEFAULT (datetime('now'))
);
CREATE TABLE IF NOT EXISTS user_blobs (
	user_id INTEGER NOT NULL,
	key TEXT NOT NULL,
	doc TEXT NOT NULL,
	updated_at TEXT NOT NULL,
	PRIMARY KEY (user_id, key)
);
CREATE TABLE IF NOT EXISTS analytics_events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	event_name TEXT NOT NULL,
	event_time TEXT NOT NULL,
	user_id INTEGER NOT NULL,
	session_id TEXT,
	platform TEXT,
	app_version TEXT,
	device_locale TEXT,
	source_event_key TEXT UNIQUE,
	properties TEXT
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// ----- blobs -----

func (s *SQLite) GetBlob(ctx context.Context, userID int, key string) ([]byte, error) {
	var doc []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT doc FROM user_blobs WHERE user_id=? AND key=?
	`, userID, key).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get blob %s: %w", key, err)
	}
	return doc, nil
}

func (s *SQLite) PutBlob(ctx context.Context, userID int, key string, doc []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO user_blobs (user_id, key, doc, updated_at)
		VALUES (?, ?, ?, datetime('now'))
		ON CONFLICT (user_id, key) DO UPDATE SET
			doc = excluded.doc,
			updated_at = datetime('now')
	`, userID, key, doc)
	if err != nil {
		return fmt.Errorf("put blob %s: %w", key, err)
	}
	return nil
}

func (s *SQLite) DeleteBlob(ctx context.Context, userID int, key string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM user_blobs WHERE user_id=? AND key=?
	`, userID, key)
	return err
}

// ----- users -----

func (s *SQLite) CreateUser(ctx context.Context, email, passwordHash string) (int, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO users (email, password) VALUES (?, ?)
	`, email, passwordHash)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return 0, fmt.Errorf("email already exists")
		}
		return 0, fmt.Errorf("create user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

func (s *SQLite) UserByEmail(ctx context.Context, email string) (int, string, error) {
	var id int
	var hash string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, password FROM users WHERE email=?
	`, email).Scan(&id, &hash)
	if err == sql.ErrNoRows {
		return 0, "", ErrNotFound
	}
	if err != nil {
		return 0, "", err
	}
	return id, hash, nil
}

func (s *SQLite) UserEmail(ctx context.Context, userID int) (string, error) {
	var email string
	err := s.db.QueryRowContext(ctx, `SELECT email FROM users WHERE id=?`, userID).Scan(&email)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	return email, err
}

func (s *SQLite) DeleteUser(ctx context.Context, userID int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM user_blobs WHERE user_id=?`, userID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM analytics_events WHERE user_id=?`, userID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id=?`, userID); err != nil {
		return err
	}
	return tx.Commit()
}

// ----- events -----

func (s *SQLite) LogEvent(ctx context.Context, ev Event) error {
	props, err := json.Marshal(ev.Properties)
	if err != nil {
		return nil
	}
	if ev.Time.IsZero() {
		ev.Time = time.Now().UTC()
	}
	if ev.SourceEventKey != "" {
		_, err = s.db.ExecContext(ctx, `
			INSERT INTO analytics_events (
				event_name, event_time, user_id, session_id,
				platform, app_version, device_locale, source_event_key, properties
			)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (source_event_key) DO NOTHING
		`, ev.Name, ev.Time.Format(time.RFC3339), ev.UserID, ev.SessionID,
			ev.Platform, ev.AppVersion, ev.DeviceLocale, ev.SourceEventKey, string(props))
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO analytics_events (
			event_name, event_time, user_id, session_id,
			platform, app_version, device_locale, properties
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, ev.Name, ev.Time.Format(time.RFC3339), ev.UserID, ev.SessionID,
		ev.Platform, ev.AppVersion, ev.DeviceLocale, string(props))
	return err
}
