package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

type Postgres struct {
	db *sql.DB
}

func OpenPostgres(connString string) (*Postgres, error) {
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	p := &Postgres{db: db}
	if err := p.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Postgres) Close() error { return p.db.Close() }

func (p *Postgres) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS users (
	id SERIAL PRIMARY KEY,
	email TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS user_blobs (
	user_id INT NOT NULL,
	key TEXT NOT NULL,
	doc JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (user_id, key)
);
CREATE TABLE IF NOT EXISTS analytics_events (
	id SERIAL PRIMARY KEY,
	event_name TEXT NOT NULL,
	event_time TIMESTAMPTZ NOT NULL,
	user_id INT NOT NULL,
	session_id TEXT,
	platform TEXT,
	app_version TEXT,
	device_locale TEXT,
	source_event_key TEXT UNIQUE,
	properties JSONB
);
`
	if _, err := p.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// ----- blobs -----

func (p *Postgres) GetBlob(ctx context.Context, userID int, key string) ([]byte, error) {
	var doc []byte
	err := p.db.QueryRowContext(ctx, `
		SELECT doc FROM user_blobs WHERE user_id=$1 AND key=$2
	`, userID, key).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get blob %s: %w", key, err)
	}
	return doc, nil
}

func (p *Postgres) PutBlob(ctx context.Context, userID int, key string, doc []byte) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO user_blobs (user_id, key, doc, updated_at)
		VALUES ($1, $2, $3::jsonb, now())
		ON CONFLICT (user_id, key) DO UPDATE SET
			doc = EXCLUDED.doc,
			updated_at = now()
	`, userID, key, doc)
	if err != nil {
		return fmt.Errorf("put blob %s: %w", key, err)
	}
	return nil
}

func (p *Postgres) DeleteBlob(ctx context.Context, userID int, key string) error {
	_, err := p.db.ExecContext(ctx, `
		DELETE FROM user_blobs WHERE user_id=$1 AND key=$2
	`, userID, key)
	return err
}

// ----- users -----

func (p *Postgres) CreateUser(ctx context.Context, email, passwordHash string) (int, error) {
	var id int
	err := p.db.QueryRowContext(ctx, `
		INSERT INTO users (email, password) VALUES ($1, $2) RETURNING id
	`, email, passwordHash).Scan(&id)
	if err != nil {
		if strings.Contains(err.Error(), "unique") || strings.Contains(err.Error(), "duplicate") {
			return 0, fmt.Errorf("email already exists")
		}
		return 0, fmt.Errorf("create user: %w", err)
	}
	return id, nil
}

func (p *Postgres) UserByEmail(ctx context.Context, email string) (int, string, error) {
	var id int
	var hash string
	err := p.db.QueryRowContext(ctx, `
		SELECT id, password FROM users WHERE email=$1
	`, email).Scan(&id, &hash)
	if err == sql.ErrNoRows {
		return 0, "", ErrNotFound
	}
	if err != nil {
		return 0, "", err
	}
	return id, hash, nil
}

func (p *Postgres) UserEmail(ctx context.Context, userID int) (string, error) {
	var email string
	err := p.db.QueryRowContext(ctx, `SELECT email FROM users WHERE id=$1`, userID).Scan(&email)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	return email, err
}

func (p *Postgres) DeleteUser(ctx context.Context, userID int) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM user_blobs WHERE user_id=$1`, userID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM analytics_events WHERE user_id=$1`, userID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id=$1`, userID); err != nil {
		return err
	}
	return tx.Commit()
}

// ----- events -----

func (p *Postgres) LogEvent(ctx context.Context, ev Event) error {
	props, err := json.Marshal(ev.Properties)
	if err != nil {
		return nil
	}
	if ev.Time.IsZero() {
		ev.Time = time.Now().UTC()
	}
	if ev.SourceEventKey != "" {
		_, err = p.db.ExecContext(ctx, `
			INSERT INTO analytics_events (
				event_name, event_time, user_id, session_id,
				platform, app_version, device_locale, source_event_key, properties
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::jsonb)
			ON CONFLICT (source_event_key) DO NOTHING
		`, ev.Name, ev.Time, ev.UserID, nullIfEmpty(ev.SessionID),
			ev.Platform, ev.AppVersion, nullIfEmpty(ev.DeviceLocale),
			ev.SourceEventKey, string(props))
		return err
	}
	_, err = p.db.ExecContext(ctx, `
		INSERT INTO analytics_events (
			event_name, event_time, user_id, session_id,
			platform, app_version, device_locale, properties
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::jsonb)
	`, ev.Name, ev.Time, ev.UserID, nullIfEmpty(ev.SessionID),
		ev.Platform, ev.AppVersion, nullIfEmpty(ev.DeviceLocale), string(props))
	return err
}

func nullIfEmpty(s string) sql.NullString {
	if strings.TrimSpace(s) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
