package store

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"time"
)

// ErrNotFound marks a missing blob or user. Readers of blobs treat it as an
// empty collection; auth treats it as invalid credentials.
var ErrNotFound = errors.New("store: not found")

// Blob keys name the per-user documents each feature persists. A key that
// was never written simply does not exist; there is no schema version.
const (
	KeyUserGoals        = "user-goals"
	KeyBusinessModels   = "business-models"
	KeyDashboardGoals   = "dashboard-goals"
	KeyPriorities       = "dashboard-priorities"
	KeyHabits           = "user-habits"
	KeyHabitLogs        = "habit-logs"
	KeyAchievements     = "user-achievements"
	KeyMotivationQuotes = "motivation-quotes"
	KeyVisionBoard      = "motivation-media"
	KeyUserCircle       = "user-circle"
	KeyUserProfile      = "user-profile"
)

type Blobs interface {
	// GetBlob returns the raw JSON document stored under key, or ErrNotFound.
	GetBlob(ctx context.Context, userID int, key string) ([]byte, error)
	// PutBlob overwrites the whole document. Last write wins.
	PutBlob(ctx context.Context, userID int, key string, doc []byte) error
	DeleteBlob(ctx context.Context, userID int, key string) error
}

type Users interface {
	// CreateUser returns the new user id, or an error if the email is taken.
	CreateUser(ctx context.Context, email, passwordHash string) (int, error)
	// UserByEmail returns (id, passwordHash) or ErrNotFound.
	UserByEmail(ctx context.Context, email string) (int, string, error)
	UserEmail(ctx context.Context, userID int) (string, error)
	// DeleteUser removes the user together with all blobs and events.
	DeleteUser(ctx context.Context, userID int) error
}

// Event is one analytics row. Properties are already sanitized by the caller.
type Event struct {
	Name           string
	Time           time.Time
	UserID         int
	SessionID      string
	Platform       string
	AppVersion     string
	DeviceLocale   string
	SourceEventKey string
	Properties     map[string]any
}

type Events interface {
	// LogEvent inserts one event. Duplicate SourceEventKey rows are ignored.
	LogEvent(ctx context.Context, ev Event) error
}

type Store interface {
	Blobs
	Users
	Events
}

// LoadJSON reads the blob under key into v. A missing key or a document that
// no longer parses both leave v at the caller's zero value: malformed
// persisted JSON must never take a page down.
func LoadJSON(ctx context.Context, b Blobs, userID int, key string, v any) error {
	doc, err := b.GetBlob(ctx, userID, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}
	// Decode aside: on a type mismatch json.Unmarshal leaves its target
	// partially filled, and v must stay at the caller's zero value then.
	fresh := reflect.New(reflect.TypeOf(v).Elem())
	if json.Unmarshal(doc, fresh.Interface()) != nil {
		// corrupt blob, fall back to empty
		return nil
	}
	reflect.ValueOf(v).Elem().Set(fresh.Elem())
	return nil
}

// SaveJSON marshals v and overwrites the blob under key.
func SaveJSON(ctx context.Context, b Blobs, userID int, key string, v any) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return b.PutBlob(ctx, userID, key, doc)
}
