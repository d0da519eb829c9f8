package analytics

import (
	"context"
	"net/http"
	"strings"
	"time"

	"hustlehub-backend/internal/store"
)

type ctxKey string

const ctxUserIDKey ctxKey = "analytics_user_id"

// Envelope is what we store with every event. Backend-trustable fields only.
type Envelope struct {
	UserID       int
	SessionID    string
	Platform     string
	AppVersion   string
	DeviceLocale string
}

// FromRequest extracts the event envelope from request headers.
func FromRequest(r *http.Request) Envelope {
	platform := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Platform")))
	switch platform {
	case "ios", "android", "web":
	default:
		platform = "unknown"
	}

	locale := strings.TrimSpace(r.Header.Get("Accept-Language"))
	if locale == "" {
		locale = strings.TrimSpace(r.Header.Get("X-Device-Locale"))
	}

	return Envelope{
		SessionID:    strings.TrimSpace(r.Header.Get("X-Session-Id")),
		Platform:     platform,
		AppVersion:   strings.TrimSpace(r.Header.Get("X-App-Version")),
		DeviceLocale: locale,
	}
}

func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, ctxUserIDKey, userID)
}

func UserIDFromContext(ctx context.Context) (int, bool) {
	v := ctx.Value(ctxUserIDKey)
	if v == nil {
		return 0, false
	}
	uid, ok := v.(int)
	return uid, ok
}

// SourceEventKeyFromRequest reads the client-provided idempotency key, if any.
// Duplicate keys are dropped at insert.
func SourceEventKeyFromRequest(r *http.Request) string {
	if k := strings.TrimSpace(r.Header.Get("Idempotency-Key")); k != "" {
		return k
	}
	return strings.TrimSpace(r.Header.Get("X-Source-Event-Key"))
}

// Log records one analytics event. Never fails the caller's request: errors
// are swallowed, events without a user are skipped.
func Log(ctx context.Context, events store.Events, env Envelope, eventName string, props map[string]any, sourceEventKey string) {
	if eventName == "" {
		return
	}

	userID := env.UserID
	if userID == 0 {
		uid, ok := UserIDFromContext(ctx)
		if !ok {
			return
		}
		userID = uid
	}

	_ = events.LogEvent(ctx, store.Event{
		Name:           eventName,
		Time:           time.Now().UTC(),
		UserID:         userID,
		SessionID:      env.SessionID,
		Platform:       env.Platform,
		AppVersion:     env.AppVersion,
		DeviceLocale:   env.DeviceLocale,
		SourceEventKey: sourceEventKey,
		Properties:     props,
	})
}
