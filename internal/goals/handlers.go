package goals

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"hustlehub-backend/internal/analytics"
	"hustlehub-backend/internal/auth"
	"hustlehub-backend/internal/store"
)

func ListHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var list []Goal
		if err := store.LoadJSON(r.Context(), st, uid, store.KeyUserGoals, &list); err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}
		if list == nil {
			list = []Goal{}
		}

		now := time.Now()
		top := TopPriority(list)
		var focus map[string]any
		if top != nil {
			focus = map[string]any{
				"goal":           top,
				"progress":       top.ProgressPercent(),
				"days_left":      top.DaysLeft(now),
				"funds_needed":   top.Remaining(),
				"monthly_needed": top.MonthlyNeeded(now),
				"daily_needed":   top.DailyNeeded(now),
			}
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"goals": list,
			"focus": focus,
		})
	}
}

func CreateHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var body Goal
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		// invalid submissions are a no-op on stored state
		if strings.TrimSpace(body.Name) == "" || body.TargetAmount <= 0 || body.TargetDate == "" {
			http.Error(w, "name, targetAmount & targetDate required", http.StatusBadRequest)
			return
		}
		if body.Priority == "" {
			body.Priority = PriorityHigh
		}
		if body.Category == "" {
			body.Category = CategoryIncome
		}
		body.ID = uuid.NewString()

		var list []Goal
		if err := store.LoadJSON(r.Context(), st, uid, store.KeyUserGoals, &list); err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}
		list = append(list, body)
		if err := store.SaveJSON(r.Context(), st, uid, store.KeyUserGoals, list); err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		env := analytics.FromRequest(r)
		env.UserID = uid
		analytics.Log(r.Context(), st, env, "goal_created", map[string]any{
			"goal_id":  body.ID,
			"category": body.Category,
			"priority": body.Priority,
		}, analytics.SourceEventKeyFromRequest(r))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	}
}

func UpdateHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var body struct {
			ID            string   `json:"id"`
			CurrentAmount *float64 `json:"currentAmount"`
			TargetAmount  *float64 `json:"targetAmount"`
			TargetDate    *string  `json:"targetDate"`
			Priority      *string  `json:"priority"`
			Description   *string  `json:"description"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ID == "" {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var list []Goal
		if err := store.LoadJSON(r.Context(), st, uid, store.KeyUserGoals, &list); err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		var updated *Goal
		for i := range list {
			if list[i].ID != body.ID {
				continue
			}
			if body.CurrentAmount != nil {
				list[i].CurrentAmount = *body.CurrentAmount
			}
			if body.TargetAmount != nil && *body.TargetAmount > 0 {
				list[i].TargetAmount = *body.TargetAmount
			}
			if body.TargetDate != nil && *body.TargetDate != "" {
				list[i].TargetDate = *body.TargetDate
			}
			if body.Priority != nil {
				list[i].Priority = Priority(*body.Priority)
			}
			if body.Description != nil {
				list[i].Description = *body.Description
			}
			updated = &list[i]
			break
		}
		if updated == nil {
			http.Error(w, "no goal", http.StatusNotFound)
			return
		}

		if err := store.SaveJSON(r.Context(), st, uid, store.KeyUserGoals, list); err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		env := analytics.FromRequest(r)
		env.UserID = uid
		analytics.Log(r.Context(), st, env, "goal_updated", map[string]any{
			"goal_id": updated.ID,
		}, analytics.SourceEventKeyFromRequest(r))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(updated)
	}
}

func DeleteHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var body struct {
			ID string `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ID == "" {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var list []Goal
		if err := store.LoadJSON(r.Context(), st, uid, store.KeyUserGoals, &list); err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}
		kept := list[:0]
		for _, g := range list {
			if g.ID != body.ID {
				kept = append(kept, g)
			}
		}
		if err := store.SaveJSON(r.Context(), st, uid, store.KeyUserGoals, kept); err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		env := analytics.FromRequest(r)
		env.UserID = uid
		analytics.Log(r.Context(), st, env, "goal_deleted", map[string]any{
			"goal_id": body.ID,
		}, analytics.SourceEventKeyFromRequest(r))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}
}

// MetricsHandler serves and replaces the three headline dashboard numbers.
// GET seeds defaults on first read and syncs Monthly Revenue with goal setup.
func MetricsHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		switch r.Method {
		case http.MethodGet:
			var metrics []Metric
			if err := store.LoadJSON(r.Context(), st, uid, store.KeyDashboardGoals, &metrics); err != nil {
				http.Error(w, "db error", http.StatusInternalServerError)
				return
			}
			if len(metrics) == 0 {
				metrics = DefaultMetrics()
			}
			var userGoals []Goal
			_ = store.LoadJSON(r.Context(), st, uid, store.KeyUserGoals, &userGoals)
			metrics = SyncRevenue(metrics, userGoals)

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(metrics)

		case http.MethodPost:
			var metrics []Metric
			if err := json.NewDecoder(r.Body).Decode(&metrics); err != nil {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}
			if err := store.SaveJSON(r.Context(), st, uid, store.KeyDashboardGoals, metrics); err != nil {
				http.Error(w, "db error", http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(metrics)

		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}
