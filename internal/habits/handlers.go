package habits

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

func loadHabits(r *http.Request, st store.Store, uid int) ([]Habit, error) {
	var list []Habit
	if err := store.LoadJSON(r.Context(), st, uid, store.KeyHabits, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func loadLogs(r *http.Request, st store.Store, uid int) ([]Log, error) {
	var logs []Log
	if err := store.LoadJSON(r.Context(), st, uid, store.KeyHabitLogs, &logs); err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []Log{}
	}
	return logs, nil
}

// ListHandler handles GET (list, seeding defaults on first visit) and POST
// (add habit).
func ListHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		list, err := loadHabits(r, st, uid)
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		switch r.Method {
		case http.MethodGet:
			if list == nil {
				list = Defaults()
				if err := store.SaveJSON(r.Context(), st, uid, store.KeyHabits, list); err != nil {
					http.Error(w, "db error", http.StatusInternalServerError)
					return
				}
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"habits":          list,
				"completed_today": CompletedToday(list),
				"average_streak":  AverageStreak(list),
			})

		case http.MethodPost:
			var req struct {
				Name            string   `json:"name"`
				Description     string   `json:"description"`
				Category        Category `json:"category"`
				TargetFrequency int      `json:"targetFrequency"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "bad request", http.StatusBadRequest)
				return
			}
			req.Name = strings.TrimSpace(req.Name)
			if req.Name == "" {
				http.Error(w, "name is required", http.StatusBadRequest)
				return
			}
			if req.Category == "" {
				req.Category = CategoryBusiness
			}
			if req.TargetFrequency <= 0 {
				req.TargetFrequency = 7
			}

			h := Habit{
				ID:              uuid.NewString(),
				Name:            req.Name,
				Description:     req.Description,
				Category:        req.Category,
				TargetFrequency: req.TargetFrequency,
			}
			list = append(list, h)
			if err := store.SaveJSON(r.Context(), st, uid, store.KeyHabits, list); err != nil {
				http.Error(w, "db error", http.StatusInternalServerError)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(h)

		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

// ToggleHandler flips today's check mark and records it in the log.
func ToggleHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req struct {
			ID string `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		list, err := loadHabits(r, st, uid)
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		var toggled *Habit
		for i := range list {
			if list[i].ID == req.ID {
				list[i].Toggle()
				toggled = &list[i]
				break
			}
		}
		if toggled == nil {
			http.Error(w, "habit not found", http.StatusNotFound)
			return
		}

		logs, err := loadLogs(r, st, uid)
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}
		logs = Upsert(logs, toggled.ID, time.Now(), toggled.CompletedToday)

		if err := store.SaveJSON(r.Context(), st, uid, store.KeyHabits, list); err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}
		if err := store.SaveJSON(r.Context(), st, uid, store.KeyHabitLogs, logs); err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		env := analytics.FromRequest(r)
		env.UserID = uid
		analytics.Log(r.Context(), st, env, "habit_toggled", map[string]any{
			"habit_id":  toggled.ID,
			"completed": toggled.CompletedToday,
		}, analytics.SourceEventKeyFromRequest(r))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(toggled)
	}
}

// DeleteHandler removes a habit and its log entries.
func DeleteHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req struct {
			ID string `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		list, err := loadHabits(r, st, uid)
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}
		logs, err := loadLogs(r, st, uid)
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		nextHabits := list[:0]
		for _, h := range list {
			if h.ID != req.ID {
				nextHabits = append(nextHabits, h)
			}
		}
		nextLogs := logs[:0]
		for _, l := range logs {
			if l.HabitID != req.ID {
				nextLogs = append(nextLogs, l)
			}
		}

		if err := store.SaveJSON(r.Context(), st, uid, store.KeyHabits, nextHabits); err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}
		if err := store.SaveJSON(r.Context(), st, uid, store.KeyHabitLogs, nextLogs); err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}
}
