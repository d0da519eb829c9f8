package insights

import (
	"encoding/json"
	"net/http"
	"time"

	"hustlehub-backend/internal/auth"
	"hustlehub-backend/internal/business"
	"hustlehub-backend/internal/goals"
	"hustlehub-backend/internal/priorities"
	"hustlehub-backend/internal/store"
)

// Handler builds the full insights view: insights, streaks and the
// progress summary.
func Handler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var userGoals []goals.Goal
		if err := store.LoadJSON(r.Context(), st, uid, store.KeyUserGoals, &userGoals); err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}
		var prios []priorities.Priority
		if err := store.LoadJSON(r.Context(), st, uid, store.KeyPriorities, &prios); err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}
		var models []business.Model
		if err := store.LoadJSON(r.Context(), st, uid, store.KeyBusinessModels, &models); err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		streaks := DefaultStreaks()

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"insights": Generate(userGoals, prios, models, time.Now()),
			"streaks":  streaks,
			"progress": CalculateProgress(userGoals, prios, streaks),
		})
	}
}

// AchievementsHandler handles GET (list, seeding defaults) and POST
// (unlock a new achievement).
func AchievementsHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var list []Achievement
		if err := store.LoadJSON(r.Context(), st, uid, store.KeyAchievements, &list); err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		now := time.Now()
		switch r.Method {
		case http.MethodGet:
			if list == nil {
				list = DefaultAchievements(now)
				if err := store.SaveJSON(r.Context(), st, uid, store.KeyAchievements, list); err != nil {
					http.Error(w, "db error", http.StatusInternalServerError)
					return
				}
			} else {
				list = Sanitize(list, now)
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{"achievements": list})

		case http.MethodPost:
			var req struct {
				Title       string              `json:"title"`
				Description string              `json:"description"`
				Icon        string              `json:"icon"`
				Category    AchievementCategory `json:"category"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
				http.Error(w, "bad request", http.StatusBadRequest)
				return
			}

			a := Sanitize([]Achievement{{
				Title:       req.Title,
				Description: req.Description,
				Icon:        req.Icon,
				Category:    req.Category,
			}}, now)[0]

			list = append(list, a)
			if err := store.SaveJSON(r.Context(), st, uid, store.KeyAchievements, list); err != nil {
				http.Error(w, "db error", http.StatusInternalServerError)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(a)

		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}
