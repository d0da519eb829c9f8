package engine

import (
	"encoding/json"
	"net/http"

	"hustlehub-backend/internal/auth"
	"hustlehub-backend/internal/business"
	"hustlehub-backend/internal/goals"
	"hustlehub-backend/internal/store"
)

// SmartTasksHandler returns the full recommendation list built from the
// user's saved business models and goals.
func SmartTasksHandler(st store.Store, gen *Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var models []business.Model
		if err := store.LoadJSON(r.Context(), st, uid, store.KeyBusinessModels, &models); err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}
		var userGoals []goals.Goal
		if err := store.LoadJSON(r.Context(), st, uid, store.KeyUserGoals, &userGoals); err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		tasks := gen.SmartTasks(models, userGoals, goals.CurrentIncome(userGoals))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"tasks": tasks})
	}
}

// DailyTasksHandler returns the dashboard's short daily plan. Income here
// comes from the Monthly Revenue metric rather than goals.
func DailyTasksHandler(st store.Store, gen *Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var models []business.Model
		if err := store.LoadJSON(r.Context(), st, uid, store.KeyBusinessModels, &models); err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}
		var metrics []goals.Metric
		if err := store.LoadJSON(r.Context(), st, uid, store.KeyDashboardGoals, &metrics); err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}
		if metrics == nil {
			metrics = goals.DefaultMetrics()
		}

		tasks := gen.DailyTasks(models, goals.RevenueCurrent(metrics))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"tasks": tasks})
	}
}
