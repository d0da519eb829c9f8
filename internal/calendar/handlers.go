package calendar

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"hustlehub-backend/internal/auth"
	"hustlehub-backend/internal/business"
	"hustlehub-backend/internal/goals"
	"hustlehub-backend/internal/store"
)

// Handler renders the month grid. Optional year/month query params default
// to the current month.
func Handler(st store.Store, gen *Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		now := time.Now()
		year := now.Year()
		month := now.Month()
		if v := r.URL.Query().Get("year"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				http.Error(w, "bad year", http.StatusBadRequest)
				return
			}
			year = n
		}
		if v := r.URL.Query().Get("month"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 || n > 12 {
				http.Error(w, "bad month", http.StatusBadRequest)
				return
			}
			month = time.Month(n)
		}

		var userGoals []goals.Goal
		if err := store.LoadJSON(r.Context(), st, uid, store.KeyUserGoals, &userGoals); err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
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

		days := gen.MonthGrid(year, month, userGoals, models, goals.RevenueCurrent(metrics))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"year":  year,
			"month": int(month),
			"days":  days,
		})
	}
}
