package roadmap

import (
	"encoding/json"
	"net/http"

	"hustlehub-backend/internal/auth"
	"hustlehub-backend/internal/goals"
	"hustlehub-backend/internal/store"
)

// Handler returns the timeline, the purchase catalog, and the current
// income it was built against.
func Handler(st store.Store, planner *Planner) http.HandlerFunc {
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

		items := planner.Build(userGoals)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"items":          items,
			"purchases":      LifestylePurchases(),
			"current_income": goals.CurrentIncome(userGoals),
		})
	}
}
