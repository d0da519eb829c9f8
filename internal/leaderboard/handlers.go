package leaderboard

import (
	"encoding/json"
	"net/http"

	"hustlehub-backend/internal/analytics"
	"hustlehub-backend/internal/auth"
	"hustlehub-backend/internal/store"
)

// Handler serves the board. The timeframe query param picks the view:
// monthly (default), weekly or rising. A reported revenue, when present,
// replaces the "You" demo row.
func Handler(st store.Store, ranks RankStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		entries := DemoEntries()
		if revenue, reported, err := ranks.Revenue(r.Context(), uid); err == nil && reported {
			for i := range entries {
				if entries[i].Name == "You" {
					entries[i].LastMonthRevenue = entries[i].Revenue
					entries[i].Revenue = revenue
				}
			}
		}

		var view []Entry
		timeframe := r.URL.Query().Get("timeframe")
		switch timeframe {
		case "", "monthly":
			timeframe = "monthly"
			view = Monthly(entries)
		case "weekly":
			view = Weekly(entries)
		case "rising":
			view = RisingStars(entries)
		default:
			http.Error(w, "bad timeframe", http.StatusBadRequest)
			return
		}

		var you *Entry
		for i := range view {
			if view[i].Name == "You" {
				you = &view[i]
				break
			}
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"timeframe":    timeframe,
			"entries":      view,
			"you":          you,
			"achievements": DemoAchievements(),
		})
	}
}

// ReportHandler records the user's monthly revenue in the ranking.
func ReportHandler(st store.Store, ranks RankStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req struct {
			Revenue float64 `json:"revenue"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Revenue < 0 {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		if err := ranks.Report(r.Context(), uid, req.Revenue); err != nil {
			http.Error(w, "rank store error", http.StatusInternalServerError)
			return
		}
		rank, err := ranks.Rank(r.Context(), uid)
		if err != nil {
			http.Error(w, "rank store error", http.StatusInternalServerError)
			return
		}

		env := analytics.FromRequest(r)
		env.UserID = uid
		analytics.Log(r.Context(), st, env, "revenue_reported", map[string]any{
			"revenue": req.Revenue,
		}, analytics.SourceEventKeyFromRequest(r))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":   true,
			"rank": rank,
		})
	}
}
