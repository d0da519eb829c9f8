package profile

import (
	"encoding/json"
	"net/http"
	"strings"

	"hustlehub-backend/internal/auth"
	"hustlehub-backend/internal/store"
)

// Handler handles GET (profile, seeding the demo card with the account
// email on first visit) and POST (edit the public fields).
func Handler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var p Profile
		err := store.LoadJSON(r.Context(), st, uid, store.KeyUserProfile, &p)
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}
		seeded := p.ID != ""

		switch r.Method {
		case http.MethodGet:
			if !seeded {
				email, err := st.UserEmail(r.Context(), uid)
				if err != nil {
					http.Error(w, "db error", http.StatusInternalServerError)
					return
				}
				p = Default(email)
				if err := store.SaveJSON(r.Context(), st, uid, store.KeyUserProfile, p); err != nil {
					http.Error(w, "db error", http.StatusInternalServerError)
					return
				}
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"profile":     p,
				"growth_rate": p.GrowthRate(),
			})

		case http.MethodPost:
			if !seeded {
				email, err := st.UserEmail(r.Context(), uid)
				if err != nil {
					http.Error(w, "db error", http.StatusInternalServerError)
					return
				}
				p = Default(email)
			}

			var req struct {
				Name           *string  `json:"name"`
				Bio            *string  `json:"bio"`
				Location       *string  `json:"location"`
				BusinessModel  *string  `json:"businessModel"`
				Website        *string  `json:"website"`
				MonthlyRevenue *float64 `json:"monthlyRevenue"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "bad request", http.StatusBadRequest)
				return
			}
			if req.Name != nil {
				name := strings.TrimSpace(*req.Name)
				if name == "" {
					http.Error(w, "name cannot be empty", http.StatusBadRequest)
					return
				}
				p.Name = name
			}
			if req.Bio != nil {
				p.Bio = *req.Bio
			}
			if req.Location != nil {
				p.Location = *req.Location
			}
			if req.BusinessModel != nil {
				p.BusinessModel = *req.BusinessModel
			}
			if req.Website != nil {
				p.Website = *req.Website
			}
			if req.MonthlyRevenue != nil && *req.MonthlyRevenue >= 0 {
				p.MonthlyRevenue = *req.MonthlyRevenue
			}

			if err := store.SaveJSON(r.Context(), st, uid, store.KeyUserProfile, p); err != nil {
				http.Error(w, "db error", http.StatusInternalServerError)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(p)

		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}
