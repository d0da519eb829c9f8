package groups

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"hustlehub-backend/internal/auth"
	"hustlehub-backend/internal/store"
)

func loadCircle(r *http.Request, st store.Store, uid int) (*Circle, error) {
	var c Circle
	if err := store.LoadJSON(r.Context(), st, uid, store.KeyUserCircle, &c); err != nil {
		return nil, err
	}
	if c.ID == "" {
		return nil, nil
	}
	return &c, nil
}

// ListHandler returns the user's circle, if any, plus the discovery list.
func ListHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		circle, err := loadCircle(r, st, uid)
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"circle":    circle,
			"available": AvailableCircles(),
		})
	}
}

// CreateHandler starts a new circle with the user as owner.
func CreateHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			Location    string `json:"location"`
			Category    string `json:"category"`
			IsPrivate   bool   `json:"isPrivate"`
			MaxMembers  int    `json:"maxMembers"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		req.Name = strings.TrimSpace(req.Name)
		req.Description = strings.TrimSpace(req.Description)
		if req.Name == "" || req.Description == "" {
			http.Error(w, "name and description are required", http.StatusBadRequest)
			return
		}
		if req.Category == "" {
			req.Category = "General"
		}
		if req.MaxMembers <= 0 {
			req.MaxMembers = 10
		}

		circle := Circle{
			ID:          uuid.NewString(),
			Name:        req.Name,
			Description: req.Description,
			MemberCount: 1,
			MaxMembers:  req.MaxMembers,
			Location:    req.Location,
			Category:    req.Category,
			IsPrivate:   req.IsPrivate,
			CreatedBy:   "current-user",
			Members: []Member{
				{
					ID:       "current-user",
					Name:     "You",
					Revenue:  95000,
					Location: req.Location,
					Role:     RoleOwner,
				},
			},
		}

		if err := store.SaveJSON(r.Context(), st, uid, store.KeyUserCircle, circle); err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(circle)
	}
}

// JoinHandler adds the user to one of the discovery circles.
func JoinHandler(st store.Store) http.HandlerFunc {
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

		circle, found := FindCircle(req.ID)
		if !found {
			http.Error(w, "circle not found", http.StatusNotFound)
			return
		}
		if circle.MemberCount >= circle.MaxMembers {
			http.Error(w, "circle is full", http.StatusConflict)
			return
		}

		circle.MemberCount++
		circle.Members = append(circle.Members, Member{
			ID:       "current-user",
			Name:     "You",
			Revenue:  95000,
			Location: "Your Location",
			Role:     RoleMember,
		})

		if err := store.SaveJSON(r.Context(), st, uid, store.KeyUserCircle, circle); err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(circle)
	}
}

// LeaveHandler drops the user's circle membership.
func LeaveHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := st.DeleteBlob(r.Context(), uid, store.KeyUserCircle); err != nil && err != store.ErrNotFound {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}
}
