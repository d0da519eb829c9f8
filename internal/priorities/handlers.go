package priorities

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"hustlehub-backend/internal/analytics"
	"hustlehub-backend/internal/auth"
	"hustlehub-backend/internal/store"
)

func load(r *http.Request, st store.Store, uid int) ([]Priority, error) {
	var list []Priority
	if err := store.LoadJSON(r.Context(), st, uid, store.KeyPriorities, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []Priority{}
	}
	return list, nil
}

// ListHandler handles GET (list + completion rate) and POST (add entry).
func ListHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		list, err := load(r, st, uid)
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		switch r.Method {
		case http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"priorities":      list,
				"completion_rate": CompletionRate(list),
			})

		case http.MethodPost:
			var req struct {
				Text string `json:"text"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "bad request", http.StatusBadRequest)
				return
			}
			req.Text = strings.TrimSpace(req.Text)
			if req.Text == "" {
				http.Error(w, "text is required", http.StatusBadRequest)
				return
			}

			p := Priority{ID: uuid.NewString(), Text: req.Text}
			list = append(list, p)
			if err := store.SaveJSON(r.Context(), st, uid, store.KeyPriorities, list); err != nil {
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

// ToggleHandler flips the completed flag on one entry.
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

		list, err := load(r, st, uid)
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		found := false
		for i := range list {
			if list[i].ID == req.ID {
				list[i].Completed = !list[i].Completed
				found = true
				break
			}
		}
		if !found {
			http.Error(w, "priority not found", http.StatusNotFound)
			return
		}

		if err := store.SaveJSON(r.Context(), st, uid, store.KeyPriorities, list); err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}
}

// DeleteHandler removes one entry by id.
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

		list, err := load(r, st, uid)
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		next := list[:0]
		for _, p := range list {
			if p.ID != req.ID {
				next = append(next, p)
			}
		}

		if err := store.SaveJSON(r.Context(), st, uid, store.KeyPriorities, next); err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}
}

// PromoteHandler copies a generated task's text onto the priority list.
func PromoteHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req struct {
			Task string `json:"task"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		req.Task = strings.TrimSpace(req.Task)
		if req.Task == "" {
			http.Error(w, "task is required", http.StatusBadRequest)
			return
		}

		list, err := load(r, st, uid)
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		p := Priority{ID: uuid.NewString(), Text: req.Task}
		list = append(list, p)
		if err := store.SaveJSON(r.Context(), st, uid, store.KeyPriorities, list); err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		env := analytics.FromRequest(r)
		env.UserID = uid
		analytics.Log(r.Context(), st, env, "task_promoted", map[string]any{
			"priority_id": p.ID,
		}, analytics.SourceEventKeyFromRequest(r))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(p)
	}
}
