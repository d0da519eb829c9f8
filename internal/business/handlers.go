package business

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"hustlehub-backend/internal/analytics"
	"hustlehub-backend/internal/auth"
	"hustlehub-backend/internal/store"
)

func load(r *http.Request, st store.Store, uid int) ([]Model, error) {
	var list []Model
	err := store.LoadJSON(r.Context(), st, uid, store.KeyBusinessModels, &list)
	return list, err
}

func save(r *http.Request, st store.Store, uid int, list []Model) error {
	return store.SaveJSON(r.Context(), st, uid, store.KeyBusinessModels, list)
}

// ListHandler: GET returns the roster (seeding the starter templates on first
// read), POST appends a new model, either a named one from the request or a
// blank template.
func ListHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		switch r.Method {
		case http.MethodGet:
			list, err := load(r, st, uid)
			if err != nil {
				http.Error(w, "db error", http.StatusInternalServerError)
				return
			}
			if list == nil {
				list = StarterTemplates()
				if err := save(r, st, uid, list); err != nil {
					http.Error(w, "db error", http.StatusInternalServerError)
					return
				}
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(list)

		case http.MethodPost:
			var body Model
			_ = json.NewDecoder(r.Body).Decode(&body)
			model := Blank()
			if strings.TrimSpace(body.Name) != "" {
				model.Name = strings.TrimSpace(body.Name)
			}
			if body.Type != "" {
				model.Type = body.Type
			}
			if body.IncomeModel != "" {
				model.IncomeModel = body.IncomeModel
			}
			if body.Status != "" {
				model.Status = body.Status
			}
			if body.Description != "" {
				model.Description = body.Description
			}

			list, err := load(r, st, uid)
			if err != nil {
				http.Error(w, "db error", http.StatusInternalServerError)
				return
			}
			list = append(list, model)
			if err := save(r, st, uid, list); err != nil {
				http.Error(w, "db error", http.StatusInternalServerError)
				return
			}

			env := analytics.FromRequest(r)
			env.UserID = uid
			analytics.Log(r.Context(), st, env, "model_created", map[string]any{
				"model_id": model.ID,
				"type":     model.Type,
			}, analytics.SourceEventKeyFromRequest(r))

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(model)

		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
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
			ID          string  `json:"id"`
			Name        *string `json:"name"`
			Type        *string `json:"type"`
			IncomeModel *string `json:"incomeModel"`
			Status      *string `json:"status"`
			Description *string `json:"description"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ID == "" {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		list, err := load(r, st, uid)
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		var updated *Model
		for i := range list {
			if list[i].ID != body.ID {
				continue
			}
			if body.Name != nil && strings.TrimSpace(*body.Name) != "" {
				list[i].Name = strings.TrimSpace(*body.Name)
			}
			if body.Type != nil {
				list[i].Type = Type(*body.Type)
			}
			if body.IncomeModel != nil {
				list[i].IncomeModel = *body.IncomeModel
			}
			if body.Status != nil {
				list[i].Status = Status(*body.Status)
			}
			if body.Description != nil {
				list[i].Description = *body.Description
			}
			updated = &list[i]
			break
		}
		if updated == nil {
			http.Error(w, "no model", http.StatusNotFound)
			return
		}
		if err := save(r, st, uid, list); err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

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

		list, err := load(r, st, uid)
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}
		kept := list[:0]
		for _, m := range list {
			if m.ID != body.ID {
				kept = append(kept, m)
			}
		}
		if err := save(r, st, uid, kept); err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}
}

// TaskHandler mutates the checklist of one model: action add/toggle/delete.
func TaskHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var body struct {
			ModelID string `json:"modelId"`
			Action  string `json:"action"` // add | toggle | delete
			TaskID  string `json:"taskId"`
			Text    string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ModelID == "" {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		list, err := load(r, st, uid)
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		var model *Model
		for i := range list {
			if list[i].ID == body.ModelID {
				model = &list[i]
				break
			}
		}
		if model == nil {
			http.Error(w, "no model", http.StatusNotFound)
			return
		}

		switch body.Action {
		case "add":
			text := strings.TrimSpace(body.Text)
			if text == "" {
				http.Error(w, "text required", http.StatusBadRequest)
				return
			}
			model.Tasks = append(model.Tasks, Task{ID: uuid.NewString(), Text: text})
		case "toggle":
			found := false
			for i := range model.Tasks {
				if model.Tasks[i].ID == body.TaskID {
					model.Tasks[i].Completed = !model.Tasks[i].Completed
					found = true
					break
				}
			}
			if !found {
				http.Error(w, "no task", http.StatusNotFound)
				return
			}
		case "delete":
			kept := model.Tasks[:0]
			for _, t := range model.Tasks {
				if t.ID != body.TaskID {
					kept = append(kept, t)
				}
			}
			model.Tasks = kept
		default:
			http.Error(w, "unknown action", http.StatusBadRequest)
			return
		}

		if err := save(r, st, uid, list); err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(model)
	}
}
