package motivation

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"hustlehub-backend/internal/auth"
	"hustlehub-backend/internal/store"
)

// QuotesHandler handles GET (collection plus today's pick) and POST (add).
func QuotesHandler(st store.Store, rng *Rand) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var quotes []Quote
		if err := store.LoadJSON(r.Context(), st, uid, store.KeyMotivationQuotes, &quotes); err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		switch r.Method {
		case http.MethodGet:
			if quotes == nil {
				quotes = DefaultQuotes()
				if err := store.SaveJSON(r.Context(), st, uid, store.KeyMotivationQuotes, quotes); err != nil {
					http.Error(w, "db error", http.StatusInternalServerError)
					return
				}
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"quotes": quotes,
				"today":  QuoteOfDay(quotes, rng),
			})

		case http.MethodPost:
			var req struct {
				Text   string `json:"text"`
				Author string `json:"author"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "bad request", http.StatusBadRequest)
				return
			}
			req.Text = strings.TrimSpace(req.Text)
			req.Author = strings.TrimSpace(req.Author)
			if req.Text == "" || req.Author == "" {
				http.Error(w, "text and author are required", http.StatusBadRequest)
				return
			}

			q := Quote{ID: uuid.NewString(), Text: req.Text, Author: req.Author}
			quotes = append(quotes, q)
			if err := store.SaveJSON(r.Context(), st, uid, store.KeyMotivationQuotes, quotes); err != nil {
				http.Error(w, "db error", http.StatusInternalServerError)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(q)

		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

// DeleteQuoteHandler removes one quote by id.
func DeleteQuoteHandler(st store.Store) http.HandlerFunc {
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

		var quotes []Quote
		if err := store.LoadJSON(r.Context(), st, uid, store.KeyMotivationQuotes, &quotes); err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		next := quotes[:0]
		for _, q := range quotes {
			if q.ID != req.ID {
				next = append(next, q)
			}
		}
		if err := store.SaveJSON(r.Context(), st, uid, store.KeyMotivationQuotes, next); err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}
}

// VisionHandler handles GET (board, seeding defaults) and POST (add item).
func VisionHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var items []VisionItem
		if err := store.LoadJSON(r.Context(), st, uid, store.KeyVisionBoard, &items); err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		switch r.Method {
		case http.MethodGet:
			if items == nil {
				items = DefaultVision()
				if err := store.SaveJSON(r.Context(), st, uid, store.KeyVisionBoard, items); err != nil {
					http.Error(w, "db error", http.StatusInternalServerError)
					return
				}
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{"items": items})

		case http.MethodPost:
			var req struct {
				Title          string  `json:"title"`
				Description    string  `json:"description"`
				EstimatedCost  float64 `json:"estimatedCost"`
				RequiredIncome float64 `json:"requiredIncome"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "bad request", http.StatusBadRequest)
				return
			}
			req.Title = strings.TrimSpace(req.Title)
			if req.Title == "" {
				http.Error(w, "title is required", http.StatusBadRequest)
				return
			}

			item := VisionItem{
				ID:             uuid.NewString(),
				Title:          req.Title,
				Description:    strings.TrimSpace(req.Description),
				EstimatedCost:  req.EstimatedCost,
				RequiredIncome: req.RequiredIncome,
			}
			items = append(items, item)
			if err := store.SaveJSON(r.Context(), st, uid, store.KeyVisionBoard, items); err != nil {
				http.Error(w, "db error", http.StatusInternalServerError)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(item)

		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

// DeleteVisionHandler removes one board item by id.
func DeleteVisionHandler(st store.Store) http.HandlerFunc {
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

		var items []VisionItem
		if err := store.LoadJSON(r.Context(), st, uid, store.KeyVisionBoard, &items); err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		next := items[:0]
		for _, item := range items {
			if item.ID != req.ID {
				next = append(next, item)
			}
		}
		if err := store.SaveJSON(r.Context(), st, uid, store.KeyVisionBoard, next); err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}
}
