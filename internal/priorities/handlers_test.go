package priorities

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hustlehub-backend/internal/auth"
	"hustlehub-backend/internal/store"
)

const testUserID = 1

// call runs a handler behind the auth middleware with a valid token.
func call(t *testing.T, h http.HandlerFunc, method, body string) *httptest.ResponseRecorder {
	t.Helper()

	secret := []byte("test-secret")
	token, err := auth.GenerateToken(secret, testUserID)
	if err != nil {
		t.Fatal(err)
	}

	r := httptest.NewRequest(method, "/priorities", strings.NewReader(body))
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	auth.New(secret).Wrap(h)(w, r)
	return w
}

func TestListAndAdd(t *testing.T) {
	t.Parallel()

	st := store.NewMemory()
	h := ListHandler(st)

	w := call(t, h, http.MethodGet, "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET status = %d", w.Code)
	}
	var page struct {
		Priorities     []Priority `json:"priorities"`
		CompletionRate float64    `json:"completion_rate"`
	}
	if err := json.NewDecoder(w.Body).Decode(&page); err != nil {
		t.Fatal(err)
	}
	if len(page.Priorities) != 0 || page.CompletionRate != 0 {
		t.Errorf("empty list = %+v", page)
	}

	w = call(t, h, http.MethodPost, `{"text":"  Close 2 discovery calls  "}`)
	if w.Code != http.StatusOK {
		t.Fatalf("POST status = %d, body %s", w.Code, w.Body)
	}
	var created Priority
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}
	if created.ID == "" || created.Text != "Close 2 discovery calls" || created.Completed {
		t.Errorf("created = %+v", created)
	}

	w = call(t, h, http.MethodPost, `{"text":"   "}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("blank text status = %d", w.Code)
	}
}

func TestToggleAndCompletionRate(t *testing.T) {
	t.Parallel()

	st := store.NewMemory()

	w := call(t, ListHandler(st), http.MethodPost, `{"text":"Send proposal"}`)
	var created Priority
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}

	w = call(t, ToggleHandler(st), http.MethodPost, `{"id":"`+created.ID+`"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("toggle status = %d, body %s", w.Code, w.Body)
	}

	w = call(t, ListHandler(st), http.MethodGet, "")
	var page struct {
		Priorities     []Priority `json:"priorities"`
		CompletionRate float64    `json:"completion_rate"`
	}
	if err := json.NewDecoder(w.Body).Decode(&page); err != nil {
		t.Fatal(err)
	}
	if page.CompletionRate != 100 {
		t.Errorf("completion rate = %v, want 100", page.CompletionRate)
	}
	if !page.Priorities[0].Completed {
		t.Error("entry not marked completed")
	}

	w = call(t, ToggleHandler(st), http.MethodPost, `{"id":"missing"}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown id status = %d", w.Code)
	}
}

func TestDeleteEntry(t *testing.T) {
	t.Parallel()

	st := store.NewMemory()

	w := call(t, ListHandler(st), http.MethodPost, `{"text":"Record podcast"}`)
	var created Priority
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}

	w = call(t, DeleteHandler(st), http.MethodPost, `{"id":"`+created.ID+`"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}

	w = call(t, ListHandler(st), http.MethodGet, "")
	var page struct {
		Priorities []Priority `json:"priorities"`
	}
	if err := json.NewDecoder(w.Body).Decode(&page); err != nil {
		t.Fatal(err)
	}
	if len(page.Priorities) != 0 {
		t.Errorf("list after delete = %+v", page.Priorities)
	}
}

func TestPromoteLogsEvent(t *testing.T) {
	t.Parallel()

	st := store.NewMemory()

	w := call(t, PromoteHandler(st), http.MethodPost, `{"task":"Make 10 cold outreach calls/messages"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("promote status = %d, body %s", w.Code, w.Body)
	}
	var created Priority
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}
	if created.Text != "Make 10 cold outreach calls/messages" {
		t.Errorf("promoted text = %q", created.Text)
	}

	names := st.EventNames()
	if len(names) != 1 || names[0] != "task_promoted" {
		t.Errorf("events = %v, want [task_promoted]", names)
	}
}

func TestRejectedWithoutToken(t *testing.T) {
	t.Parallel()

	st := store.NewMemory()
	r := httptest.NewRequest(http.MethodGet, "/priorities", nil)
	w := httptest.NewRecorder()
	auth.New([]byte("test-secret")).Wrap(ListHandler(st))(w, r)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}
