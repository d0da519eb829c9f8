package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	secret := []byte("test-secret")
	token, err := GenerateToken(secret, 42)
	if err != nil {
		t.Fatal(err)
	}

	uid, err := ParseToken(secret, token)
	if err != nil {
		t.Fatal(err)
	}
	if uid != 42 {
		t.Errorf("uid = %d, want 42", uid)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := GenerateToken([]byte("secret-a"), 42)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseToken([]byte("secret-b"), token); err == nil {
		t.Error("token signed with another secret accepted")
	}
}

func TestParseTokenMissingUserID(t *testing.T) {
	t.Parallel()

	secret := []byte("test-secret")

	// Well-signed token, but without a user_id claim. Must not fall through
	// as user 0.
	claims := jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatal(err)
	}
	if uid, err := ParseToken(secret, token); err == nil {
		t.Errorf("token without user_id accepted as user %d", uid)
	}

	// Same for a non-numeric user_id.
	claims["user_id"] = "42"
	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatal(err)
	}
	if uid, err := ParseToken(secret, token); err == nil {
		t.Errorf("token with string user_id accepted as user %d", uid)
	}
}

func TestParseTokenGarbage(t *testing.T) {
	t.Parallel()

	if _, err := ParseToken([]byte("secret"), "not.a.token"); err == nil {
		t.Error("garbage token accepted")
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	secret := []byte("test-secret")
	mw := New(secret)

	var gotUID int
	handler := mw.Wrap(func(w http.ResponseWriter, r *http.Request) {
		uid, ok := UserIDFromContext(r.Context())
		if !ok {
			t.Error("no user id in context")
		}
		gotUID = uid
		w.WriteHeader(http.StatusOK)
	})

	token, err := GenerateToken(secret, 7)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"no bearer prefix", token, http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/goals", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			handler(w, r)
			if w.Code != tc.status {
				t.Errorf("status = %d, want %d", w.Code, tc.status)
			}
		})
	}

	if gotUID != 7 {
		t.Errorf("handler saw uid %d, want 7", gotUID)
	}
}
