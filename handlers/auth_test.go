package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequireAuthRejectsMissingToken(t *testing.T) {
	called := false
	h := RequireAuth("secret", func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodGet, "/api/students", nil)
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if called {
		t.Error("handler ran without a token")
	}
}

func TestRequireAuthRejectsBadToken(t *testing.T) {
	h := RequireAuth("secret", func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler ran with an invalid token")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/students", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireAuthAcceptsIssuedToken(t *testing.T) {
	token, err := GenerateToken("secret", 7, "staff@example.com", "staff")
	if err != nil {
		t.Fatal(err)
	}

	called := false
	h := RequireAuth("secret", func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/students", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h(rec, req)

	if !called {
		t.Fatal("handler did not run with a valid token")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRequireAuthRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken("other-secret", 7, "staff@example.com", "staff")
	if err != nil {
		t.Fatal(err)
	}

	h := RequireAuth("secret", func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler ran with a token signed by another secret")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/students", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
