package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"kathasales/repository"
)

type fakeItemRepo struct {
	repository.ItemRepository
	maxCode   string
	gotNumber string
}

func (f *fakeItemRepo) MaxItemCode(categoryNumber string) (string, error) {
	f.gotNumber = categoryNumber
	return f.maxCode, nil
}

func TestMaxCode(t *testing.T) {
	repo := &fakeItemRepo{maxCode: "3105"}
	h := &ItemHandler{Repo: repo}

	req := httptest.NewRequest(http.MethodGet, "/api/items-max-code?category_number=31", nil)
	rec := httptest.NewRecorder()
	h.MaxCode(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if repo.gotNumber != "31" {
		t.Errorf("category number = %q, want %q", repo.gotNumber, "31")
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["last_code"] != "3105" {
		t.Errorf("last_code = %q, want %q", body["last_code"], "3105")
	}
}

func TestMaxCodeEmptyCategory(t *testing.T) {
	h := &ItemHandler{Repo: &fakeItemRepo{maxCode: ""}}

	req := httptest.NewRequest(http.MethodGet, "/api/items-max-code?category_number=45", nil)
	rec := httptest.NewRecorder()
	h.MaxCode(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["last_code"] != "" {
		t.Errorf("last_code = %q, want empty", body["last_code"])
	}
}

func TestMaxCodeMissingParam(t *testing.T) {
	h := &ItemHandler{Repo: &fakeItemRepo{}}

	req := httptest.NewRequest(http.MethodGet, "/api/items-max-code", nil)
	rec := httptest.NewRecorder()
	h.MaxCode(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
