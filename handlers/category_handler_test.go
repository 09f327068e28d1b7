package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"kathasales/codes"
	"kathasales/repository"
)

type fakeCategoryRepo struct {
	repository.CategoryRepository
	nextNumber int
	nextErr    error
	gotGroupID int64
}

func (f *fakeCategoryRepo) NextCategoryNumber(groupID int64) (int, error) {
	f.gotGroupID = groupID
	return f.nextNumber, f.nextErr
}

func TestNextNumber(t *testing.T) {
	repo := &fakeCategoryRepo{nextNumber: 39}
	h := &CategoryHandler{Repo: repo}

	req := httptest.NewRequest(http.MethodGet, "/api/categories-next-number?group_id=3", nil)
	rec := httptest.NewRecorder()
	h.NextNumber(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if repo.gotGroupID != 3 {
		t.Errorf("group id = %d, want 3", repo.gotGroupID)
	}

	var body map[string]int
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["next_number"] != 39 {
		t.Errorf("next_number = %d, want 39", body["next_number"])
	}
}

func TestNextNumberMissingGroup(t *testing.T) {
	h := &CategoryHandler{Repo: &fakeCategoryRepo{}}

	req := httptest.NewRequest(http.MethodGet, "/api/categories-next-number", nil)
	rec := httptest.NewRecorder()
	h.NextNumber(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestNextNumberUnknownGroup(t *testing.T) {
	h := &CategoryHandler{Repo: &fakeCategoryRepo{nextErr: repository.ErrNotFound}}

	req := httptest.NewRequest(http.MethodGet, "/api/categories-next-number?group_id=99", nil)
	rec := httptest.NewRecorder()
	h.NextNumber(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestNextNumberLimitExceeded(t *testing.T) {
	h := &CategoryHandler{Repo: &fakeCategoryRepo{nextErr: codes.ErrLimitExceeded}}

	req := httptest.NewRequest(http.MethodGet, "/api/categories-next-number?group_id=9", nil)
	rec := httptest.NewRecorder()
	h.NextNumber(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
