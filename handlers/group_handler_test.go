package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kathasales/codes"
	"kathasales/models"
	"kathasales/repository"
)

type fakeGroupRepo struct {
	repository.GroupRepository
	deleteErr error
	createErr error
}

func (f *fakeGroupRepo) CreateGroup(group *models.Group) error {
	if f.createErr != nil {
		return f.createErr
	}
	group.ID = 1
	group.GroupNumber = 4
	return nil
}

func (f *fakeGroupRepo) DeleteGroup(id int64) error {
	return f.deleteErr
}

func TestCreateGroupAssignsNumber(t *testing.T) {
	h := &GroupHandler{Repo: &fakeGroupRepo{}}

	req := httptest.NewRequest(http.MethodPost, "/api/groups",
		strings.NewReader(`{"group_name":"Electronics"}`))
	rec := httptest.NewRecorder()
	h.CreateGroup(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	if !strings.Contains(rec.Body.String(), `"group_number":4`) {
		t.Errorf("body = %s, want assigned group_number", rec.Body.String())
	}
}

func TestCreateGroupAtCapacity(t *testing.T) {
	h := &GroupHandler{Repo: &fakeGroupRepo{createErr: codes.ErrLimitExceeded}}

	req := httptest.NewRequest(http.MethodPost, "/api/groups",
		strings.NewReader(`{"group_name":"One Too Many"}`))
	rec := httptest.NewRecorder()
	h.CreateGroup(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestCreateGroupMissingName(t *testing.T) {
	h := &GroupHandler{Repo: &fakeGroupRepo{}}

	req := httptest.NewRequest(http.MethodPost, "/api/groups", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.CreateGroup(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestDeleteGroupInUse(t *testing.T) {
	h := &GroupHandler{Repo: &fakeGroupRepo{deleteErr: repository.ErrInUse}}

	req := httptest.NewRequest(http.MethodDelete, "/api/groups/3", nil)
	rec := httptest.NewRecorder()
	h.DeleteGroup(rec, req, "3")

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusConflict)
	}
}

func TestDeleteGroupNotFound(t *testing.T) {
	h := &GroupHandler{Repo: &fakeGroupRepo{deleteErr: repository.ErrNotFound}}

	req := httptest.NewRequest(http.MethodDelete, "/api/groups/99", nil)
	rec := httptest.NewRecorder()
	h.DeleteGroup(rec, req, "99")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
