package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"kathasales/models"
	"kathasales/repository"
)

type GroupHandler struct {
	Repo repository.GroupRepository
}

// CreateGroup assigns the next group number server-side; the client only
// names the group.
func (h *GroupHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var group models.Group
	if err := json.NewDecoder(r.Body).Decode(&group); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if group.GroupName == "" {
		writeError(w, http.StatusBadRequest, "group_name is required")
		return
	}

	if err := h.Repo.CreateGroup(&group); err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, group)
}

func (h *GroupHandler) ListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.Repo.GetGroups()
	if err != nil {
		repoError(w, err)
		return
	}
	if groups == nil {
		groups = []*models.Group{}
	}
	writeJSON(w, http.StatusOK, groups)
}

func (h *GroupHandler) GetGroupByID(w http.ResponseWriter, r *http.Request, id string) {
	groupID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid group id")
		return
	}
	group, err := h.Repo.GetGroupByID(groupID)
	if err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, group)
}

func (h *GroupHandler) UpdateGroup(w http.ResponseWriter, r *http.Request, id string) {
	groupID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid group id")
		return
	}
	var group models.Group
	if err := json.NewDecoder(r.Body).Decode(&group); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	group.ID = groupID

	if err := h.Repo.UpdateGroup(&group); err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, group)
}

func (h *GroupHandler) DeleteGroup(w http.ResponseWriter, r *http.Request, id string) {
	groupID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid group id")
		return
	}
	if err := h.Repo.DeleteGroup(groupID); err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Group deleted successfully"})
}
