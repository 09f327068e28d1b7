package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"kathasales/models"
	"kathasales/repository"
)

type CategoryHandler struct {
	Repo repository.CategoryRepository
}

// NextNumber previews the category number the next create would assign for
// a group.
func (h *CategoryHandler) NextNumber(w http.ResponseWriter, r *http.Request) {
	groupIDStr := r.URL.Query().Get("group_id")
	if groupIDStr == "" {
		writeError(w, http.StatusBadRequest, "missing group_id")
		return
	}
	groupID, err := strconv.ParseInt(groupIDStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid group_id")
		return
	}

	next, err := h.Repo.NextCategoryNumber(groupID)
	if err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"next_number": next})
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var category models.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if category.CategoryName == "" || category.GroupID == 0 {
		writeError(w, http.StatusBadRequest, "category_name and group_id are required")
		return
	}

	if err := h.Repo.CreateCategory(&category); err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Repo.GetCategories()
	if err != nil {
		repoError(w, err)
		return
	}
	if categories == nil {
		categories = []*models.Category{}
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) GetCategoryByID(w http.ResponseWriter, r *http.Request, id string) {
	categoryID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return
	}
	category, err := h.Repo.GetCategoryByID(categoryID)
	if err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request, id string) {
	categoryID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return
	}
	var category models.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	category.ID = categoryID

	if err := h.Repo.UpdateCategory(&category); err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request, id string) {
	categoryID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return
	}
	if err := h.Repo.DeleteCategory(categoryID); err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Category deleted successfully"})
}
