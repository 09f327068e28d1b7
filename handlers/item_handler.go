package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"kathasales/models"
	"kathasales/repository"
)

type ItemHandler struct {
	Repo repository.ItemRepository
}

// MaxCode returns the highest item code already assigned under a category
// number; the item form derives the next code from it.
func (h *ItemHandler) MaxCode(w http.ResponseWriter, r *http.Request) {
	categoryNumber := r.URL.Query().Get("category_number")
	if categoryNumber == "" {
		writeError(w, http.StatusBadRequest, "missing category_number")
		return
	}

	last, err := h.Repo.MaxItemCode(categoryNumber)
	if err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"last_code": last})
}

func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var item models.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if item.ItemName == "" || item.CategoryID == 0 {
		writeError(w, http.StatusBadRequest, "item_name and category_id are required")
		return
	}

	if err := h.Repo.CreateItem(&item); err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.GetItems()
	if err != nil {
		repoError(w, err)
		return
	}
	if items == nil {
		items = []*models.Item{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ItemHandler) GetItemByID(w http.ResponseWriter, r *http.Request, id string) {
	itemID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}
	item, err := h.Repo.GetItemByID(itemID)
	if err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request, id string) {
	itemID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}
	var item models.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	item.ID = itemID

	if err := h.Repo.UpdateItem(&item); err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request, id string) {
	itemID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return
	}
	if err := h.Repo.DeleteItem(itemID); err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Item deleted successfully"})
}
