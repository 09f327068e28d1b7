package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"kathasales/models"
	"kathasales/repository"
)

type ChalanHandler struct {
	Repo repository.ChalanRepository
}

func (h *ChalanHandler) CreateChalan(w http.ResponseWriter, r *http.Request) {
	var chalan models.DeliveryChalan
	if err := json.NewDecoder(r.Body).Decode(&chalan); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if chalan.ChalanNo == "" {
		writeError(w, http.StatusBadRequest, "chalan_no is required")
		return
	}

	if err := h.Repo.CreateChalan(&chalan); err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, chalan)
}

func (h *ChalanHandler) ListChalans(w http.ResponseWriter, r *http.Request) {
	chalans, err := h.Repo.GetChalans()
	if err != nil {
		repoError(w, err)
		return
	}
	if chalans == nil {
		chalans = []*models.DeliveryChalan{}
	}
	writeJSON(w, http.StatusOK, chalans)
}

func (h *ChalanHandler) GetChalanByID(w http.ResponseWriter, r *http.Request, id string) {
	chalanID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid chalan id")
		return
	}
	chalan, err := h.Repo.GetChalanByID(chalanID)
	if err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, chalan)
}

func (h *ChalanHandler) UpdateChalan(w http.ResponseWriter, r *http.Request, id string) {
	chalanID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid chalan id")
		return
	}
	var chalan models.DeliveryChalan
	if err := json.NewDecoder(r.Body).Decode(&chalan); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	chalan.ID = chalanID

	if err := h.Repo.UpdateChalan(&chalan); err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, chalan)
}

func (h *ChalanHandler) DeleteChalan(w http.ResponseWriter, r *http.Request, id string) {
	chalanID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid chalan id")
		return
	}
	if err := h.Repo.DeleteChalan(chalanID); err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Delivery chalan deleted successfully"})
}

// ListChalanItems lists the lines of one chalan (?chalan_id=).
func (h *ChalanHandler) ListChalanItems(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("chalan_id")
	if idStr == "" {
		writeError(w, http.StatusBadRequest, "missing chalan_id")
		return
	}
	chalanID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid chalan_id")
		return
	}

	lines, err := h.Repo.GetChalanItems(chalanID)
	if err != nil {
		repoError(w, err)
		return
	}
	if lines == nil {
		lines = []models.DeliveryChalanItem{}
	}
	writeJSON(w, http.StatusOK, lines)
}

func (h *ChalanHandler) GetChalanItemByID(w http.ResponseWriter, r *http.Request, id string) {
	lineID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid chalan item id")
		return
	}
	line, err := h.Repo.GetChalanItemByID(lineID)
	if err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, line)
}

func (h *ChalanHandler) CreateChalanItem(w http.ResponseWriter, r *http.Request) {
	var line models.DeliveryChalanItem
	if err := json.NewDecoder(r.Body).Decode(&line); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if line.ChalanID == 0 {
		writeError(w, http.StatusBadRequest, "chalan_id is required")
		return
	}

	if err := h.Repo.CreateChalanItem(&line); err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, line)
}

func (h *ChalanHandler) UpdateChalanItem(w http.ResponseWriter, r *http.Request, id string) {
	lineID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid chalan item id")
		return
	}
	var line models.DeliveryChalanItem
	if err := json.NewDecoder(r.Body).Decode(&line); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	line.ID = lineID

	if err := h.Repo.UpdateChalanItem(&line); err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, line)
}

func (h *ChalanHandler) DeleteChalanItem(w http.ResponseWriter, r *http.Request, id string) {
	lineID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid chalan item id")
		return
	}
	if err := h.Repo.DeleteChalanItem(lineID); err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Chalan item deleted successfully"})
}
