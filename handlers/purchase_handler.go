package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"kathasales/models"
	"kathasales/repository"
)

type PurchaseHandler struct {
	Repo repository.PurchaseRepository
}

func (h *PurchaseHandler) CreatePurchase(w http.ResponseWriter, r *http.Request) {
	var purchase models.Purchase
	if err := json.NewDecoder(r.Body).Decode(&purchase); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if purchase.InvoiceNo == "" {
		writeError(w, http.StatusBadRequest, "invoice_no is required")
		return
	}

	if err := h.Repo.CreatePurchase(&purchase); err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, purchase)
}

func (h *PurchaseHandler) ListPurchases(w http.ResponseWriter, r *http.Request) {
	purchases, err := h.Repo.GetPurchases()
	if err != nil {
		repoError(w, err)
		return
	}
	if purchases == nil {
		purchases = []*models.Purchase{}
	}
	writeJSON(w, http.StatusOK, purchases)
}

func (h *PurchaseHandler) GetPurchaseByID(w http.ResponseWriter, r *http.Request, id string) {
	purchaseID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid purchase id")
		return
	}
	purchase, err := h.Repo.GetPurchaseByID(purchaseID)
	if err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, purchase)
}

func (h *PurchaseHandler) UpdatePurchase(w http.ResponseWriter, r *http.Request, id string) {
	purchaseID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid purchase id")
		return
	}
	var purchase models.Purchase
	if err := json.NewDecoder(r.Body).Decode(&purchase); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	purchase.ID = purchaseID

	if err := h.Repo.UpdatePurchase(&purchase); err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, purchase)
}

func (h *PurchaseHandler) DeletePurchase(w http.ResponseWriter, r *http.Request, id string) {
	purchaseID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid purchase id")
		return
	}
	if err := h.Repo.DeletePurchase(purchaseID); err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Purchase deleted successfully"})
}

// ListPurchaseItems lists the lines of one invoice (?purchase_id=).
func (h *PurchaseHandler) ListPurchaseItems(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("purchase_id")
	if idStr == "" {
		writeError(w, http.StatusBadRequest, "missing purchase_id")
		return
	}
	purchaseID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid purchase_id")
		return
	}

	lines, err := h.Repo.GetPurchaseItems(purchaseID)
	if err != nil {
		repoError(w, err)
		return
	}
	if lines == nil {
		lines = []models.PurchaseItem{}
	}
	writeJSON(w, http.StatusOK, lines)
}

func (h *PurchaseHandler) GetPurchaseItemByID(w http.ResponseWriter, r *http.Request, id string) {
	lineID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid purchase item id")
		return
	}
	line, err := h.Repo.GetPurchaseItemByID(lineID)
	if err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, line)
}

func (h *PurchaseHandler) CreatePurchaseItem(w http.ResponseWriter, r *http.Request) {
	var line models.PurchaseItem
	if err := json.NewDecoder(r.Body).Decode(&line); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if line.PurchaseID == 0 {
		writeError(w, http.StatusBadRequest, "purchase_id is required")
		return
	}

	if err := h.Repo.CreatePurchaseItem(&line); err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, line)
}

func (h *PurchaseHandler) UpdatePurchaseItem(w http.ResponseWriter, r *http.Request, id string) {
	lineID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid purchase item id")
		return
	}
	var line models.PurchaseItem
	if err := json.NewDecoder(r.Body).Decode(&line); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	line.ID = lineID

	if err := h.Repo.UpdatePurchaseItem(&line); err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, line)
}

func (h *PurchaseHandler) DeletePurchaseItem(w http.ResponseWriter, r *http.Request, id string) {
	lineID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid purchase item id")
		return
	}
	if err := h.Repo.DeletePurchaseItem(lineID); err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Purchase item deleted successfully"})
}
