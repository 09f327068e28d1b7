package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"kathasales/models"
	"kathasales/repository"
)

// SaleHandler serves cash or credit sales depending on the repo it wraps;
// one instance is registered per kind.
type SaleHandler struct {
	Repo repository.SaleRepository
}

func (h *SaleHandler) CreateSale(w http.ResponseWriter, r *http.Request) {
	var sale models.Sale
	if err := json.NewDecoder(r.Body).Decode(&sale); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if sale.InvoiceNo == "" {
		writeError(w, http.StatusBadRequest, "invoice_no is required")
		return
	}

	if err := h.Repo.CreateSale(&sale); err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sale)
}

func (h *SaleHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	sales, err := h.Repo.GetSales()
	if err != nil {
		repoError(w, err)
		return
	}
	if sales == nil {
		sales = []*models.Sale{}
	}
	writeJSON(w, http.StatusOK, sales)
}

func (h *SaleHandler) GetSaleByID(w http.ResponseWriter, r *http.Request, id string) {
	saleID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid sale id")
		return
	}
	sale, err := h.Repo.GetSaleByID(saleID)
	if err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sale)
}

func (h *SaleHandler) UpdateSale(w http.ResponseWriter, r *http.Request, id string) {
	saleID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid sale id")
		return
	}
	var sale models.Sale
	if err := json.NewDecoder(r.Body).Decode(&sale); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	sale.ID = saleID

	if err := h.Repo.UpdateSale(&sale); err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sale)
}

func (h *SaleHandler) DeleteSale(w http.ResponseWriter, r *http.Request, id string) {
	saleID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid sale id")
		return
	}
	if err := h.Repo.DeleteSale(saleID); err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Sale deleted successfully"})
}

// ListSaleItems lists the lines of one invoice (?sale_id=).
func (h *SaleHandler) ListSaleItems(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("sale_id")
	if idStr == "" {
		writeError(w, http.StatusBadRequest, "missing sale_id")
		return
	}
	saleID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid sale_id")
		return
	}

	lines, err := h.Repo.GetSaleItems(saleID)
	if err != nil {
		repoError(w, err)
		return
	}
	if lines == nil {
		lines = []models.SaleItem{}
	}
	writeJSON(w, http.StatusOK, lines)
}

func (h *SaleHandler) GetSaleItemByID(w http.ResponseWriter, r *http.Request, id string) {
	lineID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid sale item id")
		return
	}
	line, err := h.Repo.GetSaleItemByID(lineID)
	if err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, line)
}

func (h *SaleHandler) CreateSaleItem(w http.ResponseWriter, r *http.Request) {
	var line models.SaleItem
	if err := json.NewDecoder(r.Body).Decode(&line); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if line.SaleID == 0 {
		writeError(w, http.StatusBadRequest, "sale_id is required")
		return
	}

	if err := h.Repo.CreateSaleItem(&line); err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, line)
}

func (h *SaleHandler) UpdateSaleItem(w http.ResponseWriter, r *http.Request, id string) {
	lineID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid sale item id")
		return
	}
	var line models.SaleItem
	if err := json.NewDecoder(r.Body).Decode(&line); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	line.ID = lineID

	if err := h.Repo.UpdateSaleItem(&line); err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, line)
}

func (h *SaleHandler) DeleteSaleItem(w http.ResponseWriter, r *http.Request, id string) {
	lineID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid sale item id")
		return
	}
	if err := h.Repo.DeleteSaleItem(lineID); err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Sale item deleted successfully"})
}
