package handlers

import (
	"net/http"
	"strconv"

	"kathasales/ledger"
	"kathasales/repository"
)

type ReportHandler struct {
	Repo repository.ReportRepository
}

// ItemTransactions serves GET /api/reports/item-transactions. The item is
// selected by ?item_id= or ?item_code=; at least one is required.
func (h *ReportHandler) ItemTransactions(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("item_id")
	itemCode := r.URL.Query().Get("item_code")
	if idStr == "" && itemCode == "" {
		writeError(w, http.StatusBadRequest, "missing item_id or item_code")
		return
	}

	var itemID int64
	if idStr != "" {
		var err error
		itemID, err = strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid item_id")
			return
		}
	}

	records, err := h.Repo.ItemTransactions(itemID, itemCode)
	if err != nil {
		repoError(w, err)
		return
	}
	if records == nil {
		records = []ledger.Record{}
	}
	writeJSON(w, http.StatusOK, records)
}
