package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"kathasales/models"
	"kathasales/repository"
)

// VoucherHandler serves receipts or payments; register one instance per kind.
type VoucherHandler struct {
	Repo repository.VoucherRepository
	Kind models.VoucherKind
}

func (h *VoucherHandler) CreateVoucher(w http.ResponseWriter, r *http.Request) {
	var voucher models.Voucher
	if err := json.NewDecoder(r.Body).Decode(&voucher); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if voucher.PartyID == 0 {
		writeError(w, http.StatusBadRequest, "party_id is required")
		return
	}
	if voucher.Amount <= 0 {
		writeError(w, http.StatusBadRequest, "amount must be positive")
		return
	}

	if err := h.Repo.CreateVoucher(&voucher); err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, voucher)
}

func (h *VoucherHandler) ListVouchers(w http.ResponseWriter, r *http.Request) {
	vouchers, err := h.Repo.GetVouchers()
	if err != nil {
		repoError(w, err)
		return
	}
	if vouchers == nil {
		vouchers = []*models.Voucher{}
	}
	writeJSON(w, http.StatusOK, vouchers)
}

func (h *VoucherHandler) GetVoucherByID(w http.ResponseWriter, r *http.Request, id string) {
	voucherID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid voucher id")
		return
	}
	voucher, err := h.Repo.GetVoucherByID(voucherID)
	if err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, voucher)
}

func (h *VoucherHandler) UpdateVoucher(w http.ResponseWriter, r *http.Request, id string) {
	voucherID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid voucher id")
		return
	}
	var voucher models.Voucher
	if err := json.NewDecoder(r.Body).Decode(&voucher); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if voucher.Amount <= 0 {
		writeError(w, http.StatusBadRequest, "amount must be positive")
		return
	}
	voucher.ID = voucherID

	if err := h.Repo.UpdateVoucher(&voucher); err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, voucher)
}

func (h *VoucherHandler) DeleteVoucher(w http.ResponseWriter, r *http.Request, id string) {
	voucherID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid voucher id")
		return
	}
	if err := h.Repo.DeleteVoucher(voucherID); err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Voucher deleted successfully"})
}
