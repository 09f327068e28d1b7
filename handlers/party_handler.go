package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"kathasales/models"
	"kathasales/repository"
)

type PartyHandler struct {
	Repo repository.PartyRepository
}

func (h *PartyHandler) CreateParty(w http.ResponseWriter, r *http.Request) {
	var party models.Party
	if err := json.NewDecoder(r.Body).Decode(&party); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if party.PartyName == "" {
		writeError(w, http.StatusBadRequest, "party_name is required")
		return
	}

	if err := h.Repo.CreateParty(&party); err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, party)
}

func (h *PartyHandler) ListParties(w http.ResponseWriter, r *http.Request) {
	parties, err := h.Repo.GetParties()
	if err != nil {
		repoError(w, err)
		return
	}
	if parties == nil {
		parties = []*models.Party{}
	}
	writeJSON(w, http.StatusOK, parties)
}

func (h *PartyHandler) GetPartyByID(w http.ResponseWriter, r *http.Request, id string) {
	partyID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid party id")
		return
	}
	party, err := h.Repo.GetPartyByID(partyID)
	if err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, party)
}

func (h *PartyHandler) UpdateParty(w http.ResponseWriter, r *http.Request, id string) {
	partyID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid party id")
		return
	}
	var party models.Party
	if err := json.NewDecoder(r.Body).Decode(&party); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	party.ID = partyID

	if err := h.Repo.UpdateParty(&party); err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, party)
}

func (h *PartyHandler) DeleteParty(w http.ResponseWriter, r *http.Request, id string) {
	partyID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid party id")
		return
	}
	if err := h.Repo.DeleteParty(partyID); err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Party deleted successfully"})
}

// PartyLedger serves GET /api/parties/{id}/ledger.
func (h *PartyHandler) PartyLedger(w http.ResponseWriter, r *http.Request, id string) {
	partyID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid party id")
		return
	}
	records, err := h.Repo.PartyLedger(partyID)
	if err != nil {
		repoError(w, err)
		return
	}
	if records == nil {
		records = []models.PartyLedgerRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}
