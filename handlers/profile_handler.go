package handlers

import (
	"encoding/json"
	"net/http"

	"kathasales/models"
	"kathasales/repository"
)

type ProfileHandler struct {
	Repo repository.ProfileRepository
}

func (h *ProfileHandler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.CompanyProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if profile.CompanyName == "" {
		writeError(w, http.StatusBadRequest, "company_name is required")
		return
	}

	if err := h.Repo.SaveProfile(&profile); err != nil {
		repoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Repo.GetProfile()
	if err != nil {
		repoError(w, err)
		return
	}
	if profile == nil {
		writeError(w, http.StatusNotFound, "company profile not set")
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
