package handlers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"kathasales/models"
	"kathasales/repository"
	"kathasales/utils"
)

type PDFHandler struct {
	Repo     *repository.PDFRepository
	SavePath string
}

// InvoicePDF generates an invoice PDF for a cash or credit sale, saves it
// locally and uploads a copy to R2 when configured.
func (h *PDFHandler) InvoicePDF(w http.ResponseWriter, r *http.Request) {
	kindStr := r.URL.Query().Get("kind")
	var kind models.SaleKind
	switch kindStr {
	case "cash":
		kind = models.SaleCash
	case "credit":
		kind = models.SaleCredit
	default:
		writeError(w, http.StatusBadRequest, "kind must be cash or credit")
		return
	}

	saleIDStr := r.URL.Query().Get("id")
	if saleIDStr == "" {
		writeError(w, http.StatusBadRequest, "missing sale id")
		return
	}
	saleID, err := strconv.ParseInt(saleIDStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid sale id")
		return
	}

	saveDir := h.SavePath
	if saveDir == "" {
		saveDir = "./pdfs"
	}
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create save directory: "+err.Error())
		return
	}

	pdfBytes, err := utils.GenerateInvoicePDF(h.Repo, kind, saleID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate PDF: "+err.Error())
		return
	}
	if len(pdfBytes) == 0 {
		writeError(w, http.StatusNotFound, "sale not found")
		return
	}

	filename := fmt.Sprintf("invoice_%s_%d_%d.pdf", kind, saleID, time.Now().Unix())
	savePath := filepath.Join(saveDir, filename)

	if err := os.WriteFile(savePath, pdfBytes, 0644); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save PDF: "+err.Error())
		return
	}

	fileURL := ""
	if os.Getenv("R2_BUCKET") != "" {
		fileURL, err = utils.UploadToR2(pdfBytes, filename)
		if err != nil {
			// Local copy already exists, keep serving it.
			log.Printf("failed to upload invoice %s to R2: %v", filename, err)
			fileURL = ""
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"file":    filename,
		"url":     fileURL,
	})
}
