package handlers

import (
	"bytes"
	"errors"
	"flight-analytics-service/internal/api/dto"
	"flight-analytics-service/internal/services"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"
)

// MaxUploadBytes bounds the size of an airports file upload.
const MaxUploadBytes = 32 << 20

var allowedImportExt = map[string]struct{}{".dat": {}, ".csv": {}, ".txt": {}}

type AirportHandler struct {
	Importer *services.AirportImporter
}

// Import accepts a multipart upload in the "file" field and runs the airport importer over it.
func (h *AirportHandler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if _, ok := allowedImportExt[ext]; !ok {
		writeError(w, r, http.StatusBadRequest, "invalid file type, only .dat, .csv and .txt files are accepted")
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "could not read uploaded file")
		return
	}
	if len(bytes.TrimSpace(content)) == 0 {
		writeError(w, r, http.StatusBadRequest, "file is empty")
		return
	}

	report, err := h.Importer.Import(r.Context(), bytes.NewReader(content), header.Filename)
	if err != nil {
		if errors.Is(err, services.ErrInvalidEncoding) {
			writeError(w, r, http.StatusBadRequest, "file encoding error, please ensure the file is UTF-8 encoded")
			return
		}
		writeServiceError(w, r, "import airports", err)
		return
	}

	log.Printf("run_id=%s import complete: inserted=%d", report.RunID, report.RecordsInserted)
	writeJSON(w, r, http.StatusOK, dto.NewImportResponse(report))
}
