package handler

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/google/uuid"

	"github.com/gambutlab/tallysheet/internal/models"
	"github.com/gambutlab/tallysheet/internal/service"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

type TallysheetHandler struct {
	svc          *service.TallysheetService
	maxUploadMem int64
}

func NewTallysheetHandler(svc *service.TallysheetService, maxUploadMB int) *TallysheetHandler {
	return &TallysheetHandler{svc: svc, maxUploadMem: int64(maxUploadMB) << 20}
}

// GenerateFullSection renders one survey submission as a downloadable
// tallysheet. Every field and photo slot is optional; only the numeric rule
// table can reject a request.
func (h *TallysheetHandler) GenerateFullSection(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxUploadMem); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	sub := models.NewSubmission()
	for _, name := range models.TextFields {
		if vs, ok := r.Form[name]; ok && len(vs) > 0 {
			sub.Fields[name] = vs[0]
		}
	}
	if r.MultipartForm != nil {
		for _, name := range models.PhotoFields {
			fhs := r.MultipartForm.File[name]
			if len(fhs) == 0 {
				continue
			}
			f, err := fhs[0].Open()
			if err != nil {
				continue
			}
			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				continue
			}
			sub.Photos[name] = data
		}
	}

	if errs := h.svc.Validate(sub); len(errs) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"detail": errs})
		return
	}

	h.respondWithDocument(w, sub, "tallysheet_"+randomHex()+".docx")
}

// GenerateSample renders the fixed example submission so the layout can be
// inspected without submitting real data.
func (h *TallysheetHandler) GenerateSample(w http.ResponseWriter, r *http.Request) {
	h.respondWithDocument(w, h.svc.Sample(), "tallysheet_sample_"+randomHex()+".docx")
}

func (h *TallysheetHandler) respondWithDocument(w http.ResponseWriter, sub *models.Submission, outName string) {
	path, err := h.svc.Generate(sub)
	if err != nil {
		log.Printf("generate tallysheet: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to generate document")
		return
	}
	defer os.Remove(path)

	f, err := os.Open(path)
	if err != nil {
		log.Printf("open generated document: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to read generated document")
		return
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		log.Printf("stat generated document: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to read generated document")
		return
	}

	w.Header().Set("Content-Type", docxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, outName))
	w.Header().Set("Content-Length", strconv.FormatInt(st.Size(), 10))
	io.Copy(w, f)
}

func randomHex() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}
