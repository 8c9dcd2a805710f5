package http

import (
	"fmt"
	"io"
	"net/http"

	"selfstorage-backend/internal/service"
)

// DocumentHandler streams the active personal-data consent document.
type DocumentHandler struct {
	documents service.DocumentService
}

func NewDocumentHandler(documents service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documents: documents}
}

func (h *DocumentHandler) Consent(w http.ResponseWriter, r *http.Request) {
	doc, reader, err := h.documents.ActiveConsentDocument(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", doc.Title+".pdf"))
	io.Copy(w, reader)
}
