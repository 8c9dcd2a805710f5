package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"selfstorage-backend/internal/domain"
	"selfstorage-backend/internal/service"
)

// WarehouseHandler serves the public catalog: warehouses, boxes and the
// storage rules page.
type WarehouseHandler struct {
	warehouses service.WarehouseService
}

func NewWarehouseHandler(warehouses service.WarehouseService) *WarehouseHandler {
	return &WarehouseHandler{warehouses: warehouses}
}

func (h *WarehouseHandler) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.warehouses.ListWarehouses(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"warehouses": summaries})
}

func (h *WarehouseHandler) ListBoxes(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid warehouse id")
		return
	}

	warehouse, offers, err := h.warehouses.ListBoxes(r.Context(), int32(id))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"warehouse": warehouse,
		"boxes":     offers,
	})
}

func (h *WarehouseHandler) ListRules(w http.ResponseWriter, r *http.Request) {
	allowed, forbidden, err := h.warehouses.ListStorageRules(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if allowed == nil {
		allowed = []domain.StorageRule{}
	}
	if forbidden == nil {
		forbidden = []domain.StorageRule{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"allowed":   allowed,
		"forbidden": forbidden,
	})
}
