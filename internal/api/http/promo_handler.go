package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"selfstorage-backend/internal/service"
)

// PromoHandler serves promo code validation for the rent form.
type PromoHandler struct {
	promos service.PromoService
}

func NewPromoHandler(promos service.PromoService) *PromoHandler {
	return &PromoHandler{promos: promos}
}

func (h *PromoHandler) Check(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	promo, err := h.promos.CheckCode(r.Context(), code, time.Now())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"code":             promo.Code,
		"discount_percent": promo.DiscountPercent,
	})
}
