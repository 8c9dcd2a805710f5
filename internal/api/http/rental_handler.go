package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"selfstorage-backend/internal/domain"
	"selfstorage-backend/internal/service"
)

// RentalHandler serves the authenticated rental endpoints.
type RentalHandler struct {
	rentals service.RentalService
}

func NewRentalHandler(rentals service.RentalService) *RentalHandler {
	return &RentalHandler{rentals: rentals}
}

type createRentalRequest struct {
	BoxID               int32  `json:"box_id"`
	StartDate           string `json:"start_date,omitempty"` // YYYY-MM-DD, today if empty
	EndDate             string `json:"end_date,omitempty"`   // YYYY-MM-DD, one month if empty
	PickupFromHome      bool   `json:"pickup_from_home"`
	PickupAddress       string `json:"pickup_address"`
	ContactName         string `json:"contact_name"`
	ContactPhone        string `json:"contact_phone"`
	PersonalDataConsent bool   `json:"personal_data_consent"`
	PromoCode           string `json:"promo_code,omitempty"`
	AdCampaignCode      string `json:"ad_campaign_code,omitempty"`
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req createRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.BoxID == 0 {
		writeError(w, http.StatusBadRequest, "box_id is required")
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid start_date")
		return
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid end_date")
		return
	}

	rental, err := h.rentals.CreateRental(r.Context(), service.CreateRentalInput{
		UserID:              userID,
		BoxID:               req.BoxID,
		StartDate:           startDate,
		EndDate:             endDate,
		PickupFromHome:      req.PickupFromHome,
		PickupAddress:       req.PickupAddress,
		ContactName:         req.ContactName,
		ContactPhone:        req.ContactPhone,
		PersonalDataConsent: req.PersonalDataConsent,
		PromoCode:           req.PromoCode,
		AdCampaignCode:      req.AdCampaignCode,
	}, time.Now())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	rentals, err := h.rentals.ListUserRentals(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if rentals == nil {
		rentals = []domain.Rental{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"rentals": rentals})
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rental id")
		return
	}

	rental, err := h.rentals.GetRental(r.Context(), userID, int32(id))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) Close(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rental id")
		return
	}

	rental, err := h.rentals.CloseRental(r.Context(), userID, int32(id))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

// parseDate parses a YYYY-MM-DD string; empty input yields a zero time.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", s)
}
