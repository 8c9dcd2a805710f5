package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"selfstorage-backend/internal/domain"
	"selfstorage-backend/internal/logger"
	"selfstorage-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeServiceError maps service-layer sentinels onto HTTP statuses.
// Anything unrecognized is a 500 with a generic message.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrWarehouseNotFound),
		errors.Is(err, service.ErrBoxNotFound),
		errors.Is(err, service.ErrRentalNotFound),
		errors.Is(err, service.ErrPromoNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrConsentRequired),
		errors.Is(err, service.ErrConsentDocumentMissing),
		errors.Is(err, service.ErrPickupAddressRequired),
		errors.Is(err, service.ErrEndBeforeStart),
		errors.Is(err, service.ErrPromoExpired),
		errors.Is(err, service.ErrBoxInactive):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrBoxOccupied),
		errors.Is(err, service.ErrRentalNotOpen),
		errors.Is(err, service.ErrEmailTaken):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	default:
		logger.Error("Unhandled service error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
