package service

import "errors"

// Validation errors: the web layer catches these and re-presents the form.
var (
	ErrConsentRequired         = errors.New("personal data consent is required")
	ErrConsentDocumentMissing  = errors.New("no active consent document to attach")
	ErrPickupAddressRequired   = errors.New("pickup address is required for home pickup")
	ErrEndBeforeStart          = errors.New("end date cannot precede start date")
	ErrRentalNotOpen           = errors.New("rental is not active or overdue")
)

// Lookup errors: rendered as inline messages, not fatal faults.
var (
	ErrWarehouseNotFound = errors.New("warehouse not found")
	ErrBoxNotFound       = errors.New("box not found")
	ErrBoxInactive       = errors.New("box is not available for rent")
	ErrRentalNotFound    = errors.New("rental not found")
	ErrPromoNotFound     = errors.New("promo code not found")
	ErrPromoExpired      = errors.New("promo code is not valid now")
)

// Auth errors.
var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
