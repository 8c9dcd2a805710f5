package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"selfstorage-backend/internal/security"
	"selfstorage-backend/internal/service"
)

// Handlers bundles the service dependencies the router wires up.
type Handlers struct {
	Auth      service.AuthService
	Warehouse service.WarehouseService
	Promo     service.PromoService
	Rental    service.RentalService
	Document  service.DocumentService
	Tokens    security.TokenManager
}

// NewRouter builds the API router. Catalog endpoints are public; rental
// endpoints require a bearer token.
func NewRouter(h Handlers) *mux.Router {
	authHandler := NewAuthHandler(h.Auth)
	warehouseHandler := NewWarehouseHandler(h.Warehouse)
	promoHandler := NewPromoHandler(h.Promo)
	rentalHandler := NewRentalHandler(h.Rental)
	documentHandler := NewDocumentHandler(h.Document)
	authMiddleware := NewAuthMiddleware(h.Tokens)

	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public
	api.HandleFunc("/auth/signup", authHandler.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/warehouses", warehouseHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/warehouses/{id:[0-9]+}/boxes", warehouseHandler.ListBoxes).Methods(http.MethodGet)
	api.HandleFunc("/rules", warehouseHandler.ListRules).Methods(http.MethodGet)
	api.HandleFunc("/promos/{code}", promoHandler.Check).Methods(http.MethodGet)
	api.HandleFunc("/documents/consent", documentHandler.Consent).Methods(http.MethodGet)

	// Authenticated
	private := api.NewRoute().Subrouter()
	private.Use(authMiddleware.Require)
	private.HandleFunc("/rentals", rentalHandler.Create).Methods(http.MethodPost)
	private.HandleFunc("/rentals", rentalHandler.List).Methods(http.MethodGet)
	private.HandleFunc("/rentals/{id:[0-9]+}", rentalHandler.Get).Methods(http.MethodGet)
	private.HandleFunc("/rentals/{id:[0-9]+}/close", rentalHandler.Close).Methods(http.MethodPost)

	return r
}
