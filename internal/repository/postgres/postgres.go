package postgres

import (
	"database/sql"

	"selfstorage-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.WarehouseRepository
	repository.BoxRepository
	repository.PromoCodeRepository
	repository.AdCampaignRepository
	repository.ConsentDocumentRepository
	repository.StorageRuleRepository
	repository.DeliveryRepository
	repository.RentalRepository
	repository.EmailLogRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                        db,
		UserRepository:            NewUserRepository(db),
		WarehouseRepository:       NewWarehouseRepository(db),
		BoxRepository:             NewBoxRepository(db),
		PromoCodeRepository:       NewPromoCodeRepository(db),
		AdCampaignRepository:      NewAdCampaignRepository(db),
		ConsentDocumentRepository: NewConsentDocumentRepository(db),
		StorageRuleRepository:     NewStorageRuleRepository(db),
		DeliveryRepository:        NewDeliveryRepository(db),
		RentalRepository:          NewRentalRepository(db),
		EmailLogRepository:        NewEmailLogRepository(db),
	}
}
