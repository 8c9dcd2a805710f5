package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"selfstorage-backend/internal/domain"
	"selfstorage-backend/internal/repository"
	"selfstorage-backend/internal/storage"
)

type documentService struct {
	docRepo repository.ConsentDocumentRepository
	store   *storage.DocumentStorage
}

func NewDocumentService(docRepo repository.ConsentDocumentRepository, store *storage.DocumentStorage) DocumentService {
	return &documentService{docRepo: docRepo, store: store}
}

func (s *documentService) ActiveConsentDocument(ctx context.Context) (*domain.ConsentDocument, io.ReadCloser, error) {
	doc, err := s.docRepo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, ErrConsentDocumentMissing
		}
		return nil, nil, err
	}

	reader, err := s.store.ReadFile(doc.FileKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open consent document %q: %w", doc.FileKey, err)
	}
	return doc, reader, nil
}
