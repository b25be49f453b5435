package services

import (
	"context"

	"github.com/dmitrijs2005/pencilkeeper/internal/client/client"
	"github.com/dmitrijs2005/pencilkeeper/internal/client/endpoint"
	"github.com/dmitrijs2005/pencilkeeper/internal/client/models"
)

type CollectionService interface {
	GetCollection(ctx context.Context) (*models.CollectionResponse, error)
	// UploadProof attaches a JPEG photo to an ownership.
	UploadProof(ctx context.Context, ownershipID int, image []byte) (*models.Ownership, error)
}

type collectionService struct {
	client client.Client
}

func NewCollectionService(c client.Client) CollectionService {
	return &collectionService{client: c}
}

func (s *collectionService) GetCollection(ctx context.Context) (*models.CollectionResponse, error) {
	var resp models.CollectionResponse
	if err := s.client.Do(ctx, endpoint.Collection{}, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *collectionService) UploadProof(ctx context.Context, ownershipID int, image []byte) (*models.Ownership, error) {
	var resp models.OwnershipResponse
	if err := s.client.Upload(ctx, endpoint.UploadProof{OwnershipID: ownershipID}, image, &resp); err != nil {
		return nil, err
	}
	return &resp.Ownership, nil
}
