package services

import (
	"context"

	"github.com/dmitrijs2005/pencilkeeper/internal/client/client"
	"github.com/dmitrijs2005/pencilkeeper/internal/client/endpoint"
	"github.com/dmitrijs2005/pencilkeeper/internal/client/models"
)

// CatalogService reads the item catalog and toggles ownership.
// OwnItem and UnownItem return the refreshed item detail.
type CatalogService interface {
	ListItems(ctx context.Context, page int, search string) (*models.ItemsResponse, error)
	GetItem(ctx context.Context, id int) (*models.ItemDetail, error)
	OwnItem(ctx context.Context, id int) (*models.ItemDetail, error)
	UnownItem(ctx context.Context, id int) (*models.ItemDetail, error)
	ListMakers(ctx context.Context) ([]models.Maker, error)
}

type catalogService struct {
	client client.Client
}

func NewCatalogService(c client.Client) CatalogService {
	return &catalogService{client: c}
}

func (s *catalogService) ListItems(ctx context.Context, page int, search string) (*models.ItemsResponse, error) {
	var resp models.ItemsResponse
	if err := s.client.Do(ctx, endpoint.Items{Page: page, Search: search}, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *catalogService) GetItem(ctx context.Context, id int) (*models.ItemDetail, error) {
	return s.item(ctx, endpoint.Item{ID: id})
}

func (s *catalogService) OwnItem(ctx context.Context, id int) (*models.ItemDetail, error) {
	return s.item(ctx, endpoint.Own{ItemID: id})
}

func (s *catalogService) UnownItem(ctx context.Context, id int) (*models.ItemDetail, error) {
	return s.item(ctx, endpoint.Unown{ItemID: id})
}

func (s *catalogService) item(ctx context.Context, ep endpoint.Endpoint) (*models.ItemDetail, error) {
	var resp models.ItemResponse
	if err := s.client.Do(ctx, ep, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Item, nil
}

func (s *catalogService) ListMakers(ctx context.Context) ([]models.Maker, error) {
	var resp models.MakersResponse
	if err := s.client.Do(ctx, endpoint.Makers{}, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Makers, nil
}
