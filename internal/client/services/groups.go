package services

import (
	"context"

	"github.com/dmitrijs2005/pencilkeeper/internal/client/client"
	"github.com/dmitrijs2005/pencilkeeper/internal/client/endpoint"
	"github.com/dmitrijs2005/pencilkeeper/internal/client/models"
)

type GroupService interface {
	ListGroups(ctx context.Context) ([]models.ItemGroup, error)
	GetGroup(ctx context.Context, id int) (*models.ItemGroup, error)
}

type groupService struct {
	client client.Client
}

func NewGroupService(c client.Client) GroupService {
	return &groupService{client: c}
}

func (s *groupService) ListGroups(ctx context.Context) ([]models.ItemGroup, error) {
	var resp models.ItemGroupsResponse
	if err := s.client.Do(ctx, endpoint.ItemGroups{}, nil, &resp); err != nil {
		return nil, err
	}
	return resp.ItemGroups, nil
}

func (s *groupService) GetGroup(ctx context.Context, id int) (*models.ItemGroup, error) {
	var resp models.ItemGroupResponse
	if err := s.client.Do(ctx, endpoint.ItemGroup{ID: id}, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.ItemGroup, nil
}
