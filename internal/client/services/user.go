package services

import (
	"context"

	"github.com/dmitrijs2005/pencilkeeper/internal/client/client"
	"github.com/dmitrijs2005/pencilkeeper/internal/client/endpoint"
	"github.com/dmitrijs2005/pencilkeeper/internal/client/models"
)

// UserService reads other users' public profiles.
type UserService interface {
	GetProfile(ctx context.Context, id int) (*models.UserProfileResponse, error)
}

type userService struct {
	client client.Client
}

func NewUserService(c client.Client) UserService {
	return &userService{client: c}
}

func (s *userService) GetProfile(ctx context.Context, id int) (*models.UserProfileResponse, error) {
	var resp models.UserProfileResponse
	if err := s.client.Do(ctx, endpoint.UserProfile{ID: id}, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
