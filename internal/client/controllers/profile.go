package controllers

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/pencilkeeper/internal/client/models"
	"github.com/dmitrijs2005/pencilkeeper/internal/client/services"
	"github.com/dmitrijs2005/pencilkeeper/internal/logging"
)

// UserProfileController shows another user's public collection. It starts
// in the loading state since there is nothing to show before the first
// fetch.
type UserProfileController struct {
	observable

	users services.UserService

	user       *models.PublicUser
	items      []models.UserProfileItem
	totalCount int
}

func NewUserProfileController(users services.UserService, log logging.Logger) *UserProfileController {
	c := &UserProfileController{users: users}
	c.init(log, "profile")
	c.loading = true
	return c
}

func (c *UserProfileController) User() *models.PublicUser {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		return nil
	}
	u := *c.user
	return &u
}

func (c *UserProfileController) Items() []models.UserProfileItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.items)
}

func (c *UserProfileController) TotalCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalCount
}

func (c *UserProfileController) FetchUserProfile(ctx context.Context, id int) {
	c.begin()
	resp, err := c.users.GetProfile(ctx, id)
	c.finish(ctx, err, func() {
		user := resp.User
		c.user = &user
		c.items = resp.Items
		c.totalCount = resp.TotalCount
	})
}
