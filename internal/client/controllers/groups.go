package controllers

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/pencilkeeper/internal/client/models"
	"github.com/dmitrijs2005/pencilkeeper/internal/client/services"
	"github.com/dmitrijs2005/pencilkeeper/internal/logging"
)

// GroupsController holds the group list and the group opened in detail.
// Details are not cached: every FetchGroupDetail goes to the server.
type GroupsController struct {
	observable

	groups services.GroupService

	list     []models.ItemGroup
	selected *models.ItemGroup
}

func NewGroupsController(groups services.GroupService, log logging.Logger) *GroupsController {
	c := &GroupsController{groups: groups}
	c.init(log, "groups")
	return c
}

func (c *GroupsController) Groups() []models.ItemGroup {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.list)
}

func (c *GroupsController) SelectedGroup() *models.ItemGroup {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected == nil {
		return nil
	}
	g := *c.selected
	return &g
}

func (c *GroupsController) FetchGroups(ctx context.Context) {
	c.begin()
	groups, err := c.groups.ListGroups(ctx)
	c.finish(ctx, err, func() { c.list = groups })
}

func (c *GroupsController) FetchGroupDetail(ctx context.Context, id int) {
	c.begin()
	group, err := c.groups.GetGroup(ctx, id)
	c.finish(ctx, err, func() { c.selected = group })
}
