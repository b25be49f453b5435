package controllers

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/pencilkeeper/internal/client/models"
	"github.com/dmitrijs2005/pencilkeeper/internal/client/services"
	"github.com/dmitrijs2005/pencilkeeper/internal/logging"
)

type MakersController struct {
	observable

	catalog services.CatalogService

	makers []models.Maker
}

func NewMakersController(catalog services.CatalogService, log logging.Logger) *MakersController {
	c := &MakersController{catalog: catalog}
	c.init(log, "makers")
	return c
}

func (c *MakersController) Makers() []models.Maker {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.makers)
}

func (c *MakersController) FetchMakers(ctx context.Context) {
	c.begin()
	makers, err := c.catalog.ListMakers(ctx)
	c.finish(ctx, err, func() { c.makers = makers })
}
