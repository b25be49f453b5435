package controllers

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/pencilkeeper/internal/client/models"
	"github.com/dmitrijs2005/pencilkeeper/internal/client/services"
	"github.com/dmitrijs2005/pencilkeeper/internal/logging"
)

// CollectionController holds the signed-in user's owned items.
type CollectionController struct {
	observable

	collection services.CollectionService

	items      []models.CollectionItem
	itemGroups []models.ItemGroup
	totalCount int
}

func NewCollectionController(collection services.CollectionService, log logging.Logger) *CollectionController {
	c := &CollectionController{collection: collection}
	c.init(log, "collection")
	return c
}

func (c *CollectionController) Items() []models.CollectionItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.items)
}

func (c *CollectionController) ItemGroups() []models.ItemGroup {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.itemGroups)
}

func (c *CollectionController) TotalCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalCount
}

// FindOwnership returns the collection entry holding ownershipID.
func (c *CollectionController) FindOwnership(ownershipID int) (models.CollectionItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, it := range c.items {
		if it.OwnershipID != nil && *it.OwnershipID == ownershipID {
			return it, true
		}
	}
	return models.CollectionItem{}, false
}

// FetchCollection replaces the whole collection.
func (c *CollectionController) FetchCollection(ctx context.Context) {
	c.begin()
	resp, err := c.collection.GetCollection(ctx)
	c.finish(ctx, err, func() { c.apply(resp) })
}

// UploadProof attaches image to the ownership and then reloads the whole
// collection. It reports whether the upload itself succeeded; a failed
// reload only sets ErrorMessage.
func (c *CollectionController) UploadProof(ctx context.Context, ownershipID int, image []byte) bool {
	c.begin()
	if _, err := c.collection.UploadProof(ctx, ownershipID, image); err != nil {
		c.finish(ctx, err, nil)
		return false
	}

	resp, err := c.collection.GetCollection(ctx)
	c.finish(ctx, err, func() { c.apply(resp) })
	return true
}

func (c *CollectionController) apply(resp *models.CollectionResponse) {
	c.items = resp.Items
	c.itemGroups = resp.ItemGroups
	c.totalCount = resp.TotalCount
}
