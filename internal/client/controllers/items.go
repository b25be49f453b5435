package controllers

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/pencilkeeper/internal/client/models"
	"github.com/dmitrijs2005/pencilkeeper/internal/client/services"
	"github.com/dmitrijs2005/pencilkeeper/internal/logging"
)

// ItemsController holds the paginated catalog listing, the search text and
// the item currently opened in detail.
//
// CurrentPage is the last page whose items were merged into the list, so a
// failed page load leaves it where it was.
type ItemsController struct {
	observable

	catalog services.CatalogService

	items       []models.Item
	currentItem *models.ItemDetail
	currentPage int
	totalPages  int
	searchText  string
}

func NewItemsController(catalog services.CatalogService, log logging.Logger) *ItemsController {
	c := &ItemsController{
		catalog:     catalog,
		currentPage: 1,
		totalPages:  1,
	}
	c.init(log, "items")
	return c
}

func (c *ItemsController) Items() []models.Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.items)
}

func (c *ItemsController) CurrentItem() *models.ItemDetail {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.currentItem == nil {
		return nil
	}
	d := *c.currentItem
	return &d
}

func (c *ItemsController) CurrentPage() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentPage
}

func (c *ItemsController) TotalPages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalPages
}

func (c *ItemsController) HasMorePages() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentPage < c.totalPages
}

func (c *ItemsController) SearchText() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.searchText
}

func (c *ItemsController) SetSearchText(s string) {
	c.mu.Lock()
	c.searchText = s
	c.mu.Unlock()
	c.notify()
}

// FetchItems loads the current page. With refresh it goes back to page 1 and
// replaces the list, otherwise the page is appended. A call made while
// another fetch is in flight does nothing.
func (c *ItemsController) FetchItems(ctx context.Context, refresh bool) {
	c.mu.Lock()
	if refresh {
		c.currentPage = 1
	}
	if c.loading {
		c.mu.Unlock()
		return
	}
	c.loading = true
	c.errMsg = ""
	page, search := c.currentPage, c.searchText
	c.mu.Unlock()
	c.notify()

	c.loadPage(ctx, page, search, refresh)
}

// LoadNextPage appends the page after CurrentPage. It does nothing on the
// last page or while a fetch is in flight.
func (c *ItemsController) LoadNextPage(ctx context.Context) {
	c.mu.Lock()
	if c.loading || c.currentPage >= c.totalPages {
		c.mu.Unlock()
		return
	}
	c.loading = true
	c.errMsg = ""
	page, search := c.currentPage+1, c.searchText
	c.mu.Unlock()
	c.notify()

	c.loadPage(ctx, page, search, false)
}

// Search restarts the listing from page 1 with the current search text.
// Previously loaded items are dropped before the request is made.
func (c *ItemsController) Search(ctx context.Context) {
	c.mu.Lock()
	c.currentPage = 1
	c.items = nil
	c.mu.Unlock()
	c.notify()

	c.FetchItems(ctx, true)
}

func (c *ItemsController) loadPage(ctx context.Context, page int, search string, replace bool) {
	resp, err := c.catalog.ListItems(ctx, page, search)
	c.finish(ctx, err, func() {
		if replace {
			c.items = slices.Clone(resp.Items)
		} else {
			c.items = append(c.items, resp.Items...)
		}
		c.currentPage = page
		c.totalPages = resp.Pagination.TotalPages
	})
}

func (c *ItemsController) FetchItem(ctx context.Context, id int) {
	c.begin()
	detail, err := c.catalog.GetItem(ctx, id)
	c.finish(ctx, err, func() {
		c.currentItem = detail
	})
}

// OwnItem marks the item as owned and refreshes CurrentItem and the
// matching list entry from the server's answer.
func (c *ItemsController) OwnItem(ctx context.Context, id int) {
	c.toggle(ctx, id, c.catalog.OwnItem)
}

func (c *ItemsController) UnownItem(ctx context.Context, id int) {
	c.toggle(ctx, id, c.catalog.UnownItem)
}

// toggle leaves the loading flag alone.
func (c *ItemsController) toggle(ctx context.Context, id int, call func(context.Context, int) (*models.ItemDetail, error)) {
	c.mu.Lock()
	c.errMsg = ""
	c.mu.Unlock()
	c.notify()

	detail, err := call(ctx, id)
	c.settle(ctx, err, func() {
		c.currentItem = detail
		if i := slices.IndexFunc(c.items, func(it models.Item) bool { return it.ID == id }); i >= 0 {
			c.items[i] = detail.ListEntry()
		}
	})
}
