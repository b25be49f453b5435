package cli

import (
	"context"
	"fmt"
	"strings"
)

// List loads the first page of the catalog for the current search text.
func (a *App) List(ctx context.Context) error {
	a.items.FetchItems(ctx, true)
	if err := failure(a.items); err != nil {
		return err
	}
	a.printItems()
	return nil
}

// Next appends the following catalog page.
func (a *App) Next(ctx context.Context) error {
	if !a.items.HasMorePages() {
		fmt.Fprintln(a.out, "No more pages")
		return nil
	}
	a.items.LoadNextPage(ctx)
	if err := failure(a.items); err != nil {
		return err
	}
	a.printItems()
	return nil
}

// Search restarts the listing with text; an empty text clears the filter.
func (a *App) Search(ctx context.Context, text string) error {
	a.items.SetSearchText(strings.TrimSpace(text))
	a.items.Search(ctx)
	if err := failure(a.items); err != nil {
		return err
	}
	a.printItems()
	return nil
}

func (a *App) Show(ctx context.Context, id int) error {
	a.items.FetchItem(ctx, id)
	if err := failure(a.items); err != nil {
		return err
	}
	printItemDetail(a.out, a.items.CurrentItem())
	return nil
}

func (a *App) Own(ctx context.Context, id int) error {
	a.items.OwnItem(ctx, id)
	if err := failure(a.items); err != nil {
		return err
	}
	printItemDetail(a.out, a.items.CurrentItem())
	return nil
}

func (a *App) Unown(ctx context.Context, id int) error {
	a.items.UnownItem(ctx, id)
	if err := failure(a.items); err != nil {
		return err
	}
	printItemDetail(a.out, a.items.CurrentItem())
	return nil
}

func (a *App) Makers(ctx context.Context) error {
	a.makers.FetchMakers(ctx)
	if err := failure(a.makers); err != nil {
		return err
	}
	printMakers(a.out, a.makers.Makers())
	return nil
}

func (a *App) printItems() {
	printItems(a.out, a.items.Items())
	fmt.Fprintf(a.out, "page %d of %d", a.items.CurrentPage(), a.items.TotalPages())
	if s := a.items.SearchText(); s != "" {
		fmt.Fprintf(a.out, ", search %q", s)
	}
	fmt.Fprintln(a.out)
}
