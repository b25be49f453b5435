package cli

import (
	"context"
)

func (a *App) Groups(ctx context.Context) error {
	a.groups.FetchGroups(ctx)
	if err := failure(a.groups); err != nil {
		return err
	}
	printGroups(a.out, a.groups.Groups())
	return nil
}

func (a *App) Group(ctx context.Context, id int) error {
	a.groups.FetchGroupDetail(ctx, id)
	if err := failure(a.groups); err != nil {
		return err
	}
	printGroupDetail(a.out, a.groups.SelectedGroup())
	return nil
}

// User shows another user's public collection, e.g. an owner listed on an
// item's proofs.
func (a *App) User(ctx context.Context, id int) error {
	a.profile.FetchUserProfile(ctx, id)
	if err := failure(a.profile); err != nil {
		return err
	}
	printProfile(a.out, a.profile.User(), a.profile.Items(), a.profile.TotalCount())
	return nil
}
