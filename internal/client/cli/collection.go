package cli

import (
	"context"
	"fmt"
)

func (a *App) Collection(ctx context.Context) error {
	a.collection.FetchCollection(ctx)
	if err := failure(a.collection); err != nil {
		return err
	}
	printCollection(a.out, a.collection.Items(), a.collection.TotalCount())
	return nil
}

// Upload reads a JPEG from a local path, an http(s) URL or s3://bucket/key and attaches it
// as proof to the ownership.
func (a *App) Upload(ctx context.Context, ownershipID int, ref string) error {
	image, err := a.images.Load(ctx, ref)
	if err != nil {
		return fmt.Errorf("load %s: %w", ref, err)
	}

	if !a.collection.UploadProof(ctx, ownershipID, image) {
		return failure(a.collection)
	}

	fmt.Fprintf(a.out, "Proof uploaded (%d bytes)\n", len(image))
	if msg := a.collection.ErrorMessage(); msg != "" {
		fmt.Fprintln(a.out, "Collection could not be refreshed:", msg)
		return nil
	}
	if it, ok := a.collection.FindOwnership(ownershipID); ok {
		fmt.Fprintf(a.out, "%s: proof %s\n", it.Title, yesNo(it.HasProof))
	}
	return nil
}
