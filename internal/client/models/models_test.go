package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestItemDetail_ListEntry_PrefersThumbnail(t *testing.T) {
	d := ItemDetail{
		ID:           3,
		Title:        "Kuru Toga",
		Maker:        &Maker{ID: 1, Title: strPtr("Uni")},
		ModelNumber:  strPtr("M5-450"),
		ImageURL:     strPtr("https://img/full.jpg"),
		ThumbnailURL: strPtr("https://img/thumb.jpg"),
		Owned:        true,
	}

	got := d.ListEntry()

	assert.Equal(t, 3, got.ID)
	assert.Equal(t, "Kuru Toga", got.Title)
	require.NotNil(t, got.Maker)
	assert.Equal(t, "Uni", *got.Maker)
	assert.Equal(t, "M5-450", *got.ModelNumber)
	assert.Equal(t, "https://img/thumb.jpg", *got.ImageURL)
	assert.True(t, got.Owned)
}

func TestItemDetail_ListEntry_FallsBackToImage(t *testing.T) {
	d := ItemDetail{ID: 1, ImageURL: strPtr("https://img/full.jpg"), ThumbnailURL: strPtr("")}
	assert.Equal(t, "https://img/full.jpg", *d.ListEntry().ImageURL)

	d = ItemDetail{ID: 1}
	got := d.ListEntry()
	assert.Nil(t, got.ImageURL)
	assert.Nil(t, got.Maker)
}

func TestPagination_HasMorePages(t *testing.T) {
	assert.True(t, Pagination{CurrentPage: 1, TotalPages: 2}.HasMorePages())
	assert.False(t, Pagination{CurrentPage: 2, TotalPages: 2}.HasMorePages())
	assert.False(t, Pagination{CurrentPage: 1, TotalPages: 0}.HasMorePages())
}

func TestItemGroup_IdentityByID(t *testing.T) {
	a := ItemGroup{ID: 7, Title: "Drafting"}
	b := ItemGroup{ID: 7, Title: "Drafting pencils", Items: []Item{{ID: 1}}}
	c := ItemGroup{ID: 8, Title: "Drafting"}

	assert.True(t, a.SameAs(b))
	assert.False(t, a.SameAs(c))
	assert.Equal(t, a.Key(), b.Key())
}

func TestItemDetail_DecodesWireNames(t *testing.T) {
	body := `{
		"id": 9, "title": "Graph 1000", "model_number": "PG1005",
		"maker": {"id": 2, "title": "Pentel", "items_count": 40},
		"tip_retractable": "no", "eraser_attached": "yes",
		"jetpens_url": "https://jp", "thumbnail_url": "https://t",
		"owned": true, "has_proof": false, "ownership_id": 44,
		"owners_count": 12,
		"proofs": [{"id": 1, "user_id": 5, "user_email": "a@b.c", "proof_url": "https://p"}]
	}`

	var d ItemDetail
	require.NoError(t, json.Unmarshal([]byte(body), &d))

	assert.Equal(t, "PG1005", *d.ModelNumber)
	assert.Equal(t, 40, *d.Maker.ItemsCount)
	assert.Equal(t, 44, *d.OwnershipID)
	assert.Equal(t, 12, *d.OwnersCount)
	require.Len(t, d.Proofs, 1)
	assert.Equal(t, 5, d.Proofs[0].UserID)
	assert.Nil(t, d.BlickURL)
}

func TestCollectionResponse_DecodesWireNames(t *testing.T) {
	body := `{
		"items": [{"id": 1, "title": "P205", "ownership_id": 7, "has_proof": true,
		           "proof_url": "https://p", "owned_at": "2024-01-02T00:00:00Z"}],
		"item_groups": [{"id": 3, "title": "Classics", "items_count": 5}],
		"total_count": 1
	}`

	var r CollectionResponse
	require.NoError(t, json.Unmarshal([]byte(body), &r))

	require.Len(t, r.Items, 1)
	assert.Equal(t, 7, *r.Items[0].OwnershipID)
	assert.True(t, r.Items[0].HasProof)
	assert.Equal(t, "2024-01-02T00:00:00Z", *r.Items[0].OwnedAt)
	require.Len(t, r.ItemGroups, 1)
	assert.Equal(t, 5, *r.ItemGroups[0].ItemsCount)
	assert.Equal(t, 1, r.TotalCount)
}

func TestEnvelopes_Validate(t *testing.T) {
	tests := []struct {
		name string
		v    Validator
		want error
	}{
		{"auth ok", AuthResponse{Token: "t", User: User{ID: 1}}, nil},
		{"auth no token", AuthResponse{User: User{ID: 1}}, ErrMissingToken},
		{"auth no user", AuthResponse{Token: "t"}, ErrMissingUser},
		{"items ok", ItemsResponse{Items: []Item{}, Pagination: Pagination{CurrentPage: 1}}, nil},
		{"items nil", ItemsResponse{Pagination: Pagination{CurrentPage: 1}}, ErrMissingItems},
		{"items no pagination", ItemsResponse{Items: []Item{}}, ErrMissingPagination},
		{"item", ItemResponse{}, ErrMissingItem},
		{"ownership", OwnershipResponse{}, ErrMissingOwnership},
		{"collection ok", CollectionResponse{Items: []CollectionItem{}, ItemGroups: []ItemGroup{}}, nil},
		{"collection no groups", CollectionResponse{Items: []CollectionItem{}}, ErrMissingItemGroups},
		{"groups", ItemGroupsResponse{}, ErrMissingItemGroups},
		{"group", ItemGroupResponse{}, ErrMissingItemGroup},
		{"makers", MakersResponse{}, ErrMissingMakers},
		{"profile no user", UserProfileResponse{Items: []UserProfileItem{}}, ErrMissingUser},
		{"profile no items", UserProfileResponse{User: PublicUser{ID: 5}}, ErrMissingItems},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.v.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestItemsResponse_EmptyObjectFailsValidation(t *testing.T) {
	var r ItemsResponse
	require.NoError(t, json.Unmarshal([]byte(`{}`), &r))
	assert.ErrorIs(t, r.Validate(), ErrMissingItems)
}
