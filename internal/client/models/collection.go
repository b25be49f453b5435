package models

// CollectionItem is an item joined with the current user's ownership of it.
type CollectionItem struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Maker       *string `json:"maker"`
	ModelNumber *string `json:"model_number"`
	ImageURL    *string `json:"image_url"`
	OwnershipID *int    `json:"ownership_id"`
	HasProof    bool    `json:"has_proof"`
	ProofURL    *string `json:"proof_url"`
	OwnedAt     *string `json:"owned_at"`
}

type CollectionResponse struct {
	Items      []CollectionItem `json:"items"`
	ItemGroups []ItemGroup      `json:"item_groups"`
	TotalCount int              `json:"total_count"`
}
