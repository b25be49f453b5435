package models

// PublicUser is what other users can see of an account.
type PublicUser struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}

// UserProfileItem is an entry of another user's collection.
type UserProfileItem struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Maker       *string `json:"maker"`
	ModelNumber *string `json:"model_number"`
	ImageURL    *string `json:"image_url"`
	HasProof    bool    `json:"has_proof"`
	ProofURL    *string `json:"proof_url"`
	OwnedAt     *string `json:"owned_at"`
}

type UserProfileResponse struct {
	User       PublicUser        `json:"user"`
	Items      []UserProfileItem `json:"items"`
	TotalCount int               `json:"total_count"`
}
