package models

// Item is a catalog list entry.
type Item struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Maker       *string `json:"maker"`
	ModelNumber *string `json:"model_number"`
	ImageURL    *string `json:"image_url"`
	Owned       bool    `json:"owned"`
}

// ItemDetail is the full record shown on an item page and returned by
// own/unown.
type ItemDetail struct {
	ID             int     `json:"id"`
	Title          string  `json:"title"`
	Description    *string `json:"description"`
	Maker          *Maker  `json:"maker"`
	ModelNumber    *string `json:"model_number"`
	TipRetractable *string `json:"tip_retractable"`
	EraserAttached *string `json:"eraser_attached"`
	JetpensURL     *string `json:"jetpens_url"`
	BlickURL       *string `json:"blick_url"`
	ImageURL       *string `json:"image_url"`
	ThumbnailURL   *string `json:"thumbnail_url"`
	Owned          bool    `json:"owned"`
	HasProof       bool    `json:"has_proof"`
	OwnershipID    *int    `json:"ownership_id"`
	Proofs         []Proof `json:"proofs"`
	OwnersCount    *int    `json:"owners_count"`
	CreatedAt      *string `json:"created_at"`
	UpdatedAt      *string `json:"updated_at"`
}

// Proof is another owner's ownership-proof photo shown on the item page.
type Proof struct {
	ID        int    `json:"id"`
	UserID    int    `json:"user_id"`
	UserEmail string `json:"user_email"`
	ProofURL  string `json:"proof_url"`
}

// ListEntry projects the detail back into the denormalized list shape.
// The list prefers the thumbnail and falls back to the full image when the
// server has not produced a thumbnail yet.
func (d ItemDetail) ListEntry() Item {
	var maker *string
	if d.Maker != nil {
		maker = d.Maker.Title
	}

	image := d.ThumbnailURL
	if image == nil || *image == "" {
		image = d.ImageURL
	}

	return Item{
		ID:          d.ID,
		Title:       d.Title,
		Maker:       maker,
		ModelNumber: d.ModelNumber,
		ImageURL:    image,
		Owned:       d.Owned,
	}
}

// Pagination is the one-based page cursor of a listing.
type Pagination struct {
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
	TotalCount  int `json:"total_count"`
	PerPage     int `json:"per_page"`
}

func (p Pagination) HasMorePages() bool {
	return p.CurrentPage < p.TotalPages
}

type ItemsResponse struct {
	Items      []Item     `json:"items"`
	Pagination Pagination `json:"pagination"`
}

type ItemResponse struct {
	Item    ItemDetail `json:"item"`
	Message *string    `json:"message"`
}
