package models

// Ownership links the current user to an item.
type Ownership struct {
	ID        int     `json:"id"`
	ItemID    int     `json:"item_id"`
	HasProof  bool    `json:"has_proof"`
	ProofURL  *string `json:"proof_url"`
	CreatedAt *string `json:"created_at"`
	UpdatedAt *string `json:"updated_at"`
}

type OwnershipResponse struct {
	Ownership Ownership `json:"ownership"`
	Message   *string   `json:"message"`
}
