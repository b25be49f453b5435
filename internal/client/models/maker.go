package models

type Maker struct {
	ID         int     `json:"id"`
	Title      *string `json:"title"`
	Origin     *string `json:"origin"`
	Homepage   *string `json:"homepage"`
	ItemsCount *int    `json:"items_count"`
}

type MakersResponse struct {
	Makers []Maker `json:"makers"`
}
