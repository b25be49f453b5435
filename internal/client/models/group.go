package models

// ItemGroup is a curated set of items. Two groups with the same ID are the
// same group regardless of how much of the payload each one carries.
type ItemGroup struct {
	ID         int     `json:"id"`
	Title      string  `json:"title"`
	Link       *string `json:"link"`
	ItemsCount *int    `json:"items_count"`
	Items      []Item  `json:"items"`
}

func (g ItemGroup) Key() int { return g.ID }

func (g ItemGroup) SameAs(other ItemGroup) bool { return g.ID == other.ID }

type ItemGroupsResponse struct {
	ItemGroups []ItemGroup `json:"item_groups"`
}

type ItemGroupResponse struct {
	ItemGroup ItemGroup `json:"item_group"`
}
