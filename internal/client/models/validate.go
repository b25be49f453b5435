package models

import "errors"

// Validator is implemented by envelopes with fields the API always sends.
// A 2xx reply that decodes but fails Validate is treated as malformed.
type Validator interface {
	Validate() error
}

var (
	ErrMissingToken      = errors.New("missing token")
	ErrMissingUser       = errors.New("missing user")
	ErrMissingItems      = errors.New("missing items")
	ErrMissingPagination = errors.New("missing pagination")
	ErrMissingItem       = errors.New("missing item")
	ErrMissingOwnership  = errors.New("missing ownership")
	ErrMissingItemGroups = errors.New("missing item_groups")
	ErrMissingItemGroup  = errors.New("missing item_group")
	ErrMissingMakers     = errors.New("missing makers")
)

func (r AuthResponse) Validate() error {
	if r.Token == "" {
		return ErrMissingToken
	}
	if r.User.ID == 0 {
		return ErrMissingUser
	}
	return nil
}

// Validate relies on current_page being 1-based.
func (r ItemsResponse) Validate() error {
	if r.Items == nil {
		return ErrMissingItems
	}
	if r.Pagination.CurrentPage < 1 {
		return ErrMissingPagination
	}
	return nil
}

func (r ItemResponse) Validate() error {
	if r.Item.ID == 0 {
		return ErrMissingItem
	}
	return nil
}

func (r OwnershipResponse) Validate() error {
	if r.Ownership.ID == 0 {
		return ErrMissingOwnership
	}
	return nil
}

func (r CollectionResponse) Validate() error {
	if r.Items == nil {
		return ErrMissingItems
	}
	if r.ItemGroups == nil {
		return ErrMissingItemGroups
	}
	return nil
}

func (r ItemGroupsResponse) Validate() error {
	if r.ItemGroups == nil {
		return ErrMissingItemGroups
	}
	return nil
}

func (r ItemGroupResponse) Validate() error {
	if r.ItemGroup.ID == 0 {
		return ErrMissingItemGroup
	}
	return nil
}

func (r MakersResponse) Validate() error {
	if r.Makers == nil {
		return ErrMissingMakers
	}
	return nil
}

func (r UserProfileResponse) Validate() error {
	if r.User.ID == 0 {
		return ErrMissingUser
	}
	if r.Items == nil {
		return ErrMissingItems
	}
	return nil
}
