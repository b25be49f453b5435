// Package endpoint maps every logical API operation to its HTTP method,
// path and query. It holds no state and performs no I/O.
package endpoint

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const apiPrefix = "/api/v1"

// Route is the concrete request shape of an Endpoint.
// Query is nil for every operation except the item listing.
type Route struct {
	Method string
	Path   string
	Query  url.Values
}

// Endpoint is one of the operation variants declared in this package.
type Endpoint interface {
	Route() Route
	isEndpoint()
}

type (
	Login    struct{}
	Logout   struct{}
	Register struct{}

	// Items lists catalog items; Search is omitted from the query when empty.
	Items struct {
		Page   int
		Search string
	}
	Item  struct{ ID int }
	Own   struct{ ItemID int }
	Unown struct{ ItemID int }

	Collection  struct{}
	UploadProof struct{ OwnershipID int }

	Makers     struct{}
	ItemGroups struct{}
	ItemGroup  struct{ ID int }

	UserProfile struct{ ID int }
)

func (Login) Route() Route    { return Route{Method: http.MethodPost, Path: apiPrefix + "/session"} }
func (Logout) Route() Route   { return Route{Method: http.MethodDelete, Path: apiPrefix + "/session"} }
func (Register) Route() Route { return Route{Method: http.MethodPost, Path: apiPrefix + "/registration"} }

func (e Items) Route() Route {
	q := url.Values{}
	q.Set("page", strconv.Itoa(e.Page))
	if e.Search != "" {
		q.Set("search", e.Search)
	}
	return Route{Method: http.MethodGet, Path: apiPrefix + "/items", Query: q}
}

func (e Item) Route() Route {
	return Route{Method: http.MethodGet, Path: fmt.Sprintf("%s/items/%d", apiPrefix, e.ID)}
}

func (e Own) Route() Route {
	return Route{Method: http.MethodPost, Path: fmt.Sprintf("%s/items/%d/own", apiPrefix, e.ItemID)}
}

func (e Unown) Route() Route {
	return Route{Method: http.MethodDelete, Path: fmt.Sprintf("%s/items/%d/unown", apiPrefix, e.ItemID)}
}

func (Collection) Route() Route {
	return Route{Method: http.MethodGet, Path: apiPrefix + "/collection"}
}

func (e UploadProof) Route() Route {
	return Route{Method: http.MethodPatch, Path: fmt.Sprintf("%s/ownerships/%d", apiPrefix, e.OwnershipID)}
}

func (Makers) Route() Route     { return Route{Method: http.MethodGet, Path: apiPrefix + "/makers"} }
func (ItemGroups) Route() Route { return Route{Method: http.MethodGet, Path: apiPrefix + "/item_groups"} }

func (e ItemGroup) Route() Route {
	return Route{Method: http.MethodGet, Path: fmt.Sprintf("%s/item_groups/%d", apiPrefix, e.ID)}
}

func (e UserProfile) Route() Route {
	return Route{Method: http.MethodGet, Path: fmt.Sprintf("%s/users/%d", apiPrefix, e.ID)}
}

func (Login) isEndpoint()       {}
func (Logout) isEndpoint()      {}
func (Register) isEndpoint()    {}
func (Items) isEndpoint()       {}
func (Item) isEndpoint()        {}
func (Own) isEndpoint()         {}
func (Unown) isEndpoint()       {}
func (Collection) isEndpoint()  {}
func (UploadProof) isEndpoint() {}
func (Makers) isEndpoint()      {}
func (ItemGroups) isEndpoint()  {}
func (ItemGroup) isEndpoint()   {}
func (UserProfile) isEndpoint() {}
