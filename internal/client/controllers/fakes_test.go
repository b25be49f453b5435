package controllers

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/pencilkeeper/internal/client/models"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// ---- catalog ----

type listCall struct {
	page   int
	search string
}

// fakeCatalog serves pages from a map keyed by search text then page.
// When gate is set, ListItems signals started and blocks until gate closes.
type fakeCatalog struct {
	mu sync.Mutex

	pages      map[string]map[int][]models.Item
	totalPages map[string]int
	listErr    map[int]error

	details map[int]models.ItemDetail
	itemErr error
	makers  []models.Maker

	started chan struct{}
	gate    chan struct{}

	listCalls []listCall
}

func (f *fakeCatalog) ListItems(ctx context.Context, page int, search string) (*models.ItemsResponse, error) {
	f.mu.Lock()
	f.listCalls = append(f.listCalls, listCall{page, search})
	started, gate := f.started, f.gate
	f.mu.Unlock()

	if gate != nil {
		started <- struct{}{}
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.listErr[page]; err != nil {
		return nil, err
	}
	return &models.ItemsResponse{
		Items: f.pages[search][page],
		Pagination: models.Pagination{
			CurrentPage: page,
			TotalPages:  f.totalPages[search],
		},
	}, nil
}

func (f *fakeCatalog) calls() []listCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]listCall(nil), f.listCalls...)
}

func (f *fakeCatalog) detail(id int) (*models.ItemDetail, error) {
	if f.itemErr != nil {
		return nil, f.itemErr
	}
	d, ok := f.details[id]
	if !ok {
		return nil, fmt.Errorf("item %d not found", id)
	}
	return &d, nil
}

func (f *fakeCatalog) GetItem(ctx context.Context, id int) (*models.ItemDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.detail(id)
}

func (f *fakeCatalog) OwnItem(ctx context.Context, id int) (*models.ItemDetail, error) {
	return f.setOwned(id, true)
}

func (f *fakeCatalog) UnownItem(ctx context.Context, id int) (*models.ItemDetail, error) {
	return f.setOwned(id, false)
}

func (f *fakeCatalog) setOwned(id int, owned bool) (*models.ItemDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, err := f.detail(id)
	if err != nil {
		return nil, err
	}
	d.Owned = owned
	if owned {
		d.OwnershipID = intPtr(100 + id)
	} else {
		d.OwnershipID = nil
	}
	f.details[id] = *d
	return d, nil
}

func (f *fakeCatalog) ListMakers(ctx context.Context) ([]models.Maker, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.itemErr != nil {
		return nil, f.itemErr
	}
	return f.makers, nil
}

// ---- auth ----

type fakeAuth struct {
	user      *models.User
	err       error
	logoutErr error
	tokens    interface{ SaveToken(string) error }

	logoutCalls int
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	_ = f.tokens.SaveToken("tok-" + email)
	return f.user, nil
}

func (f *fakeAuth) Register(ctx context.Context, email, password, confirmation string) (*models.User, error) {
	if password != confirmation {
		return nil, errors.New("Password confirmation doesn't match Password")
	}
	return f.Login(ctx, email, password)
}

func (f *fakeAuth) Logout(ctx context.Context) error {
	f.logoutCalls++
	return f.logoutErr
}

// ---- collection ----

type fakeCollection struct {
	resp      *models.CollectionResponse
	getErr    error
	uploadErr error

	getCalls    int
	uploadCalls int
	lastOwnID   int
	lastImage   []byte
}

func (f *fakeCollection) GetCollection(ctx context.Context) (*models.CollectionResponse, error) {
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.resp, nil
}

func (f *fakeCollection) UploadProof(ctx context.Context, ownershipID int, image []byte) (*models.Ownership, error) {
	f.uploadCalls++
	f.lastOwnID = ownershipID
	f.lastImage = image
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	return &models.Ownership{ID: ownershipID, HasProof: true}, nil
}

// ---- groups / users ----

type fakeGroups struct {
	groups []models.ItemGroup
	detail map[int]models.ItemGroup
	err    error

	detailCalls int
}

func (f *fakeGroups) ListGroups(ctx context.Context) ([]models.ItemGroup, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.groups, nil
}

func (f *fakeGroups) GetGroup(ctx context.Context, id int) (*models.ItemGroup, error) {
	f.detailCalls++
	if f.err != nil {
		return nil, f.err
	}
	g := f.detail[id]
	return &g, nil
}

type fakeUsers struct {
	resp *models.UserProfileResponse
	err  error
}

func (f *fakeUsers) GetProfile(ctx context.Context, id int) (*models.UserProfileResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}
