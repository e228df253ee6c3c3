package services

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/tradeport/app/models"
)

// In-memory stores backing the service tests.

type fakeProgressStore struct {
	mu      sync.Mutex
	records map[string]*models.OnboardingProgress
	upserts int
}

func newFakeProgressStore() *fakeProgressStore {
	return &fakeProgressStore{records: map[string]*models.OnboardingProgress{}}
}

func (f *fakeProgressStore) FindBySeller(_ context.Context, sellerID string) (*models.OnboardingProgress, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.records[sellerID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProgressStore) Upsert(_ context.Context, p *models.OnboardingProgress) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *p
	f.records[p.SellerID] = &cp
	f.upserts++
	return nil
}

type fakeProfileStore struct {
	business  map[string]*models.BusinessDetails
	contact   map[string]*models.ContactDetails
	category  map[string]*models.CategoryBrand
	addresses map[string]*models.AddressDetails
	bank      map[string]*models.BankDetails
	documents map[string]*models.DocumentSet
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{
		business:  map[string]*models.BusinessDetails{},
		contact:   map[string]*models.ContactDetails{},
		category:  map[string]*models.CategoryBrand{},
		addresses: map[string]*models.AddressDetails{},
		bank:      map[string]*models.BankDetails{},
		documents: map[string]*models.DocumentSet{},
	}
}

func (f *fakeProfileStore) FindBusiness(_ context.Context, id string) (*models.BusinessDetails, error) {
	return f.business[id], nil
}
func (f *fakeProfileStore) UpsertBusiness(_ context.Context, d *models.BusinessDetails) error {
	f.business[d.SellerID] = d
	return nil
}
func (f *fakeProfileStore) FindContact(_ context.Context, id string) (*models.ContactDetails, error) {
	return f.contact[id], nil
}
func (f *fakeProfileStore) UpsertContact(_ context.Context, d *models.ContactDetails) error {
	f.contact[d.SellerID] = d
	return nil
}
func (f *fakeProfileStore) FindCategory(_ context.Context, id string) (*models.CategoryBrand, error) {
	return f.category[id], nil
}
func (f *fakeProfileStore) UpsertCategory(_ context.Context, d *models.CategoryBrand) error {
	f.category[d.SellerID] = d
	return nil
}
func (f *fakeProfileStore) FindAddresses(_ context.Context, id string) (*models.AddressDetails, error) {
	return f.addresses[id], nil
}
func (f *fakeProfileStore) UpsertAddresses(_ context.Context, d *models.AddressDetails) error {
	f.addresses[d.SellerID] = d
	return nil
}
func (f *fakeProfileStore) FindBank(_ context.Context, id string) (*models.BankDetails, error) {
	return f.bank[id], nil
}
func (f *fakeProfileStore) UpsertBank(_ context.Context, d *models.BankDetails) error {
	f.bank[d.SellerID] = d
	return nil
}
func (f *fakeProfileStore) FindDocuments(_ context.Context, id string) (*models.DocumentSet, error) {
	return f.documents[id], nil
}
func (f *fakeProfileStore) UpsertDocuments(_ context.Context, d *models.DocumentSet) error {
	f.documents[d.SellerID] = d
	return nil
}

type fakeUserStore struct {
	users    map[string]*models.User
	statuses map[string]string
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*models.User{}, statuses: map[string]string{}}
}

func (f *fakeUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeUserStore) Create(_ context.Context, u *models.User) error {
	u.ID = primitive.NewObjectID()
	f.users[u.ID.Hex()] = u
	return nil
}

func (f *fakeUserStore) UpdateOnboardingStatus(_ context.Context, id, status string) error {
	f.statuses[id] = status
	if u, ok := f.users[id]; ok {
		u.OnboardingStatus = status
	}
	return nil
}

func (f *fakeUserStore) ListSellers(_ context.Context, status string) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		if u.Type != models.UserSeller {
			continue
		}
		if status != "" && u.OnboardingStatus != status {
			continue
		}
		out = append(out, *u)
	}
	return out, nil
}

type fakeOrderStore struct {
	orders map[string]*models.Order
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{orders: map[string]*models.Order{}}
}

func (f *fakeOrderStore) add(o models.Order) string {
	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	f.orders[o.ID.Hex()] = &o
	return o.ID.Hex()
}

func (f *fakeOrderStore) FindByID(_ context.Context, id string) (*models.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderStore) FindBySeller(_ context.Context, sellerID string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		for _, p := range o.Products {
			if p.SellerID == sellerID {
				out = append(out, *o)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeOrderStore) UpdateStatus(_ context.Context, id string, status models.OrderStatus) error {
	o, ok := f.orders[id]
	if !ok {
		return models.ErrNotFound
	}
	o.Status = status
	return nil
}

type fakeCouponStore struct {
	coupons map[string]*models.Coupon
}

func newFakeCouponStore() *fakeCouponStore {
	return &fakeCouponStore{coupons: map[string]*models.Coupon{}}
}

func (f *fakeCouponStore) All(_ context.Context) ([]models.Coupon, error) {
	var out []models.Coupon
	for _, c := range f.coupons {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCouponStore) FindByID(_ context.Context, id string) (*models.Coupon, error) {
	for _, c := range f.coupons {
		if c.ID.Hex() == id {
			return c, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeCouponStore) FindByCode(_ context.Context, code string) (*models.Coupon, error) {
	c, ok := f.coupons[models.NormalizeCode(code)]
	if !ok {
		return nil, models.ErrNotFound
	}
	return c, nil
}

func (f *fakeCouponStore) Create(_ context.Context, c *models.Coupon) error {
	if _, ok := f.coupons[c.CouponCode]; ok {
		return models.ErrDuplicateCode
	}
	c.ID = primitive.NewObjectID()
	f.coupons[c.CouponCode] = c
	return nil
}

func (f *fakeCouponStore) Update(_ context.Context, c *models.Coupon) error {
	f.coupons[c.CouponCode] = c
	return nil
}

func (f *fakeCouponStore) Delete(_ context.Context, id string) error {
	for code, c := range f.coupons {
		if c.ID.Hex() == id {
			delete(f.coupons, code)
			return nil
		}
	}
	return models.ErrNotFound
}
