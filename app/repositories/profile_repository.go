package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/tradeport/app/models"
	"github.com/shashiranjanraj/tradeport/pkg/metrics"
)

// ProfileRepository handles the per-step profile collections. Each step has
// its own collection holding one document per seller.
type ProfileRepository struct {
	business  *mongo.Collection
	contact   *mongo.Collection
	category  *mongo.Collection
	addresses *mongo.Collection
	bank      *mongo.Collection
	documents *mongo.Collection
}

// ProfileCollections bundles the six step collections for construction.
type ProfileCollections struct {
	Business  *mongo.Collection
	Contact   *mongo.Collection
	Category  *mongo.Collection
	Addresses *mongo.Collection
	Bank      *mongo.Collection
	Documents *mongo.Collection
}

func NewProfileRepository(c ProfileCollections) *ProfileRepository {
	return &ProfileRepository{
		business:  c.Business,
		contact:   c.Contact,
		category:  c.Category,
		addresses: c.Addresses,
		bank:      c.Bank,
		documents: c.Documents,
	}
}

// findBySeller decodes the seller's document from col into a fresh T.
// Returns (nil, nil) when no document exists.
func findBySeller[T any](ctx context.Context, col *mongo.Collection, sellerID string) (*T, error) {
	defer metrics.ObserveMongoOp("find", time.Now())

	var doc T
	err := col.FindOne(ctx, bson.M{"sellerId": sellerID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// upsertBySeller replaces the seller's document in col, inserting if absent.
func upsertBySeller(ctx context.Context, col *mongo.Collection, sellerID string, doc interface{}) error {
	defer metrics.ObserveMongoOp("update", time.Now())

	_, err := col.ReplaceOne(ctx,
		bson.M{"sellerId": sellerID},
		doc,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (r *ProfileRepository) FindBusiness(ctx context.Context, sellerID string) (*models.BusinessDetails, error) {
	return findBySeller[models.BusinessDetails](ctx, r.business, sellerID)
}

func (r *ProfileRepository) UpsertBusiness(ctx context.Context, d *models.BusinessDetails) error {
	return upsertBySeller(ctx, r.business, d.SellerID, d)
}

func (r *ProfileRepository) FindContact(ctx context.Context, sellerID string) (*models.ContactDetails, error) {
	return findBySeller[models.ContactDetails](ctx, r.contact, sellerID)
}

func (r *ProfileRepository) UpsertContact(ctx context.Context, d *models.ContactDetails) error {
	return upsertBySeller(ctx, r.contact, d.SellerID, d)
}

func (r *ProfileRepository) FindCategory(ctx context.Context, sellerID string) (*models.CategoryBrand, error) {
	return findBySeller[models.CategoryBrand](ctx, r.category, sellerID)
}

func (r *ProfileRepository) UpsertCategory(ctx context.Context, d *models.CategoryBrand) error {
	return upsertBySeller(ctx, r.category, d.SellerID, d)
}

func (r *ProfileRepository) FindAddresses(ctx context.Context, sellerID string) (*models.AddressDetails, error) {
	return findBySeller[models.AddressDetails](ctx, r.addresses, sellerID)
}

func (r *ProfileRepository) UpsertAddresses(ctx context.Context, d *models.AddressDetails) error {
	return upsertBySeller(ctx, r.addresses, d.SellerID, d)
}

func (r *ProfileRepository) FindBank(ctx context.Context, sellerID string) (*models.BankDetails, error) {
	return findBySeller[models.BankDetails](ctx, r.bank, sellerID)
}

func (r *ProfileRepository) UpsertBank(ctx context.Context, d *models.BankDetails) error {
	return upsertBySeller(ctx, r.bank, d.SellerID, d)
}

func (r *ProfileRepository) FindDocuments(ctx context.Context, sellerID string) (*models.DocumentSet, error) {
	return findBySeller[models.DocumentSet](ctx, r.documents, sellerID)
}

func (r *ProfileRepository) UpsertDocuments(ctx context.Context, d *models.DocumentSet) error {
	return upsertBySeller(ctx, r.documents, d.SellerID, d)
}
