package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/tradeport/app/models"
	"github.com/shashiranjanraj/tradeport/pkg/metrics"
)

// CouponRepository handles the coupons collection.
type CouponRepository struct {
	col *mongo.Collection
}

func NewCouponRepository(col *mongo.Collection) *CouponRepository {
	return &CouponRepository{col: col}
}

// All returns every coupon, newest first.
func (r *CouponRepository) All(ctx context.Context) ([]models.Coupon, error) {
	defer metrics.ObserveMongoOp("find", time.Now())

	cur, err := r.col.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var coupons []models.Coupon
	if err := cur.All(ctx, &coupons); err != nil {
		return nil, err
	}
	return coupons, nil
}

// FindByCode looks up a coupon by its canonical code.
// Returns models.ErrNotFound when absent.
func (r *CouponRepository) FindByCode(ctx context.Context, code string) (*models.Coupon, error) {
	defer metrics.ObserveMongoOp("find", time.Now())

	var c models.Coupon
	err := r.col.FindOne(ctx, bson.M{"couponCode": models.NormalizeCode(code)}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// FindByID looks up a coupon by id. Returns models.ErrNotFound when absent.
func (r *CouponRepository) FindByID(ctx context.Context, id string) (*models.Coupon, error) {
	defer metrics.ObserveMongoOp("find", time.Now())

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}

	var c models.Coupon
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a coupon. The unique index on couponCode turns a duplicate
// into models.ErrDuplicateCode.
func (r *CouponRepository) Create(ctx context.Context, c *models.Coupon) error {
	defer metrics.ObserveMongoOp("insert", time.Now())

	res, err := r.col.InsertOne(ctx, c)
	if mongo.IsDuplicateKeyError(err) {
		return models.ErrDuplicateCode
	}
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		c.ID = oid
	}
	return nil
}

// Update replaces the coupon document.
func (r *CouponRepository) Update(ctx context.Context, c *models.Coupon) error {
	defer metrics.ObserveMongoOp("update", time.Now())

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if mongo.IsDuplicateKeyError(err) {
		return models.ErrDuplicateCode
	}
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Delete removes a coupon by id.
func (r *CouponRepository) Delete(ctx context.Context, id string) error {
	defer metrics.ObserveMongoOp("delete", time.Now())

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrNotFound
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

// IncrementUsage bumps usedCount after a successful application.
func (r *CouponRepository) IncrementUsage(ctx context.Context, id primitive.ObjectID) error {
	defer metrics.ObserveMongoOp("update", time.Now())

	_, err := r.col.UpdateByID(ctx, id, bson.M{"$inc": bson.M{"usedCount": 1}})
	return err
}
