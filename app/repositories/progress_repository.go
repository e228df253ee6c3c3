// Package repositories implements MongoDB persistence for the app models.
// Every repository takes its collection at construction so tests can point
// one at a scratch database.
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

// ProgressRepository handles the profile_progress collection.
type ProgressRepository struct {
	col *mongo.Collection
}

func NewProgressRepository(col *mongo.Collection) *ProgressRepository {
	return &ProgressRepository{col: col}
}

// FindBySeller returns the seller's progress record, or nil when none exists.
// Absence is not an error; the tracker creates records lazily.
func (r *ProgressRepository) FindBySeller(ctx context.Context, sellerID string) (*models.OnboardingProgress, error) {
	defer metrics.ObserveMongoOp("find", time.Now())

	var p models.OnboardingProgress
	err := r.col.FindOne(ctx, bson.M{"sellerId": sellerID}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Upsert writes the full progress record keyed by sellerId. One write per
// tracker operation; the read-modify-write is serialized per seller by the
// caller, not by this repository.
func (r *ProgressRepository) Upsert(ctx context.Context, p *models.OnboardingProgress) error {
	defer metrics.ObserveMongoOp("update", time.Now())

	_, err := r.col.ReplaceOne(ctx,
		bson.M{"sellerId": p.SellerID},
		p,
		options.Replace().SetUpsert(true),
	)
	return err
}
