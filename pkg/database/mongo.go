// Package database owns the MongoDB connection and the collection registry.
//
// Every collection the platform touches is declared here once; repositories
// ask for a handle via database.C(database.ColOrders) instead of spelling
// collection names inline.
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/tradeport/config"
)

var (
	Client *mongo.Client
	DB     *mongo.Database
)

// Collection names. Declared once so a typo is a compile error, not a
// silently empty query.
const (
	ColUsers           = "users"
	ColProfileProgress = "profile_progress"
	ColBusinessDetails = "business_details"
	ColContactDetails  = "contact_details"
	ColCategoryBrands  = "category_brands"
	ColAddresses       = "addresses"
	ColBankDetails     = "bank_details"
	ColDocuments       = "documents"
	ColOrders          = "orders"
	ColCoupons         = "coupons"
	ColFailedJobs      = "failed_jobs"
	ColLogs            = "logs"
)

// Connect dials MongoDB and verifies the connection with a ping.
// Returns an error instead of calling log.Fatal so the caller can
// shut down gracefully.
func Connect() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(config.MongoURI()).
		SetMaxPoolSize(50).
		SetMinPoolSize(5).
		SetMaxConnIdleTime(2 * time.Minute)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return fmt.Errorf("database: connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("database: ping: %w", err)
	}

	Client = client
	DB = client.Database(config.MongoDB())
	return nil
}

// C returns a handle to the named collection.
func C(name string) *mongo.Collection {
	return DB.Collection(name)
}

// Disconnect closes the client. Call during graceful shutdown.
func Disconnect(ctx context.Context) error {
	if Client == nil {
		return nil
	}
	return Client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes the platform relies on. Safe to run on
// every boot; Mongo treats an existing identical index as a no-op.
func EnsureIndexes(ctx context.Context) error {
	specs := map[string][]mongo.IndexModel{
		ColUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		ColProfileProgress: {
			{Keys: bson.D{{Key: "sellerId", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		ColBusinessDetails: {
			{Keys: bson.D{{Key: "sellerId", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		ColContactDetails: {
			{Keys: bson.D{{Key: "sellerId", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		ColCategoryBrands: {
			{Keys: bson.D{{Key: "sellerId", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		ColAddresses: {
			{Keys: bson.D{{Key: "sellerId", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		ColBankDetails: {
			{Keys: bson.D{{Key: "sellerId", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		ColDocuments: {
			{Keys: bson.D{{Key: "sellerId", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		ColOrders: {
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "products.sellerId", Value: 1}}},
		},
		ColCoupons: {
			{Keys: bson.D{{Key: "couponCode", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		ColLogs: {
			{Keys: bson.D{{Key: "time", Value: 1}}, Options: options.Index().SetExpireAfterSeconds(30 * 24 * 3600)},
		},
	}

	for col, models := range specs {
		if _, err := DB.Collection(col).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("database: ensure indexes on %s: %w", col, err)
		}
	}
	return nil
}
