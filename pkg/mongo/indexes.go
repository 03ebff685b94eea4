package mongo

import (
	"log"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/merabazaar/ecommerce-api/pkg/global"
)

type IndexConfig struct {
	CollectionName string
	IndexModel     mongo.IndexModel
}

// requiredIndexes carries the uniqueness the handlers rely on: one account
// per email per principal kind, one cart per user, unique coupon codes and
// product/order identifiers (the identifier generators retry on duplicates).
var requiredIndexes = []IndexConfig{
	{
		CollectionName: "users",
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_user_email_unique"),
		},
	},
	{
		CollectionName: "users",
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_user_id_unique"),
		},
	},
	{
		CollectionName: "sellers",
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_seller_email_unique"),
		},
	},
	{
		CollectionName: "sellers",
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "sellerId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_seller_id_unique"),
		},
	},
	{
		CollectionName: "admins",
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_admin_email_unique"),
		},
	},
	{
		CollectionName: "products",
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "productId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_product_id_unique"),
		},
	},
	{
		CollectionName: "products",
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "sellerId", Value: 1}},
			Options: options.Index().SetName("idx_product_seller"),
		},
	},
	{
		CollectionName: "carts",
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_cart_user_unique"),
		},
	},
	{
		CollectionName: "orders",
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "orderId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_order_id_unique"),
		},
	},
	{
		CollectionName: "orders",
		IndexModel: mongo.IndexModel{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "createdAt", Value: -1},
			},
			Options: options.Index().SetName("idx_user_orders"),
		},
	},
	{
		CollectionName: "coupons",
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "code", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_coupon_code_unique"),
		},
	},
}

func EnsureIndexes() error {
	log.Println("Starting index creation...")

	for _, idxConfig := range requiredIndexes {
		collection := GetCollection(idxConfig.CollectionName)
		ctx, cancel := global.GetDefaultTimer()
		defer cancel()

		indexName, err := collection.Indexes().CreateOne(ctx, idxConfig.IndexModel)
		if err != nil {
			log.Printf("Error creating index on collection %s: %v",
				idxConfig.CollectionName, err)
			return err
		}

		log.Printf("✓ Created index '%s' on collection '%s'", indexName, idxConfig.CollectionName)
	}

	log.Println("All indexes created successfully!")
	return nil
}

func EnsureIndexesOnStartup() {
	if err := EnsureIndexes(); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}
}
