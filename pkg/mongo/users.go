package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/merabazaar/ecommerce-api/pkg/models"
)

func FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := GetCollection("users").FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByUserID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := GetCollection("users").FindOne(ctx, bson.D{{Key: "userId", Value: userID}}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func CreateUser(ctx context.Context, user *models.User) error {
	_, err := GetCollection("users").InsertOne(ctx, user)
	return err
}

// AllUserEmails fetches every registered user email, projected down to the
// one field the notification broadcasts need.
func AllUserEmails(ctx context.Context) ([]string, error) {
	opts := options.Find().SetProjection(bson.D{{Key: "email", Value: 1}})
	cursor, err := GetCollection("users").Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []struct {
		Email string `bson:"email"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	emails := make([]string, 0, len(docs))
	for _, doc := range docs {
		if doc.Email != "" {
			emails = append(emails, doc.Email)
		}
	}
	return emails, nil
}
