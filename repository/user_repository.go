package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/syafiqfadli/food-ordering-app-server/entity"
	"github.com/syafiqfadli/food-ordering-app-server/pkg/apperr"
)

func (r *MongoStore) ListUsers(ctx context.Context) ([]entity.User, error) {
	cur, err := r.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperr.Store(err)
	}
	var users []entity.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, apperr.Store(err)
	}
	return users, nil
}

func (r *MongoStore) FindUserByFirebaseID(ctx context.Context, firebaseID string) (*entity.User, bool, error) {
	var u entity.User
	err := r.users.FindOne(ctx, bson.M{"firebaseId": firebaseID}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, apperr.Store(err)
	}
	return &u, true, nil
}

func (r *MongoStore) CreateUser(ctx context.Context, u *entity.User) error {
	if _, err := r.users.InsertOne(ctx, u); err != nil {
		return apperr.Store(err)
	}
	return nil
}

func (r *MongoStore) DeleteUserByEmail(ctx context.Context, email string) (bool, error) {
	err := r.users.FindOneAndDelete(ctx, bson.M{"email": email}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, apperr.Store(err)
	}
	return true, nil
}

func (r *MongoStore) UserCart(ctx context.Context, firebaseID string) ([]entity.CartGroup, bool, error) {
	var u entity.User
	err := r.users.FindOne(ctx, bson.M{"firebaseId": firebaseID},
		options.FindOne().SetProjection(bson.M{"cart": 1})).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, apperr.Store(err)
	}
	return u.Cart, true, nil
}

func (r *MongoStore) UserOrders(ctx context.Context, firebaseID string) ([]entity.Order, bool, error) {
	var u entity.User
	err := r.users.FindOne(ctx, bson.M{"firebaseId": firebaseID},
		options.FindOne().SetProjection(bson.M{"order": 1})).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, apperr.Store(err)
	}
	return u.Order, true, nil
}
