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

func (r *MongoStore) FindAdminByEmail(ctx context.Context, email string) (*entity.Admin, bool, error) {
	var a entity.Admin
	err := r.admins.FindOne(ctx, bson.M{"email": email}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, apperr.Store(err)
	}
	return &a, true, nil
}

func (r *MongoStore) CreateAdmin(ctx context.Context, a *entity.Admin) error {
	if _, err := r.admins.InsertOne(ctx, a); err != nil {
		return apperr.Store(err)
	}
	return nil
}

func (r *MongoStore) UpdateAdmin(ctx context.Context, email string, set map[string]any) (*entity.Admin, bool, error) {
	update := bson.M{"$set": bson.M(set)}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	return r.findOneAndUpdateAdmin(ctx, bson.M{"email": email}, update, opts)
}

func (r *MongoStore) DeleteAdminByEmail(ctx context.Context, email string) (bool, error) {
	err := r.admins.FindOneAndDelete(ctx, bson.M{"email": email}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, apperr.Store(err)
	}
	return true, nil
}

func (r *MongoStore) AdminRestaurants(ctx context.Context, email string) ([]entity.Restaurant, bool, error) {
	var a entity.Admin
	err := r.admins.FindOne(ctx, bson.M{"email": email},
		options.FindOne().SetProjection(bson.M{"restaurant": 1})).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, apperr.Store(err)
	}
	return a.Restaurant, true, nil
}

func (r *MongoStore) PushRestaurant(ctx context.Context, email string, rest entity.Restaurant) (*entity.Admin, bool, error) {
	update := bson.M{"$push": bson.M{"restaurant": rest}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	return r.findOneAndUpdateAdmin(ctx, bson.M{"email": email}, update, opts)
}

func (r *MongoStore) PushMenu(ctx context.Context, restaurantID string, m entity.Menu) (*entity.Admin, bool, error) {
	filter := bson.M{"restaurant.restaurantId": restaurantID}
	update := bson.M{"$push": bson.M{"restaurant.$.menu": m}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	return r.findOneAndUpdateAdmin(ctx, filter, update, opts)
}

// ListRestaurants flattens every admin's restaurants for public browsing.
// The menu is left out; it has its own endpoint.
func (r *MongoStore) ListRestaurants(ctx context.Context) ([]entity.Restaurant, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$restaurant"}},
		{{Key: "$project", Value: bson.M{
			"_id":            0,
			"restaurantId":   "$restaurant.restaurantId",
			"restaurantName": "$restaurant.restaurantName",
		}}},
	}
	cur, err := r.admins.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, apperr.Store(err)
	}
	var rests []entity.Restaurant
	if err := cur.All(ctx, &rests); err != nil {
		return nil, apperr.Store(err)
	}
	return rests, nil
}

func (r *MongoStore) RestaurantMenu(ctx context.Context, restaurantID string) (*entity.Restaurant, bool, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$restaurant"}},
		{{Key: "$match", Value: bson.M{"restaurant.restaurantId": restaurantID}}},
		{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$restaurant"}}},
	}
	cur, err := r.admins.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, false, apperr.Store(err)
	}
	var rests []entity.Restaurant
	if err := cur.All(ctx, &rests); err != nil {
		return nil, false, apperr.Store(err)
	}
	if len(rests) == 0 {
		return nil, false, nil
	}
	return &rests[0], true, nil
}

func (r *MongoStore) findOneAndUpdateAdmin(ctx context.Context, filter, update bson.M, opts *options.FindOneAndUpdateOptions) (*entity.Admin, bool, error) {
	var a entity.Admin
	err := r.admins.FindOneAndUpdate(ctx, filter, update, opts).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, apperr.Store(err)
	}
	return &a, true, nil
}
