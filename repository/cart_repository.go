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

// Each method here is one match-and-mutate call. The bool result reports
// whether the filter matched; no match is normal control flow for the
// add-to-cart tiers, not an error.

// IncrementCartLine bumps the quantity of an existing line, looked up by
// menuId anywhere in this user's cart.
func (r *MongoStore) IncrementCartLine(ctx context.Context, firebaseID, menuID string, qty int) (*entity.User, bool, error) {
	filter := bson.M{
		"firebaseId":           firebaseID,
		"cart.menuList.menuId": menuID,
	}
	update := bson.M{"$inc": bson.M{"cart.$[].menuList.$[line].quantity": qty}}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetArrayFilters(options.ArrayFilters{Filters: []interface{}{
			bson.M{"line.menuId": menuID},
		}})
	return r.findOneAndUpdateUser(ctx, filter, update, opts)
}

// PushCartLine appends a new line to the group already holding this restaurant.
func (r *MongoStore) PushCartLine(ctx context.Context, firebaseID, restaurantID string, line entity.CartLine) (*entity.User, bool, error) {
	filter := bson.M{
		"firebaseId":        firebaseID,
		"cart.restaurantId": restaurantID,
	}
	update := bson.M{"$push": bson.M{"cart.$.menuList": line}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	return r.findOneAndUpdateUser(ctx, filter, update, opts)
}

// PushCartGroup appends a whole new restaurant group to the user's cart.
func (r *MongoStore) PushCartGroup(ctx context.Context, firebaseID string, group entity.CartGroup) (*entity.User, bool, error) {
	filter := bson.M{"firebaseId": firebaseID}
	update := bson.M{"$push": bson.M{"cart": group}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	return r.findOneAndUpdateUser(ctx, filter, update, opts)
}

// PullCartLine removes one line from one group; both must exist for a match.
func (r *MongoStore) PullCartLine(ctx context.Context, firebaseID, cartID, menuID string) (*entity.User, bool, error) {
	filter := bson.M{
		"firebaseId": firebaseID,
		"cart": bson.M{"$elemMatch": bson.M{
			"cartId":          cartID,
			"menuList.menuId": menuID,
		}},
	}
	update := bson.M{"$pull": bson.M{"cart.$.menuList": bson.M{"menuId": menuID}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	return r.findOneAndUpdateUser(ctx, filter, update, opts)
}

// PullCartGroup removes the whole group.
func (r *MongoStore) PullCartGroup(ctx context.Context, firebaseID, cartID string) (*entity.User, bool, error) {
	filter := bson.M{
		"firebaseId":  firebaseID,
		"cart.cartId": cartID,
	}
	update := bson.M{"$pull": bson.M{"cart": bson.M{"cartId": cartID}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	return r.findOneAndUpdateUser(ctx, filter, update, opts)
}

func (r *MongoStore) findOneAndUpdateUser(ctx context.Context, filter, update bson.M, opts *options.FindOneAndUpdateOptions) (*entity.User, bool, error) {
	var u entity.User
	err := r.users.FindOneAndUpdate(ctx, filter, update, opts).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, apperr.Store(err)
	}
	return &u, true, nil
}
