package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/syafiqfadli/food-ordering-app-server/entity"
	"github.com/syafiqfadli/food-ordering-app-server/pkg/apperr"
)

// CartGroupSnapshot reads one cart group through an unwind projection. The
// caller gets a copy; the commit below re-checks the group still exists.
func (r *MongoStore) CartGroupSnapshot(ctx context.Context, firebaseID, cartID string) (*entity.CartGroup, bool, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"firebaseId": firebaseID}}},
		{{Key: "$unwind", Value: "$cart"}},
		{{Key: "$match", Value: bson.M{"cart.cartId": cartID}}},
		{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$cart"}}},
	}
	cur, err := r.users.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, false, apperr.Store(err)
	}
	var groups []entity.CartGroup
	if err := cur.All(ctx, &groups); err != nil {
		return nil, false, apperr.Store(err)
	}
	if len(groups) == 0 {
		return nil, false, nil
	}
	return &groups[0], true, nil
}

// CommitCheckout appends the order and pulls the cart group in ONE update.
// The filter pins the group, so a concurrently removed group means no match
// and nothing is applied — never an order without the matching cart removal.
func (r *MongoStore) CommitCheckout(ctx context.Context, firebaseID, cartID string, order entity.Order) (*entity.User, bool, error) {
	filter := bson.M{
		"firebaseId":  firebaseID,
		"cart.cartId": cartID,
	}
	update := bson.M{
		"$push": bson.M{"order": order},
		"$pull": bson.M{"cart": bson.M{"cartId": cartID}},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	return r.findOneAndUpdateUser(ctx, filter, update, opts)
}

// AdvanceOrderStatus moves an order between statuses with the old status in
// the filter, so a stale transition matches nothing.
func (r *MongoStore) AdvanceOrderStatus(ctx context.Context, orderID, from, to string) (bool, error) {
	filter := bson.M{
		"order": bson.M{"$elemMatch": bson.M{"orderId": orderID, "status": from}},
	}
	update := bson.M{"$set": bson.M{"order.$.status": to}}
	res, err := r.users.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, apperr.Store(err)
	}
	return res.ModifiedCount > 0, nil
}

// KitchenOrders lists every user's orders for one restaurant.
func (r *MongoStore) KitchenOrders(ctx context.Context, restaurantID string) ([]entity.KitchenOrder, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$order"}},
		{{Key: "$match", Value: bson.M{"order.restaurantId": restaurantID}}},
		{{Key: "$project", Value: bson.M{
			"_id":            0,
			"firebaseId":     1,
			"orderId":        "$order.orderId",
			"restaurantId":   "$order.restaurantId",
			"restaurantName": "$order.restaurantName",
			"status":         "$order.status",
			"orderList":      "$order.orderList",
		}}},
	}
	cur, err := r.users.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, apperr.Store(err)
	}
	var rows []entity.KitchenOrder
	if err := cur.All(ctx, &rows); err != nil {
		return nil, apperr.Store(err)
	}
	return rows, nil
}
