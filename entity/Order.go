package entity

// Order is an immutable snapshot of a checked-out cart group. OrderList is
// copied at checkout time; later cart or menu changes never touch it.
type Order struct {
	OrderID        string     `bson:"orderId" json:"orderId"`
	RestaurantID   string     `bson:"restaurantId" json:"restaurantId"`
	RestaurantName string     `bson:"restaurantName" json:"restaurantName"`
	Status         string     `bson:"status" json:"status"`
	OrderList      []CartLine `bson:"orderList" json:"orderList"`
}

// KitchenOrder is the restaurant-side view of an order, joined with the
// owning user's id so the kitchen knows who it belongs to.
type KitchenOrder struct {
	FirebaseID string `bson:"firebaseId" json:"firebaseId"`
	Order      `bson:",inline"`
}
