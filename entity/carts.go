package entity

// CartGroup bundles the cart lines of one restaurant inside a user's cart.
// มีได้อย่างมากกลุ่มเดียวต่อร้านต่อ user
type CartGroup struct {
	CartID         string     `bson:"cartId" json:"cartId"`
	RestaurantID   string     `bson:"restaurantId" json:"restaurantId"`
	RestaurantName string     `bson:"restaurantName" json:"restaurantName"`
	MenuList       []CartLine `bson:"menuList" json:"menuList"`
}
