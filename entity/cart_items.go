package entity

// CartLine is one menu item with quantity inside a cart group. The same
// struct is snapshotted into Order.OrderList at checkout.
type CartLine struct {
	MenuID   string `bson:"menuId" json:"menuId"`
	MenuName string `bson:"menuName" json:"menuName"`
	Price    int64  `bson:"price" json:"price"`
	Quantity int    `bson:"quantity" json:"quantity"`
}
