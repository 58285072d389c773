package entity

type Menu struct {
	MenuID      string `bson:"menuId" json:"menuId"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Price       int64  `bson:"price" json:"price"`
}
