package entity

type Restaurant struct {
	RestaurantID   string `bson:"restaurantId" json:"restaurantId"`
	RestaurantName string `bson:"restaurantName" json:"restaurantName"`
	Menu           []Menu `bson:"menu" json:"menu"`
}
