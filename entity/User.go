package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	FirebaseID string             `bson:"firebaseId" json:"firebaseId"`
	Email      string             `bson:"email" json:"email"`
	Name       string             `bson:"name" json:"name"`

	Cart    []CartGroup `bson:"cart" json:"cart"`
	Order   []Order     `bson:"order" json:"order"`
	History []Order     `bson:"history" json:"history"`
}
