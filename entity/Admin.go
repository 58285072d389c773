package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Admin struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	FirebaseID string             `bson:"firebaseId" json:"firebaseId"`
	Email      string             `bson:"email" json:"email"`
	Name       string             `bson:"name" json:"name"`

	Restaurant []Restaurant `bson:"restaurant" json:"restaurant"`
}
