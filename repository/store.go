package repository

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoStore talks to the users and admins collections. Every cart/order
// mutation is a single conditional update so the store's per-document write
// ordering is the only concurrency mechanism.
type MongoStore struct {
	users  *mongo.Collection
	admins *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		users:  db.Collection("users"),
		admins: db.Collection("admins"),
	}
}
