package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is created on first sign-in. Email is the identity key that ties
// token claims, ownership checks, and stored documents together. Role is
// "user" unless an admin promotes the account.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name       *string            `bson:"name,omitempty" json:"name"`
	Email      *string            `bson:"email" json:"email" validate:"required,email"`
	Photo      *string            `bson:"photo,omitempty" json:"photo,omitempty"`
	Role       string             `bson:"role,omitempty" json:"role,omitempty"`
	Created_at time.Time          `bson:"created_at" json:"created_at"`
}
