package models

import "time"

// Payment is written once per completed checkout and never mutated.
// CartIDs holds the cart documents being purchased; they are deleted in
// bulk right after the payment record is persisted.
type Payment struct {
	Email         string    `bson:"email" json:"email" validate:"required,email"`
	Price         float64   `bson:"price" json:"price" validate:"required,gt=0"`
	TransactionID string    `bson:"transactionId" json:"transactionId"`
	Date          time.Time `bson:"date" json:"date"`
	Status        string    `bson:"status,omitempty" json:"status,omitempty"`
	CartIDs       []string  `bson:"cartIds" json:"cartIds" validate:"required,min=1"`
	MenuItemIDs   []string  `bson:"menuItemIds" json:"menuItemIds"`
}
