package models

// CartItem is one selected menu item in a user's cart. Ownership is by
// email only; every cart query is scoped to it.
type CartItem struct {
	Email  string  `bson:"email" json:"email" validate:"required,email"`
	MenuID string  `bson:"menuId,omitempty" json:"menuId,omitempty"`
	Name   string  `bson:"name" json:"name"`
	Image  string  `bson:"image,omitempty" json:"image,omitempty"`
	Price  float64 `bson:"price" json:"price" validate:"required,gt=0"`
	Status string  `bson:"status,omitempty" json:"status,omitempty"`
}
