package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/its-asif/foodie-server-side/models"
)

// CartController manages per-user cart entries. Entries are only ever
// queried by owning email.
type CartController struct {
	carts *mongo.Collection
}

func NewCartController(carts *mongo.Collection) *CartController {
	return &CartController{carts: carts}
}

// GetCartItems handles GET /carts?email=.
func (c *CartController) GetCartItems(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	email := r.URL.Query().Get("email")

	cursor, err := c.carts.Find(ctx, bson.M{"email": email})
	if err != nil {
		writeServerError(w, "Error occurred while listing cart items", err)
		return
	}

	items := []bson.M{}
	if err := cursor.All(ctx, &items); err != nil {
		writeServerError(w, "Error occurred while listing cart items", err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// AddCartItem handles POST /carts.
func (c *CartController) AddCartItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var item models.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := validate.Struct(item); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := c.carts.InsertOne(ctx, item)
	if err != nil {
		writeServerError(w, "Cart item was not added", err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// DeleteCartItem handles DELETE /carts/{id}.
func (c *CartController) DeleteCartItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid cart item id")
		return
	}

	result, err := c.carts.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		writeServerError(w, "Cart item deletion failed", err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
