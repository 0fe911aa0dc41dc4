package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/its-asif/foodie-server-side/models"
)

// MenuController serves the catalog. The collection holds a mixed
// population of records: new ones keyed by generated ObjectID, legacy
// ones keyed by a literal string _id. Every id-based operation tries the
// ObjectID form first and falls back to the literal key.
type MenuController struct {
	menu *mongo.Collection
}

func NewMenuController(menu *mongo.Collection) *MenuController {
	return &MenuController{menu: menu}
}

// GetMenuItems handles GET /menu.
func (c *MenuController) GetMenuItems(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := c.menu.Find(ctx, bson.M{})
	if err != nil {
		writeServerError(w, "Error occurred while listing the menu", err)
		return
	}

	allItems := []bson.M{}
	if err := cursor.All(ctx, &allItems); err != nil {
		writeServerError(w, "Error occurred while listing the menu", err)
		return
	}

	writeJSON(w, http.StatusOK, allItems)
}

// GetMenuItem handles GET /menu/{id} with dual id resolution. A missing
// document passes through as null rather than 404.
func (c *MenuController) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id := mux.Vars(r)["id"]

	var item bson.M
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		findErr := c.menu.FindOne(ctx, bson.M{"_id": oid}).Decode(&item)
		if findErr != nil && !errors.Is(findErr, mongo.ErrNoDocuments) {
			writeServerError(w, "Error occurred while fetching the menu item", findErr)
			return
		}
	}

	if item == nil {
		findErr := c.menu.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
		if findErr != nil && !errors.Is(findErr, mongo.ErrNoDocuments) {
			writeServerError(w, "Error occurred while fetching the menu item", findErr)
			return
		}
	}

	writeJSON(w, http.StatusOK, item)
}

// CreateMenuItem handles POST /menu (admin only).
func (c *MenuController) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var item models.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := validate.Struct(item); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := c.menu.InsertOne(ctx, item)
	if err != nil {
		writeServerError(w, "Menu item was not created", err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// UpdateMenuItem handles PATCH /menu/{id} (admin only). All five fields
// are overwritten. The ObjectID update runs first; if it modifies
// nothing, the literal-key form is tried.
func (c *MenuController) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id := mux.Vars(r)["id"]

	var item models.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := validate.Struct(item); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: item.Name},
		{Key: "category", Value: item.Category},
		{Key: "price", Value: item.Price},
		{Key: "recipe", Value: item.Recipe},
		{Key: "image", Value: item.Image},
	}}}

	var result *mongo.UpdateResult
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		result, err = c.menu.UpdateOne(ctx, bson.M{"_id": oid}, update)
		if err != nil {
			writeServerError(w, "Menu update failed", err)
			return
		}
	}

	if result == nil || result.ModifiedCount == 0 {
		var err error
		result, err = c.menu.UpdateOne(ctx, bson.M{"_id": id}, update)
		if err != nil {
			writeServerError(w, "Menu update failed", err)
			return
		}
	}

	writeJSON(w, http.StatusOK, result)
}

// DeleteMenuItem handles DELETE /menu/{id} (admin only), with the same
// dual resolution as update.
func (c *MenuController) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id := mux.Vars(r)["id"]

	var result *mongo.DeleteResult
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		result, err = c.menu.DeleteOne(ctx, bson.M{"_id": oid})
		if err != nil {
			writeServerError(w, "Menu deletion failed", err)
			return
		}
	}

	if result == nil || result.DeletedCount == 0 {
		var err error
		result, err = c.menu.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			writeServerError(w, "Menu deletion failed", err)
			return
		}
	}

	writeJSON(w, http.StatusOK, result)
}
