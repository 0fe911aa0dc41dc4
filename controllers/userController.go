package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/its-asif/foodie-server-side/models"
)

var validate = validator.New()

type UserController struct {
	users *mongo.Collection
}

func NewUserController(users *mongo.Collection) *UserController {
	return &UserController{users: users}
}

// GetUsers handles GET /users (admin only).
func (c *UserController) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := c.users.Find(ctx, bson.M{})
	if err != nil {
		writeServerError(w, "Error occurred while listing users", err)
		return
	}

	allUsers := []bson.M{}
	if err := cursor.All(ctx, &allUsers); err != nil {
		writeServerError(w, "Error occurred while listing users", err)
		return
	}

	writeJSON(w, http.StatusOK, allUsers)
}

// GetAdminStatus handles GET /users/admin/{email} (authenticated + self).
// A missing user record reads as not-admin rather than an error.
func (c *UserController) GetAdminStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	email := mux.Vars(r)["email"]

	var user models.User
	err := c.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		writeServerError(w, "Error occurred while looking up user", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"isAdmin": user.Role == "admin"})
}

// CreateUser handles POST /users. Creation is idempotent: an existing
// email is acknowledged with a null insertedId instead of a duplicate
// document.
func (c *UserController) CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := validate.Struct(user); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var existing models.User
	err := c.users.FindOne(ctx, bson.M{"email": user.Email}).Decode(&existing)
	if err == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"message":    "User already exists",
			"insertedId": nil,
		})
		return
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		writeServerError(w, "Error occurred while checking email", err)
		return
	}

	// Role is only ever granted through the admin promotion flow; a
	// role supplied in the signup body is discarded.
	user.Role = ""
	user.Created_at = time.Now()

	result, err := c.users.InsertOne(ctx, user)
	if err != nil {
		writeServerError(w, "User creation failed", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"insertedId": result.InsertedID,
	})
}

// PromoteToAdmin handles PATCH /users/admin/{id} (admin only).
func (c *UserController) PromoteToAdmin(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	update := bson.D{{Key: "$set", Value: bson.D{{Key: "role", Value: "admin"}}}}

	result, err := c.users.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		writeServerError(w, "User promotion failed", err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// DeleteUser handles DELETE /users/{id} (admin only).
func (c *UserController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	result, err := c.users.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		writeServerError(w, "User deletion failed", err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
