package controller

import (
	"context"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReviewController exposes the read-only reviews collection.
type ReviewController struct {
	reviews *mongo.Collection
}

func NewReviewController(reviews *mongo.Collection) *ReviewController {
	return &ReviewController{reviews: reviews}
}

// GetReviews handles GET /reviews.
func (c *ReviewController) GetReviews(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := c.reviews.Find(ctx, bson.M{})
	if err != nil {
		writeServerError(w, "Error occurred while listing reviews", err)
		return
	}

	allReviews := []bson.M{}
	if err := cursor.All(ctx, &allReviews); err != nil {
		writeServerError(w, "Error occurred while listing reviews", err)
		return
	}

	writeJSON(w, http.StatusOK, allReviews)
}
