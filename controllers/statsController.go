package controller

import (
	"context"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// StatsController aggregates the admin dashboard numbers. Counts use the
// store's fast cardinality estimate; revenue is a $sum over payment
// prices.
type StatsController struct {
	users    *mongo.Collection
	menu     *mongo.Collection
	payments *mongo.Collection
}

func NewStatsController(users, menu, payments *mongo.Collection) *StatsController {
	return &StatsController{users: users, menu: menu, payments: payments}
}

// GetAdminStats handles GET /admin-stats (authenticated).
func (c *StatsController) GetAdminStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userCount, err := c.users.EstimatedDocumentCount(ctx)
	if err != nil {
		writeServerError(w, "Error occurred while counting users", err)
		return
	}

	menuCount, err := c.menu.EstimatedDocumentCount(ctx)
	if err != nil {
		writeServerError(w, "Error occurred while counting menu items", err)
		return
	}

	orderCount, err := c.payments.EstimatedDocumentCount(ctx)
	if err != nil {
		writeServerError(w, "Error occurred while counting orders", err)
		return
	}

	groupStage := bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: nil},
		{Key: "totalRevenue", Value: bson.D{{Key: "$sum", Value: "$price"}}},
	}}}

	cursor, err := c.payments.Aggregate(ctx, mongo.Pipeline{groupStage})
	if err != nil {
		writeServerError(w, "Error occurred while computing revenue", err)
		return
	}

	var result []bson.M
	if err := cursor.All(ctx, &result); err != nil {
		writeServerError(w, "Error occurred while computing revenue", err)
		return
	}

	var revenue interface{} = 0
	if len(result) > 0 {
		revenue = result[0]["totalRevenue"]
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"users":     userCount,
		"menuItems": menuCount,
		"orders":    orderCount,
		"revenue":   revenue,
	})
}
