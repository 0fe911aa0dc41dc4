package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/its-asif/foodie-server-side/models"
)

// PaymentController wraps the provider-side payment intent flow and the
// payment history collection. Persisting a payment and clearing the
// matching cart entries are two independent writes; a failure in between
// leaves stale cart rows (no compensation is attempted).
type PaymentController struct {
	payments *mongo.Collection
	carts    *mongo.Collection
}

func NewPaymentController(payments, carts *mongo.Collection) *PaymentController {
	return &PaymentController{payments: payments, carts: carts}
}

// toMinorUnits converts a major-unit price to the provider's integer
// minor units, truncating toward zero.
func toMinorUnits(price float64) int64 {
	return int64(price * 100)
}

type paymentIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
	Email string  `json:"email" validate:"required,email"`
}

// CreatePaymentIntent handles POST /create-payment-intent. It requests a
// card-only intent from the provider and returns the client secret.
// The requester's cart entries are marked "delivered" here, at
// intent-creation time, matching the behavior this service has always
// had.
func (c *PaymentController) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req paymentIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(toMinorUnits(req.Price)),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		writeServerError(w, "Payment intent creation failed", err)
		return
	}

	update := bson.D{{Key: "$set", Value: bson.D{{Key: "status", Value: "delivered"}}}}
	if _, err := c.carts.UpdateMany(ctx, bson.M{"email": req.Email}, update); err != nil {
		writeServerError(w, "Cart status update failed", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"clientSecret": intent.ClientSecret})
}

// GetPayments handles GET /payments/{email} (authenticated + self).
func (c *PaymentController) GetPayments(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	email := mux.Vars(r)["email"]

	cursor, err := c.payments.Find(ctx, bson.M{"email": email})
	if err != nil {
		writeServerError(w, "Error occurred while listing payments", err)
		return
	}

	allPayments := []bson.M{}
	if err := cursor.All(ctx, &allPayments); err != nil {
		writeServerError(w, "Error occurred while listing payments", err)
		return
	}

	writeJSON(w, http.StatusOK, allPayments)
}

// CreatePayment handles POST /payments (authenticated). The payment
// record is persisted first, then the referenced cart entries are removed
// in one bulk delete.
func (c *PaymentController) CreatePayment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payment models.Payment
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := validate.Struct(payment); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	insertResult, err := c.payments.InsertOne(ctx, payment)
	if err != nil {
		writeServerError(w, "Payment was not recorded", err)
		return
	}

	cartIDs := make([]primitive.ObjectID, 0, len(payment.CartIDs))
	for _, id := range payment.CartIDs {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		cartIDs = append(cartIDs, oid)
	}

	deleteResult, err := c.carts.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": cartIDs}})
	if err != nil {
		// The payment is already persisted; surface the failure instead
		// of pretending the carts were cleared.
		writeServerError(w, "Cart cleanup failed", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"insertedId":   insertResult.InsertedID,
		"deletedCount": deleteResult.DeletedCount,
	})
}
