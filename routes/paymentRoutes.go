package routes

import (
	"net/http"

	controller "github.com/its-asif/foodie-server-side/controllers"
	middleware "github.com/its-asif/foodie-server-side/middlewares"

	"github.com/gorilla/mux"
)

func PaymentRoutes(router *mux.Router, payments *controller.PaymentController, auth *middleware.AuthMiddleware) {
	router.HandleFunc("/create-payment-intent", payments.CreatePaymentIntent).Methods(http.MethodPost)

	router.Handle("/payments/{email}",
		auth.Authentication(auth.RequireSelf("email", http.HandlerFunc(payments.GetPayments)))).
		Methods(http.MethodGet)

	router.Handle("/payments",
		auth.Authentication(http.HandlerFunc(payments.CreatePayment))).
		Methods(http.MethodPost)
}
