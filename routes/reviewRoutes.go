package routes

import (
	"net/http"

	controller "github.com/its-asif/foodie-server-side/controllers"

	"github.com/gorilla/mux"
)

func ReviewRoutes(router *mux.Router, reviews *controller.ReviewController) {
	router.HandleFunc("/reviews", reviews.GetReviews).Methods(http.MethodGet)
}
