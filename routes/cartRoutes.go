package routes

import (
	"net/http"

	controller "github.com/its-asif/foodie-server-side/controllers"

	"github.com/gorilla/mux"
)

func CartRoutes(router *mux.Router, carts *controller.CartController) {
	router.HandleFunc("/carts", carts.GetCartItems).Methods(http.MethodGet)
	router.HandleFunc("/carts", carts.AddCartItem).Methods(http.MethodPost)
	router.HandleFunc("/carts/{id}", carts.DeleteCartItem).Methods(http.MethodDelete)
}
