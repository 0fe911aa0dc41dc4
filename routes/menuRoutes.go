package routes

import (
	"net/http"

	controller "github.com/its-asif/foodie-server-side/controllers"
	middleware "github.com/its-asif/foodie-server-side/middlewares"

	"github.com/gorilla/mux"
)

func MenuRoutes(router *mux.Router, menu *controller.MenuController, auth *middleware.AuthMiddleware) {
	router.HandleFunc("/menu", menu.GetMenuItems).Methods(http.MethodGet)
	router.HandleFunc("/menu/{id}", menu.GetMenuItem).Methods(http.MethodGet)

	router.Handle("/menu",
		auth.Authentication(auth.RequireAdmin(http.HandlerFunc(menu.CreateMenuItem)))).
		Methods(http.MethodPost)

	router.Handle("/menu/{id}",
		auth.Authentication(auth.RequireAdmin(http.HandlerFunc(menu.UpdateMenuItem)))).
		Methods(http.MethodPatch)

	router.Handle("/menu/{id}",
		auth.Authentication(auth.RequireAdmin(http.HandlerFunc(menu.DeleteMenuItem)))).
		Methods(http.MethodDelete)
}
