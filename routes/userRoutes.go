package routes

import (
	"net/http"

	controller "github.com/its-asif/foodie-server-side/controllers"
	middleware "github.com/its-asif/foodie-server-side/middlewares"

	"github.com/gorilla/mux"
)

func UserRoutes(router *mux.Router, users *controller.UserController, auth *middleware.AuthMiddleware) {
	router.Handle("/users",
		auth.Authentication(auth.RequireAdmin(http.HandlerFunc(users.GetUsers)))).
		Methods(http.MethodGet)

	router.Handle("/users/admin/{email}",
		auth.Authentication(auth.RequireSelf("email", http.HandlerFunc(users.GetAdminStatus)))).
		Methods(http.MethodGet)

	router.HandleFunc("/users", users.CreateUser).Methods(http.MethodPost)

	router.Handle("/users/admin/{id}",
		auth.Authentication(auth.RequireAdmin(http.HandlerFunc(users.PromoteToAdmin)))).
		Methods(http.MethodPatch)

	router.Handle("/users/{id}",
		auth.Authentication(auth.RequireAdmin(http.HandlerFunc(users.DeleteUser)))).
		Methods(http.MethodDelete)
}
