package routes

import (
	"net/http"

	controller "github.com/its-asif/foodie-server-side/controllers"

	"github.com/gorilla/mux"
)

func AuthRoutes(router *mux.Router, auth *controller.AuthController) {
	router.HandleFunc("/jwt", auth.IssueToken).Methods(http.MethodPost)
}
