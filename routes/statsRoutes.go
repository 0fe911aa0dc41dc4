package routes

import (
	"net/http"

	controller "github.com/its-asif/foodie-server-side/controllers"
	middleware "github.com/its-asif/foodie-server-side/middlewares"

	"github.com/gorilla/mux"
)

func StatsRoutes(router *mux.Router, stats *controller.StatsController, auth *middleware.AuthMiddleware) {
	router.Handle("/admin-stats",
		auth.Authentication(http.HandlerFunc(stats.GetAdminStats))).
		Methods(http.MethodGet)
}
