package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/stripe/stripe-go/v76"

	"github.com/its-asif/foodie-server-side/config"
	controller "github.com/its-asif/foodie-server-side/controllers"
	"github.com/its-asif/foodie-server-side/database"
	"github.com/its-asif/foodie-server-side/helper"
	middleware "github.com/its-asif/foodie-server-side/middlewares"
	"github.com/its-asif/foodie-server-side/routes"
)

func livenessHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("foodie is running!"))
}

func setupLogger() {
	var handler slog.Handler
	if config.AppEnv() == "production" {
		handler = slog.NewJSONHandler(os.Stdout, nil)
	} else {
		handler = slog.NewTextHandler(os.Stdout, nil)
	}
	slog.SetDefault(slog.New(handler))
}

func main() {
	config.Load()
	setupLogger()

	if err := config.Require(); err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	client, err := database.Connect(config.MongoURI())
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	slog.Info("connected to MongoDB")

	stripe.Key = config.StripeSecretKey()

	cols := database.NewCollections(client, config.DatabaseName())
	tokens := helper.NewTokenService(config.AccessTokenSecret())
	auth := middleware.NewAuthMiddleware(tokens, cols.Users)

	router := mux.NewRouter()
	router.Use(middleware.Recover, middleware.Logger, middleware.Metrics)

	routes.AuthRoutes(router, controller.NewAuthController(tokens))
	routes.UserRoutes(router, controller.NewUserController(cols.Users), auth)
	routes.MenuRoutes(router, controller.NewMenuController(cols.Menu), auth)
	routes.ReviewRoutes(router, controller.NewReviewController(cols.Reviews))
	routes.CartRoutes(router, controller.NewCartController(cols.Carts))
	routes.PaymentRoutes(router, controller.NewPaymentController(cols.Payments, cols.Carts), auth)
	routes.StatsRoutes(router, controller.NewStatsController(cols.Users, cols.Menu, cols.Payments), auth)

	router.Handle("/metrics", middleware.MetricsHandler()).Methods(http.MethodGet)
	router.HandleFunc("/", livenessHandler).Methods(http.MethodGet)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	srv := &http.Server{
		Addr:    ":" + config.Port(),
		Handler: cors(router),
	}

	go func() {
		slog.Info("server running", "port", config.Port())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	slog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}
	if err := database.Disconnect(client); err != nil {
		slog.Error("database disconnect failed", "error", err)
	}
}
