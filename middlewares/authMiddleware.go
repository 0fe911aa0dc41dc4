package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/its-asif/foodie-server-side/helper"
	"github.com/its-asif/foodie-server-side/models"
)

// Context keys for the authenticated identity.
type contextKey string

const (
	EmailKey contextKey = "email"
	NameKey  contextKey = "name"
)

// AuthMiddleware carries the token service and the users collection.
// The collection is needed because admin status is re-read from storage
// on every gated call rather than trusted from the token.
type AuthMiddleware struct {
	tokens *helper.TokenService
	users  *mongo.Collection
}

func NewAuthMiddleware(tokens *helper.TokenService, users *mongo.Collection) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

func rejectJSON(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// Authentication requires a valid bearer token and stores the decoded
// identity in the request context for downstream checks.
func (m *AuthMiddleware) Authentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			rejectJSON(w, http.StatusUnauthorized, "Unauthorized request")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			rejectJSON(w, http.StatusUnauthorized, "Unauthorized request")
			return
		}

		claims, err := m.tokens.ValidateToken(parts[1])
		if err != nil {
			rejectJSON(w, http.StatusUnauthorized, "Unauthorized request")
			return
		}

		ctx := context.WithValue(r.Context(), EmailKey, claims.Email)
		ctx = context.WithValue(ctx, NameKey, claims.Name)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin must run after Authentication. It looks the user up by the
// claim's email and rejects unless the stored role is "admin". The lookup
// happens on every call so a demoted admin is locked out immediately.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, _ := r.Context().Value(EmailKey).(string)

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		var user models.User
		err := m.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
		if err != nil || user.Role != "admin" {
			rejectJSON(w, http.StatusForbidden, "Unauthorized access")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireSelf must run after Authentication. It compares the named path
// parameter against the authenticated email, so a user can only read
// their own records.
func (m *AuthMiddleware) RequireSelf(param string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, _ := r.Context().Value(EmailKey).(string)
		if mux.Vars(r)[param] != email {
			rejectJSON(w, http.StatusForbidden, "Unauthorized access")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// EmailFromContext returns the authenticated email, if any.
func EmailFromContext(r *http.Request) string {
	email, _ := r.Context().Value(EmailKey).(string)
	return email
}
