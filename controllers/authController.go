package controller

import (
	"encoding/json"
	"net/http"

	"github.com/its-asif/foodie-server-side/helper"
)

// AuthController issues session tokens. Identity is supplied by the
// upstream sign-in flow; there is no credential check here.
type AuthController struct {
	tokens *helper.TokenService
}

func NewAuthController(tokens *helper.TokenService) *AuthController {
	return &AuthController{tokens: tokens}
}

type tokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

// IssueToken handles POST /jwt.
func (c *AuthController) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	token, err := c.tokens.GenerateToken(req.Email, req.Name)
	if err != nil {
		writeServerError(w, "Token generation failed", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
