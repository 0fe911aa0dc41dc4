package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLiveness(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	livenessHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "foodie is running!", rec.Body.String())
}
