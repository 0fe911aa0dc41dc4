package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestCreateUser(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("new email is inserted", func(mt *mtest.T) {
		ctrl := NewUserController(mt.Coll)

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "foodie.users", mtest.FirstBatch),
			mtest.CreateSuccessResponse(),
		)

		body, _ := json.Marshal(map[string]string{"email": "a@x.com", "name": "A"})
		req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		ctrl.CreateUser(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotNil(t, resp["insertedId"])
	})

	mt.Run("existing email reports null insertedId", func(mt *mtest.T) {
		ctrl := NewUserController(mt.Coll)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "foodie.users", mtest.FirstBatch,
			bson.D{{Key: "email", Value: "a@x.com"}}))

		body, _ := json.Marshal(map[string]string{"email": "a@x.com", "name": "A"})
		req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		ctrl.CreateUser(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "User already exists", resp["message"])
		require.Nil(t, resp["insertedId"])
	})

	mt.Run("role in signup body is discarded", func(mt *mtest.T) {
		ctrl := NewUserController(mt.Coll)

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "foodie.users", mtest.FirstBatch),
			mtest.CreateSuccessResponse(),
		)

		body, _ := json.Marshal(map[string]string{
			"email": "sneaky@x.com",
			"name":  "Sneaky",
			"role":  "admin",
		})
		req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		ctrl.CreateUser(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		// The inserted document must not carry a role field at all.
		for _, evt := range mt.GetAllStartedEvents() {
			if evt.CommandName != "insert" {
				continue
			}
			docs := evt.Command.Lookup("documents").Array()
			inserted := docs.Index(0).Value().Document()
			_, err := inserted.LookupErr("role")
			require.Error(t, err, "inserted user should have no role field")
		}
	})

	mt.Run("missing email is rejected", func(mt *mtest.T) {
		ctrl := NewUserController(mt.Coll)

		body, _ := json.Marshal(map[string]string{"name": "A"})
		req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		ctrl.CreateUser(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetAdminStatus(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("admin role reads true", func(mt *mtest.T) {
		ctrl := NewUserController(mt.Coll)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "foodie.users", mtest.FirstBatch,
			bson.D{{Key: "email", Value: "a@x.com"}, {Key: "role", Value: "admin"}}))

		req := httptest.NewRequest(http.MethodGet, "/users/admin/a@x.com", nil)
		req = mux.SetURLVars(req, map[string]string{"email": "a@x.com"})
		rec := httptest.NewRecorder()

		ctrl.GetAdminStatus(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]bool
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.True(t, resp["isAdmin"])
	})

	mt.Run("missing user reads false", func(mt *mtest.T) {
		ctrl := NewUserController(mt.Coll)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "foodie.users", mtest.FirstBatch))

		req := httptest.NewRequest(http.MethodGet, "/users/admin/ghost@x.com", nil)
		req = mux.SetURLVars(req, map[string]string{"email": "ghost@x.com"})
		rec := httptest.NewRecorder()

		ctrl.GetAdminStatus(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]bool
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.False(t, resp["isAdmin"])
	})
}

func TestPromoteToAdminInvalidID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("non-hex id is rejected", func(mt *mtest.T) {
		ctrl := NewUserController(mt.Coll)

		req := httptest.NewRequest(http.MethodPatch, "/users/admin/abc", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "abc"})
		rec := httptest.NewRecorder()

		ctrl.PromoteToAdmin(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
