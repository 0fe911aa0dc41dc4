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
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestGetCartItemsScopedByEmail(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns owner's items", func(mt *mtest.T) {
		ctrl := NewCartController(mt.Coll)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "foodie.cart", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "email", Value: "a@x.com"},
				{Key: "price", Value: 10.0},
			}))

		req := httptest.NewRequest(http.MethodGet, "/carts?email=a@x.com", nil)
		rec := httptest.NewRecorder()

		ctrl.GetCartItems(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var items []map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
		require.Len(t, items, 1)
		require.Equal(t, "a@x.com", items[0]["email"])
		require.Equal(t, float64(10), items[0]["price"])
	})

	mt.Run("empty cart is an empty list", func(mt *mtest.T) {
		ctrl := NewCartController(mt.Coll)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "foodie.cart", mtest.FirstBatch))

		req := httptest.NewRequest(http.MethodGet, "/carts?email=a@x.com", nil)
		rec := httptest.NewRecorder()

		ctrl.GetCartItems(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, "[]", rec.Body.String())
	})
}

func TestAddCartItem(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("valid item is inserted", func(mt *mtest.T) {
		ctrl := NewCartController(mt.Coll)

		mt.AddMockResponses(mtest.CreateSuccessResponse())

		body, _ := json.Marshal(map[string]interface{}{
			"email":  "a@x.com",
			"menuId": "652f1c0c8a2e4b1f9d3a1b2c",
			"name":   "dal tadka",
			"price":  10.0,
		})
		req := httptest.NewRequest(http.MethodPost, "/carts", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		ctrl.AddCartItem(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotNil(t, resp["InsertedID"])
	})

	mt.Run("minimal body with only email and price is accepted", func(mt *mtest.T) {
		ctrl := NewCartController(mt.Coll)

		mt.AddMockResponses(mtest.CreateSuccessResponse())

		body, _ := json.Marshal(map[string]interface{}{
			"email": "a@x.com",
			"price": 10.0,
		})
		req := httptest.NewRequest(http.MethodPost, "/carts", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		ctrl.AddCartItem(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotNil(t, resp["InsertedID"])
	})

	mt.Run("missing owner email is rejected", func(mt *mtest.T) {
		ctrl := NewCartController(mt.Coll)

		body, _ := json.Marshal(map[string]interface{}{"menuId": "x", "price": 10.0})
		req := httptest.NewRequest(http.MethodPost, "/carts", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		ctrl.AddCartItem(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteCartItem(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("deletes by ObjectID", func(mt *mtest.T) {
		ctrl := NewCartController(mt.Coll)

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		id := primitive.NewObjectID().Hex()
		req := httptest.NewRequest(http.MethodDelete, "/carts/"+id, nil)
		req = mux.SetURLVars(req, map[string]string{"id": id})
		rec := httptest.NewRecorder()

		ctrl.DeleteCartItem(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, float64(1), resp["DeletedCount"])
	})

	mt.Run("non-hex id is rejected", func(mt *mtest.T) {
		ctrl := NewCartController(mt.Coll)

		req := httptest.NewRequest(http.MethodDelete, "/carts/abc", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "abc"})
		rec := httptest.NewRecorder()

		ctrl.DeleteCartItem(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
