package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, router http.Handler, url string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	return doJSON(t, router, http.MethodPost, url, payload)
}

func doJSON(t *testing.T, router http.Handler, method, url string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestCreateAndGetOrder(t *testing.T) {
	db := setupTestDB(t)
	router := setupAPIRouter(db)
	vendor := seedVendor(t, db)
	product := seedProduct(t, db, "Tapioca", 15.00)

	w := postJSON(t, router, "/api/orders", map[string]interface{}{
		"order": map[string]interface{}{
			"vendorId":      vendor.ID,
			"paymentMethod": "dinheiro",
			"customerName":  "Maria",
		},
		"items": []map[string]interface{}{
			{"productId": product.ID, "quantity": 2, "unitPrice": 15.00},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	created := decodeBody(t, w)
	assert.Equal(t, float64(1), created["orderNumber"])
	assert.Equal(t, 30.00, created["totalAmount"])
	assert.Equal(t, "pendente", created["paymentStatus"])
	assert.Equal(t, "pendente", created["deliveryStatus"])
	items := created["items"].([]interface{})
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, 30.00, item["totalPrice"])
	assert.Equal(t, "Tapioca", item["product"].(map[string]interface{})["name"])

	orderID := created["id"].(string)
	w = doJSON(t, router, http.MethodGet, "/api/orders/"+orderID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeBody(t, w)
	assert.Equal(t, orderID, got["id"])
	assert.Equal(t, "João Vendedor", got["vendor"].(map[string]interface{})["name"])
}

func TestCreateOrderRequiresItems(t *testing.T) {
	db := setupTestDB(t)
	router := setupAPIRouter(db)
	vendor := seedVendor(t, db)

	w := postJSON(t, router, "/api/orders", map[string]interface{}{
		"order": map[string]interface{}{
			"vendorId":      vendor.ID,
			"paymentMethod": "pix",
		},
		"items": []map[string]interface{}{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	db := setupTestDB(t)
	router := setupAPIRouter(db)
	vendor := seedVendor(t, db)

	w := postJSON(t, router, "/api/orders", map[string]interface{}{
		"order": map[string]interface{}{
			"vendorId":      vendor.ID,
			"paymentMethod": "pix",
		},
		"items": []map[string]interface{}{
			{"productId": "missing", "quantity": 1, "unitPrice": 10.00},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOrderNotFound(t *testing.T) {
	db := setupTestDB(t)
	router := setupAPIRouter(db)

	w := doJSON(t, router, http.MethodGet, "/api/orders/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateOrderReplacesItems(t *testing.T) {
	db := setupTestDB(t)
	router := setupAPIRouter(db)
	vendor := seedVendor(t, db)
	tapioca := seedProduct(t, db, "Tapioca", 15.00)
	coxinha := seedProduct(t, db, "Coxinha", 8.00)

	w := postJSON(t, router, "/api/orders", map[string]interface{}{
		"order": map[string]interface{}{"vendorId": vendor.ID, "paymentMethod": "dinheiro"},
		"items": []map[string]interface{}{
			{"productId": tapioca.ID, "quantity": 1, "unitPrice": 15.00},
			{"productId": coxinha.ID, "quantity": 1, "unitPrice": 8.00},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := decodeBody(t, w)["id"].(string)

	w = doJSON(t, router, http.MethodPut, "/api/orders/"+orderID, map[string]interface{}{
		"order": map[string]interface{}{"customerName": "Carlos"},
		"items": []map[string]interface{}{
			{"productId": coxinha.ID, "quantity": 5, "unitPrice": 8.00},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	updated := decodeBody(t, w)
	assert.Equal(t, "Carlos", updated["customerName"])
	assert.Equal(t, 40.00, updated["totalAmount"])
	assert.Len(t, updated["items"].([]interface{}), 1)
}

func TestUpdateOrderNotFound(t *testing.T) {
	db := setupTestDB(t)
	router := setupAPIRouter(db)

	w := doJSON(t, router, http.MethodPut, "/api/orders/missing", map[string]interface{}{
		"order": map[string]interface{}{"customerName": "X"},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateOrderStatus(t *testing.T) {
	db := setupTestDB(t)
	router := setupAPIRouter(db)
	vendor := seedVendor(t, db)
	product := seedProduct(t, db, "Tapioca", 15.00)

	w := postJSON(t, router, "/api/orders", map[string]interface{}{
		"order": map[string]interface{}{"vendorId": vendor.ID, "paymentMethod": "aberto"},
		"items": []map[string]interface{}{
			{"productId": product.ID, "quantity": 1, "unitPrice": 15.00},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := decodeBody(t, w)["id"].(string)

	w = doJSON(t, router, http.MethodPatch, "/api/orders/"+orderID+"/status", map[string]interface{}{
		"paymentStatus":  "realizado",
		"deliveryStatus": "realizada",
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeBody(t, w)
	assert.Equal(t, "realizado", updated["paymentStatus"])
	assert.Equal(t, "realizada", updated["deliveryStatus"])
}

func TestDeleteOrder(t *testing.T) {
	db := setupTestDB(t)
	router := setupAPIRouter(db)
	vendor := seedVendor(t, db)
	product := seedProduct(t, db, "Tapioca", 15.00)

	w := postJSON(t, router, "/api/orders", map[string]interface{}{
		"order": map[string]interface{}{"vendorId": vendor.ID, "paymentMethod": "pix"},
		"items": []map[string]interface{}{
			{"productId": product.ID, "quantity": 1, "unitPrice": 15.00},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := decodeBody(t, w)["id"].(string)

	w = doJSON(t, router, http.MethodDelete, "/api/orders/"+orderID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Pedido deletado com sucesso", decodeBody(t, w)["message"])

	w = doJSON(t, router, http.MethodGet, "/api/orders/"+orderID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/orders/"+orderID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListOrdersWithLimit(t *testing.T) {
	db := setupTestDB(t)
	router := setupAPIRouter(db)
	vendor := seedVendor(t, db)
	product := seedProduct(t, db, "Tapioca", 15.00)

	for i := 0; i < 3; i++ {
		w := postJSON(t, router, "/api/orders", map[string]interface{}{
			"order": map[string]interface{}{"vendorId": vendor.ID, "paymentMethod": "dinheiro"},
			"items": []map[string]interface{}{
				{"productId": product.ID, "quantity": 1, "unitPrice": 15.00},
			},
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, router, http.MethodGet, "/api/orders?limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var orders []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	assert.Len(t, orders, 2)
}

func TestVendorOrders(t *testing.T) {
	db := setupTestDB(t)
	router := setupAPIRouter(db)
	vendor := seedVendor(t, db)
	product := seedProduct(t, db, "Tapioca", 15.00)

	w := postJSON(t, router, "/api/orders", map[string]interface{}{
		"order": map[string]interface{}{"vendorId": vendor.ID, "paymentMethod": "dinheiro"},
		"items": []map[string]interface{}{
			{"productId": product.ID, "quantity": 1, "unitPrice": 15.00},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/vendors/"+vendor.ID+"/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var orders []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	assert.Len(t, orders, 1)

	w = doJSON(t, router, http.MethodGet, "/api/vendors/other/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	assert.Empty(t, orders)
}

func TestGenerateTicket(t *testing.T) {
	db := setupTestDB(t)
	router := setupAPIRouter(db)
	vendor := seedVendor(t, db)
	product := seedProduct(t, db, "Tapioca", 15.00)

	w := postJSON(t, router, "/api/orders", map[string]interface{}{
		"order": map[string]interface{}{"vendorId": vendor.ID, "paymentMethod": "dinheiro"},
		"items": []map[string]interface{}{
			{"productId": product.ID, "quantity": 2, "unitPrice": 15.00},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := decodeBody(t, w)["id"].(string)

	w = doJSON(t, router, http.MethodPost, "/api/orders/"+orderID+"/ticket", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), `filename="pedido-1.pdf"`)
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
}

func TestGenerateTicketNotFound(t *testing.T) {
	db := setupTestDB(t)
	router := setupAPIRouter(db)

	w := doJSON(t, router, http.MethodPost, "/api/orders/missing/ticket", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
