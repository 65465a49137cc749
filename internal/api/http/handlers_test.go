package httpapi_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpapi "foodigo/internal/api/http"
	"foodigo/internal/auth"
	"foodigo/internal/domain"
	"foodigo/internal/mocks"
	"foodigo/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testTokens = auth.NewTokenIssuer("handler-test-secret", time.Hour)

func serve(t *testing.T, h *httpapi.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	h.Auth = auth.NewMiddleware(testTokens)
	r := mux.NewRouter()
	h.RegisterRoutes(r)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func token(t *testing.T, id string, role auth.Role) string {
	t.Helper()
	tok, err := testTokens.Issue(id, role)
	require.NoError(t, err)
	return tok
}

func jsonRequest(method, path, body, tok string) *http.Request {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if tok != "" {
		req.Header.Set("token", tok)
	}
	return req
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthHandler(t *testing.T) {
	w := serve(t, &httpapi.Handler{}, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decodeBody(t, w)["status"])
}

func TestPlaceOrderHandler(t *testing.T) {
	validBody := `{"items":[{"_id":"f1","name":"Burger","price":10,"quantity":2}],"address":{"firstName":"Ada"}}`

	tests := []struct {
		name      string
		body      string
		role      auth.Role
		setupMock func(*mocks.OrderRepository, *mocks.PaymentGateway)
		wantCode  int
	}{
		{
			name: "valid request",
			body: validBody,
			role: auth.RoleUser,
			setupMock: func(orders *mocks.OrderRepository, payments *mocks.PaymentGateway) {
				orders.On("CreateOrder", mock.Anything, mock.MatchedBy(func(o *domain.Order) bool {
					return o.UserID == "u1" && o.Amount == 22
				})).Return(nil).Once()
				payments.On("CreateCheckoutSession", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(&domain.CheckoutSession{ID: "cs_1", URL: "https://pay.test/cs_1"}, nil).Once()
				orders.On("SetPaymentRef", mock.Anything, mock.AnythingOfType("string"), "cs_1").Return(nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "empty items",
			body:      `{"items":[],"address":{}}`,
			role:      auth.RoleUser,
			setupMock: func(*mocks.OrderRepository, *mocks.PaymentGateway) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "invalid JSON",
			body:      `{invalid}`,
			role:      auth.RoleUser,
			setupMock: func(*mocks.OrderRepository, *mocks.PaymentGateway) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "admin token",
			body:      validBody,
			role:      auth.RoleAdmin,
			setupMock: func(*mocks.OrderRepository, *mocks.PaymentGateway) {},
			wantCode:  http.StatusUnauthorized,
		},
		{
			name: "database error",
			body: validBody,
			role: auth.RoleUser,
			setupMock: func(orders *mocks.OrderRepository, _ *mocks.PaymentGateway) {
				orders.On("CreateOrder", mock.Anything, mock.Anything).Return(errors.New("db error")).Once()
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := mocks.NewOrderRepository(t)
			payments := mocks.NewPaymentGateway(t)
			testCase.setupMock(orders, payments)
			h := &httpapi.Handler{Orders: service.NewOrderService(service.OrderServiceDeps{
				Orders:      orders,
				Payments:    payments,
				FrontendURL: "http://shop.test",
			})}

			w := serve(t, h, jsonRequest("POST", "/api/order/place", testCase.body, token(t, "u1", testCase.role)))

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantCode == http.StatusOK {
				assert.Equal(t, "https://pay.test/cs_1", decodeBody(t, w)["session_url"])
			}
		})
	}
}

func TestPlaceOrderHandler_NoToken(t *testing.T) {
	h := &httpapi.Handler{}
	w := serve(t, h, jsonRequest("POST", "/api/order/place", `{}`, ""))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, false, decodeBody(t, w)["success"])
}

func TestVerifyOrderHandler(t *testing.T) {
	order := &domain.Order{ID: "order-123456", UserID: "u1", Payment: true, Address: domain.Address{FirstName: "Ada", LastName: "L"}}

	t.Run("paid returns the receipt", func(t *testing.T) {
		orders := mocks.NewOrderRepository(t)
		users := mocks.NewUserRepository(t)
		receipts := mocks.NewReceiptRenderer(t)
		orders.On("MarkPaid", mock.Anything, "order-123456").Return(int64(1), nil).Once()
		orders.On("GetOrder", mock.Anything, "order-123456").Return(order, nil).Once()
		users.On("GetUser", mock.Anything, "u1").Return(&domain.User{ID: "u1", Email: "ada@example.com"}, nil).Once()
		users.On("ClearCart", mock.Anything, "u1").Return(int64(1), nil).Once()
		receipts.On("Render", order, "Ada L", []byte(nil)).Return([]byte("%PDF-1.3 receipt"), nil).Once()

		h := &httpapi.Handler{Orders: service.NewOrderService(service.OrderServiceDeps{
			Orders: orders, Users: users, Receipts: receipts,
		})}
		w := serve(t, h, jsonRequest("POST", "/api/order/verify", `{"orderId":"order-123456","success":"true"}`, ""))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.Equal(t, "attachment; filename=FoodiGO_Invoice_123456.pdf", w.Header().Get("Content-Disposition"))
		assert.Equal(t, "%PDF-1.3 receipt", w.Body.String())
	})

	t.Run("failed payment deletes the order", func(t *testing.T) {
		orders := mocks.NewOrderRepository(t)
		users := mocks.NewUserRepository(t)
		orders.On("GetOrder", mock.Anything, "order-123456").Return(order, nil).Once()
		orders.On("DeleteOrder", mock.Anything, "order-123456").Return(int64(1), nil).Once()
		users.On("ClearCart", mock.Anything, "u1").Return(int64(1), nil).Once()

		h := &httpapi.Handler{Orders: service.NewOrderService(service.OrderServiceDeps{Orders: orders, Users: users})}
		w := serve(t, h, jsonRequest("POST", "/api/order/verify", `{"orderId":"order-123456","success":false}`, ""))

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Payment failed, order deleted", body["message"])
	})

	t.Run("unpaid checkout session", func(t *testing.T) {
		orders := mocks.NewOrderRepository(t)
		payments := mocks.NewPaymentGateway(t)
		pending := &domain.Order{ID: "order-123456", UserID: "u1", PaymentRef: "cs_test_9"}
		orders.On("GetOrder", mock.Anything, "order-123456").Return(pending, nil).Once()
		payments.On("CheckoutPaid", mock.Anything, "cs_test_9").Return(false, nil).Once()

		h := &httpapi.Handler{Orders: service.NewOrderService(service.OrderServiceDeps{Orders: orders, Payments: payments})}
		w := serve(t, h, jsonRequest("POST", "/api/order/verify", `{"orderId":"order-123456","success":"true"}`, ""))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Payment has not been completed", decodeBody(t, w)["message"])
		orders.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything)
	})

	t.Run("unknown order", func(t *testing.T) {
		orders := mocks.NewOrderRepository(t)
		orders.On("GetOrder", mock.Anything, "missing").Return(nil, sql.ErrNoRows).Once()

		h := &httpapi.Handler{Orders: service.NewOrderService(service.OrderServiceDeps{Orders: orders})}
		w := serve(t, h, jsonRequest("POST", "/api/order/verify", `{"orderId":"missing","success":"true"}`, ""))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Order not found", decodeBody(t, w)["message"])
	})
}

func TestUpdateStatusHandler(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(*mocks.OrderRepository)
		wantCode  int
	}{
		{
			name: "valid status",
			body: `{"orderId":"o1","status":"Delivered"}`,
			setupMock: func(orders *mocks.OrderRepository) {
				orders.On("UpdateOrderStatus", mock.Anything, "o1", domain.StatusDelivered).Return(int64(1), nil).Once()
				orders.On("MarkOrderSeen", mock.Anything, "o1").Return(int64(1), nil).Maybe()
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "status outside the lifecycle",
			body:      `{"orderId":"o1","status":"Teleported"}`,
			setupMock: func(*mocks.OrderRepository) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := mocks.NewOrderRepository(t)
			testCase.setupMock(orders)
			h := &httpapi.Handler{Orders: service.NewOrderService(service.OrderServiceDeps{Orders: orders})}

			w := serve(t, h, jsonRequest("POST", "/api/order/status", testCase.body, token(t, "a1", auth.RoleAdmin)))
			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestCancelOrderHandler_InTransit(t *testing.T) {
	orders := mocks.NewOrderRepository(t)
	orders.On("GetOrder", mock.Anything, "o1").
		Return(&domain.Order{ID: "o1", UserID: "u1", Status: domain.StatusOutForDelivery}, nil).Once()

	h := &httpapi.Handler{Orders: service.NewOrderService(service.OrderServiceDeps{Orders: orders})}
	w := serve(t, h, jsonRequest("DELETE", "/api/order/remove/o1", "", token(t, "u1", auth.RoleUser)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	orders.AssertNotCalled(t, "DeleteOrder", mock.Anything, mock.Anything)
}

func TestUpdateScheduleHandler_Cutoff(t *testing.T) {
	delivery := time.Now().Add(90 * time.Minute)
	schedules := mocks.NewScheduleRepository(t)
	schedules.On("GetSchedule", mock.Anything, "s1").Return(&domain.Schedule{
		ID: "s1", UserID: "u1", DeliveryTimestamp: delivery, UpdateCutoffHours: 2,
		Items: []domain.OrderItem{{FoodID: "f1", Price: 10, Quantity: 1}},
	}, nil).Once()

	h := &httpapi.Handler{Schedules: service.NewScheduleService(schedules, nil, nil, nil, nil)}
	w := serve(t, h, jsonRequest("PUT", "/api/schedule/update/s1",
		`{"items":[{"_id":"f1","price":10,"quantity":3}]}`, token(t, "u1", auth.RoleUser)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Cannot update schedule within 2 hours of delivery.", decodeBody(t, w)["message"])
}

func TestToggleScheduleHandler(t *testing.T) {
	schedules := mocks.NewScheduleRepository(t)
	schedules.On("SetScheduleActive", mock.Anything, "s1", "u1", false).Return(int64(1), nil).Once()

	h := &httpapi.Handler{Schedules: service.NewScheduleService(schedules, nil, nil, nil, nil)}
	w := serve(t, h, jsonRequest("PUT", "/api/schedule/toggle/s1", `{"isActive":false}`, token(t, "u1", auth.RoleUser)))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Schedule paused successfully.", decodeBody(t, w)["message"])
}

func TestTopSellingHandler(t *testing.T) {
	orders := mocks.NewOrderRepository(t)
	schedules := mocks.NewScheduleRepository(t)
	orders.On("ListOrderItems", mock.Anything).Return([][]domain.OrderItem{{{FoodID: "f1", Name: "Burger", Quantity: 2}}}, nil).Once()
	schedules.On("ListScheduleItems", mock.Anything).Return([][]domain.OrderItem{{{FoodID: "f2", Name: "Fries", Quantity: 5}}}, nil).Once()

	h := &httpapi.Handler{Schedules: service.NewScheduleService(schedules, orders, nil, nil, nil)}
	w := serve(t, h, httptest.NewRequest("GET", "/api/schedule/top-selling", nil))

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].([]interface{})
	require.Len(t, data, 2)
	assert.Equal(t, "f2", data[0].(map[string]interface{})["_id"])
}

func TestCartHandler_RemoveMissingItem(t *testing.T) {
	users := mocks.NewUserRepository(t)
	users.On("GetUser", mock.Anything, "u1").Return(&domain.User{ID: "u1", CartData: map[string]int{}}, nil).Once()

	h := &httpapi.Handler{Cart: service.NewCartService(users)}
	w := serve(t, h, jsonRequest("POST", "/api/cart/remove", `{"itemId":"f9"}`, token(t, "u1", auth.RoleUser)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Item not in cart", decodeBody(t, w)["message"])
}

func TestAddReviewHandler_Duplicate(t *testing.T) {
	users := mocks.NewUserRepository(t)
	cache := mocks.NewReviewCache(t)
	users.On("GetUser", mock.Anything, "u1").Return(&domain.User{ID: "u1", Name: "Ada"}, nil).Once()
	cache.On("ReviewMarkerKey", "f1", "u1").Return("review:f1:u1").Once()
	cache.On("Exists", mock.Anything, "review:f1:u1").Return(true, nil).Once()

	h := &httpapi.Handler{Reviews: service.NewReviewService(mocks.NewReviewRepository(t), users, cache, nil)}
	w := serve(t, h, jsonRequest("POST", "/api/review/add", `{"foodId":"f1","rating":5,"comment":"Again"}`, token(t, "u1", auth.RoleUser)))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSendMessageHandler(t *testing.T) {
	tests := []struct {
		name       string
		tok        string
		wantUserID string
	}{
		{name: "guest", wantUserID: ""},
		{name: "signed in", tok: "user", wantUserID: "u1"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewMessageRepository(t)
			repo.On("CreateMessage", mock.Anything, mock.MatchedBy(func(m *domain.Message) bool {
				return m.UserID == testCase.wantUserID && m.Subject == "Late"
			})).Return(nil).Once()

			tok := ""
			if testCase.tok != "" {
				tok = token(t, "u1", auth.RoleUser)
			}
			h := &httpapi.Handler{Messages: service.NewMessageService(repo)}
			w := serve(t, h, jsonRequest("POST", "/api/message/send",
				`{"name":"Ada","email":"ada@example.com","subject":"Late","message":"Where is it?"}`, tok))

			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestAddFoodHandler(t *testing.T) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	require.NoError(t, form.WriteField("name", "Burger"))
	require.NoError(t, form.WriteField("description", "Beef"))
	require.NoError(t, form.WriteField("price", "10.5"))
	require.NoError(t, form.WriteField("category", "Mains"))
	require.NoError(t, form.WriteField("stock", "20"))
	part, err := form.CreateFormFile("image", "burger.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png"))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	foods := mocks.NewFoodRepository(t)
	images := mocks.NewImageStore(t)
	images.On("Save", "burger.png", mock.Anything).Return("1700000000000burger.png", nil).Once()
	foods.On("CreateFood", mock.Anything, mock.MatchedBy(func(f *domain.Food) bool {
		return f.Name == "Burger" && f.Price == 10.5 && f.Stock == 20 && f.Image == "1700000000000burger.png"
	})).Return(nil).Once()

	req := httptest.NewRequest("POST", "/api/food/add", &body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("token", token(t, "a1", auth.RoleAdmin))

	h := &httpapi.Handler{Catalog: service.NewCatalogService(foods, nil, images, 10)}
	w := serve(t, h, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Food Added", decodeBody(t, w)["message"])
}
