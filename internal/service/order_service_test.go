package service_test

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"foodigo/internal/domain"
	"foodigo/internal/mocks"
	"foodigo/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderDeps struct {
	orders    *mocks.OrderRepository
	users     *mocks.UserRepository
	payments  *mocks.PaymentGateway
	receipts  *mocks.ReceiptRenderer
	mailer    *mocks.Mailer
	publisher *mocks.EventPublisher
	qr        *mocks.QRGenerator
}

var fixedNow = time.Date(2026, 3, 6, 12, 0, 0, 0, time.UTC)

func newOrderService(t *testing.T) (*service.OrderService, orderDeps) {
	deps := orderDeps{
		orders:    mocks.NewOrderRepository(t),
		users:     mocks.NewUserRepository(t),
		payments:  mocks.NewPaymentGateway(t),
		receipts:  mocks.NewReceiptRenderer(t),
		mailer:    mocks.NewMailer(t),
		publisher: mocks.NewEventPublisher(t),
		qr:        mocks.NewQRGenerator(t),
	}
	svc := service.NewOrderService(service.OrderServiceDeps{
		Orders:      deps.orders,
		Users:       deps.users,
		Payments:    deps.payments,
		Receipts:    deps.receipts,
		Mailer:      deps.mailer,
		Publisher:   deps.publisher,
		QR:          deps.qr,
		FrontendURL: "http://shop.test",
	}).WithClock(func() time.Time { return fixedNow })
	return svc, deps
}

func burgerAndFries() []domain.OrderItem {
	return []domain.OrderItem{
		{FoodID: "f1", Name: "Burger", Price: 10, Quantity: 2},
		{FoodID: "f2", Name: "Fries", Price: 5, Quantity: 1},
	}
}

func TestOrderService_Place(t *testing.T) {
	svc, deps := newOrderService(t)

	deps.orders.On("CreateOrder", mock.Anything, mock.MatchedBy(func(o *domain.Order) bool {
		return o.Amount == 27 && !o.Payment && o.IsNew &&
			o.Status == domain.StatusFoodProcessing && o.UserID == "u1" && o.ID != ""
	})).Return(nil).Once()
	deps.payments.On("CreateCheckoutSession", mock.Anything,
		mock.MatchedBy(func(lines []domain.LineItem) bool {
			return len(lines) == 3 &&
				lines[0].UnitAmount == 1000 && lines[0].Quantity == 2 &&
				lines[1].UnitAmount == 500 && lines[1].Quantity == 1 &&
				lines[2].Name == "Delivery Charges" && lines[2].UnitAmount == 200 && lines[2].Quantity == 1
		}),
		mock.MatchedBy(func(url string) bool { return strings.HasPrefix(url, "http://shop.test/verify?success=true&orderId=") }),
		mock.MatchedBy(func(url string) bool { return strings.HasPrefix(url, "http://shop.test/verify?success=false&orderId=") }),
	).Return(&domain.CheckoutSession{ID: "cs_1", URL: "https://pay.test/cs_1"}, nil).Once()
	deps.orders.On("SetPaymentRef", mock.Anything, mock.AnythingOfType("string"), "cs_1").Return(nil).Once()

	url, err := svc.Place(context.Background(), "u1", burgerAndFries(), domain.Address{FirstName: "Ada"})
	require.NoError(t, err)
	assert.Equal(t, "https://pay.test/cs_1", url)
}

func TestOrderService_Place_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		items []domain.OrderItem
	}{
		{name: "no items", items: nil},
		{name: "zero quantity", items: []domain.OrderItem{{FoodID: "f1", Name: "Burger", Price: 10}}},
		{name: "negative price", items: []domain.OrderItem{{FoodID: "f1", Name: "Burger", Price: -1, Quantity: 1}}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, _ := newOrderService(t)

			_, err := svc.Place(context.Background(), "u1", testCase.items, domain.Address{})
			assert.True(t, service.IsValidation(err), "got %v", err)
		})
	}
}

func TestOrderService_Place_CheckoutFailureKeepsOrder(t *testing.T) {
	svc, deps := newOrderService(t)

	deps.orders.On("CreateOrder", mock.Anything, mock.Anything).Return(nil).Once()
	deps.payments.On("CreateCheckoutSession", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("stripe down")).Once()

	_, err := svc.Place(context.Background(), "u1", burgerAndFries(), domain.Address{})
	assert.Error(t, err)
	assert.False(t, service.IsValidation(err))
	deps.orders.AssertNotCalled(t, "DeleteOrder", mock.Anything, mock.Anything)
}

func paidOrder() *domain.Order {
	return &domain.Order{
		ID:      "o1",
		UserID:  "u1",
		Items:   burgerAndFries(),
		Address: domain.Address{FirstName: "Ada", LastName: "Lovelace"},
		Amount:  27,
		Status:  domain.StatusFoodProcessing,
		Payment: true,
	}
}

func TestOrderService_Verify_Success(t *testing.T) {
	tests := []struct {
		name    string
		mailErr error
	}{
		{name: "receipt emailed"},
		{name: "email failure is logged", mailErr: errors.New("smtp refused")},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, deps := newOrderService(t)
			order := paidOrder()

			deps.orders.On("MarkPaid", mock.Anything, "o1").Return(int64(1), nil).Once()
			deps.orders.On("GetOrder", mock.Anything, "o1").Return(order, nil).Once()
			deps.users.On("GetUser", mock.Anything, "u1").Return(&domain.User{ID: "u1", Email: "ada@example.com"}, nil).Once()
			deps.users.On("ClearCart", mock.Anything, "u1").Return(int64(1), nil).Once()
			deps.qr.On("Generate", "o1").Return([]byte("png"), nil).Once()
			deps.receipts.On("Render", order, "Ada Lovelace", []byte("png")).Return([]byte("%PDF-1.3"), nil).Once()
			deps.receipts.On("EmailBody", order, "Ada Lovelace").Return("<p>thanks</p>", nil).Once()
			deps.mailer.On("Send", mock.Anything, "ada@example.com", mock.Anything, "<p>thanks</p>",
				domain.Attachment{Filename: "FoodiGO_Invoice_o1.pdf", Content: []byte("%PDF-1.3")}).
				Return(testCase.mailErr).Once()
			deps.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e domain.Event) bool {
				return e.Type == domain.EventOrderPaid && e.OrderID == "o1" && len(e.Items) == 2
			})).Return(nil).Once()

			receipt, err := svc.Verify(context.Background(), "o1", true)
			require.NoError(t, err)
			assert.Equal(t, "FoodiGO_Invoice_o1.pdf", receipt.Filename)
			assert.Equal(t, []byte("%PDF-1.3"), receipt.PDF)
		})
	}
}

func TestOrderService_Verify_ChecksCheckoutSession(t *testing.T) {
	tests := []struct {
		name      string
		paid      bool
		checkErr  error
		wantPaid  bool
		wantCheck func(error) bool
	}{
		{name: "collected session is marked paid", paid: true, wantPaid: true},
		{name: "open session is rejected", paid: false, wantCheck: service.IsValidation},
		{name: "gateway error", checkErr: errors.New("stripe down"), wantCheck: func(err error) bool { return err != nil }},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, deps := newOrderService(t)
			order := paidOrder()
			order.Payment = false
			order.PaymentRef = "cs_test_1"

			deps.orders.On("GetOrder", mock.Anything, "o1").Return(order, nil).Once()
			deps.payments.On("CheckoutPaid", mock.Anything, "cs_test_1").Return(testCase.paid, testCase.checkErr).Once()
			if testCase.wantPaid {
				deps.orders.On("MarkPaid", mock.Anything, "o1").Return(int64(1), nil).Once()
				deps.users.On("GetUser", mock.Anything, "u1").Return(&domain.User{ID: "u1", Email: "ada@example.com"}, nil).Once()
				deps.users.On("ClearCart", mock.Anything, "u1").Return(int64(1), nil).Once()
				deps.qr.On("Generate", "o1").Return([]byte("png"), nil).Once()
				deps.receipts.On("Render", order, "Ada Lovelace", []byte("png")).Return([]byte("%PDF-1.3"), nil).Once()
				deps.receipts.On("EmailBody", order, "Ada Lovelace").Return("<p>thanks</p>", nil).Once()
				deps.mailer.On("Send", mock.Anything, "ada@example.com", mock.Anything, "<p>thanks</p>", mock.Anything).Return(nil).Once()
				deps.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()
			}

			receipt, err := svc.Verify(context.Background(), "o1", true)
			if testCase.wantPaid {
				require.NoError(t, err)
				assert.True(t, order.Payment)
				assert.Equal(t, "FoodiGO_Invoice_o1.pdf", receipt.Filename)
				return
			}
			assert.True(t, testCase.wantCheck(err))
			deps.orders.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything)
			deps.users.AssertNotCalled(t, "ClearCart", mock.Anything, mock.Anything)
		})
	}
}

func TestOrderService_Verify_Failure(t *testing.T) {
	svc, deps := newOrderService(t)

	deps.orders.On("GetOrder", mock.Anything, "o1").Return(paidOrder(), nil).Once()
	deps.orders.On("DeleteOrder", mock.Anything, "o1").Return(int64(1), nil).Once()
	deps.users.On("ClearCart", mock.Anything, "u1").Return(int64(1), nil).Once()

	receipt, err := svc.Verify(context.Background(), "o1", false)
	require.NoError(t, err)
	assert.Nil(t, receipt)
}

func TestOrderService_Verify_NotFound(t *testing.T) {
	t.Run("success on missing order", func(t *testing.T) {
		svc, deps := newOrderService(t)
		deps.orders.On("GetOrder", mock.Anything, "gone").Return(nil, sql.ErrNoRows).Once()

		_, err := svc.Verify(context.Background(), "gone", true)
		assert.ErrorIs(t, err, service.ErrOrderNotFound)
		deps.orders.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything)
	})

	t.Run("failure on deleted order", func(t *testing.T) {
		svc, deps := newOrderService(t)
		deps.orders.On("GetOrder", mock.Anything, "gone").Return(nil, sql.ErrNoRows).Once()

		_, err := svc.Verify(context.Background(), "gone", false)
		assert.ErrorIs(t, err, service.ErrOrderNotFound)
		assert.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("missing id", func(t *testing.T) {
		svc, _ := newOrderService(t)

		_, err := svc.Verify(context.Background(), "", true)
		assert.True(t, service.IsValidation(err))
	})
}

func TestOrderService_Cancel(t *testing.T) {
	tests := []struct {
		name         string
		order        domain.Order
		refundErr    error
		wantRefund   bool
		wantDelete   bool
		wantDecision domain.CancelDecision
		wantErr      func(error) bool
	}{
		{
			name:         "delivered clears history",
			order:        domain.Order{Status: domain.StatusDelivered, Payment: true, PaymentRef: "cs_1"},
			wantDelete:   true,
			wantDecision: domain.CancelClearHistory,
		},
		{
			name:         "paid food processing is refunded",
			order:        domain.Order{Status: domain.StatusFoodProcessing, Payment: true, PaymentRef: "cs_1"},
			wantRefund:   true,
			wantDelete:   true,
			wantDecision: domain.CancelWithRefund,
		},
		{
			name:         "refund failure still deletes",
			order:        domain.Order{Status: domain.StatusInProcess, Payment: true, PaymentRef: "cs_1"},
			refundErr:    errors.New("already refunded"),
			wantRefund:   true,
			wantDelete:   true,
			wantDecision: domain.CancelWithRefund,
		},
		{
			name:         "unpaid pending needs no refund",
			order:        domain.Order{Status: domain.StatusPending},
			wantDelete:   true,
			wantDecision: domain.CancelWithRefund,
		},
		{
			name:         "out for delivery is rejected",
			order:        domain.Order{Status: domain.StatusOutForDelivery, Payment: true, PaymentRef: "cs_1"},
			wantDecision: domain.CancelRejected,
			wantErr:      service.IsValidation,
		},
		{
			name:         "accepted by rider is rejected",
			order:        domain.Order{Status: domain.StatusAcceptedByRider, Payment: true},
			wantDecision: domain.CancelRejected,
			wantErr:      service.IsValidation,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, deps := newOrderService(t)
			order := testCase.order
			order.ID = "o1"
			order.UserID = "u1"

			deps.orders.On("GetOrder", mock.Anything, "o1").Return(&order, nil).Once()
			if testCase.wantRefund {
				deps.payments.On("Refund", mock.Anything, "cs_1").Return(testCase.refundErr).Once()
			}
			if testCase.wantDelete {
				deps.orders.On("DeleteOrder", mock.Anything, "o1").Return(int64(1), nil).Once()
			}

			decision, err := svc.Cancel(context.Background(), "u1", "o1")
			assert.Equal(t, testCase.wantDecision, decision)
			if testCase.wantErr != nil {
				assert.True(t, testCase.wantErr(err), "got %v", err)
				deps.orders.AssertNotCalled(t, "DeleteOrder", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			if !testCase.wantRefund {
				deps.payments.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestOrderService_Cancel_OtherOwner(t *testing.T) {
	svc, deps := newOrderService(t)
	deps.orders.On("GetOrder", mock.Anything, "o1").Return(&domain.Order{ID: "o1", UserID: "someone", Status: domain.StatusDelivered}, nil).Once()

	_, err := svc.Cancel(context.Background(), "u1", "o1")
	assert.ErrorIs(t, err, service.ErrOrderNotFound)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name    string
		status  domain.OrderStatus
		rows    int64
		call    bool
		wantErr func(error) bool
	}{
		{name: "delivered", status: domain.StatusDelivered, rows: 1, call: true},
		{name: "unknown status", status: "Shipped", wantErr: service.IsValidation},
		{name: "legacy status is not assignable", status: domain.StatusAcceptedByRider, wantErr: service.IsValidation},
		{name: "missing order", status: domain.StatusOutForDelivery, rows: 0, call: true,
			wantErr: func(err error) bool { return errors.Is(err, service.ErrOrderNotFound) }},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, deps := newOrderService(t)
			if testCase.call {
				deps.orders.On("UpdateOrderStatus", mock.Anything, "o1", testCase.status).Return(testCase.rows, nil).Once()
			}

			err := svc.UpdateStatus(context.Background(), "o1", testCase.status)
			if testCase.wantErr != nil {
				assert.True(t, testCase.wantErr(err), "got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOrderService_OverrideStatus(t *testing.T) {
	svc, deps := newOrderService(t)
	deps.orders.On("UpdateOrderStatus", mock.Anything, "o1", domain.StatusAcceptedByRider).Return(int64(1), nil).Once()

	assert.NoError(t, svc.OverrideStatus(context.Background(), "o1", "Accepted by Rider"))
	assert.True(t, service.IsValidation(svc.OverrideStatus(context.Background(), "o1", "")))
}

func TestOrderService_MarkSeen(t *testing.T) {
	svc, deps := newOrderService(t)
	deps.orders.On("MarkOrderSeen", mock.Anything, "o1").Return(int64(1), nil).Once()
	deps.orders.On("GetOrder", mock.Anything, "o1").Return(&domain.Order{ID: "o1", Status: domain.StatusOutForDelivery}, nil).Once()

	order, err := svc.MarkSeen(context.Background(), "o1")
	require.NoError(t, err)
	assert.False(t, order.IsNew)
	assert.Equal(t, domain.StatusOutForDelivery, order.Status)
}

func TestOrderService_SweepAbandoned(t *testing.T) {
	svc, deps := newOrderService(t)
	deps.orders.On("DeleteUnpaidBefore", mock.Anything, fixedNow.Add(-24*time.Hour)).Return(int64(3), nil).Once()

	removed, err := svc.SweepAbandoned(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}

func TestOrderService_QRCode(t *testing.T) {
	svc, deps := newOrderService(t)
	deps.orders.On("GetOrder", mock.Anything, "o1").Return(&domain.Order{ID: "o1"}, nil).Once()
	deps.qr.On("Generate", "o1").Return([]byte("png"), nil).Once()

	png, err := svc.QRCode(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}
