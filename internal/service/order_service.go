package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"foodigo/internal/domain"

	"github.com/google/uuid"
)

// Receipt is what a confirmed payment hands back to the client.
type Receipt struct {
	OrderID  string
	Filename string
	PDF      []byte
}

type OrderService struct {
	orders      OrderRepository
	users       UserRepository
	payments    PaymentGateway
	receipts    ReceiptRenderer
	mailer      Mailer
	publisher   EventPublisher
	qrEncoder   QRGenerator
	frontendURL string
	now         func() time.Time
}

type OrderServiceDeps struct {
	Orders      OrderRepository
	Users       UserRepository
	Payments    PaymentGateway
	Receipts    ReceiptRenderer
	Mailer      Mailer
	Publisher   EventPublisher
	QR          QRGenerator
	FrontendURL string
}

func NewOrderService(deps OrderServiceDeps) *OrderService {
	return &OrderService{
		orders:      deps.Orders,
		users:       deps.Users,
		payments:    deps.Payments,
		receipts:    deps.Receipts,
		mailer:      deps.Mailer,
		publisher:   deps.Publisher,
		qrEncoder:   deps.QR,
		frontendURL: deps.FrontendURL,
		now:         time.Now,
	}
}

// WithClock replaces the time source. Tests use it to pin the current time.
func (s *OrderService) WithClock(now func() time.Time) *OrderService {
	s.now = now
	return s
}

func (s *OrderService) Place(ctx context.Context, userID string, items []domain.OrderItem, address domain.Address) (string, error) {
	if err := validateItems(items); err != nil {
		return "", err
	}

	amount := OrderAmount(items)
	if amount.LessThan(MinimumCharge) {
		return "", invalid("Total order amount must be at least $%s for payment", MinimumCharge.StringFixed(2))
	}

	now := s.now()
	order := &domain.Order{
		ID:        uuid.NewString(),
		UserID:    userID,
		Items:     items,
		Address:   address,
		Amount:    amount.InexactFloat64(),
		Status:    domain.StatusFoodProcessing,
		Payment:   false,
		IsNew:     true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return "", fmt.Errorf("failed to create order: %w", err)
	}
	log.Printf("[store-svc] new order %s placed for $%s", order.ID, amount.StringFixed(2))

	successURL := fmt.Sprintf("%s/verify?success=true&orderId=%s", s.frontendURL, order.ID)
	cancelURL := fmt.Sprintf("%s/verify?success=false&orderId=%s", s.frontendURL, order.ID)
	session, err := s.payments.CreateCheckoutSession(ctx, checkoutLines(items), successURL, cancelURL)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}

	if err := s.orders.SetPaymentRef(ctx, order.ID, session.ID); err != nil {
		log.Printf("[store-svc] failed to store checkout session for order %s: %v", order.ID, err)
	}
	return session.URL, nil
}

// Verify settles the checkout callback. A failed payment deletes the order and
// yields a nil receipt.
func (s *OrderService) Verify(ctx context.Context, orderID string, success bool) (*Receipt, error) {
	if orderID == "" {
		return nil, invalid("Order ID is required")
	}
	if !success {
		return nil, s.discard(ctx, orderID)
	}

	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := s.checkCollected(ctx, order); err != nil {
		return nil, err
	}

	rows, err := s.orders.MarkPaid(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark order paid: %w", err)
	}
	if rows == 0 {
		return nil, ErrOrderNotFound
	}
	order.Payment = true

	user, err := s.users.GetUser(ctx, order.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load order owner: %w", err)
	}
	if _, err := s.users.ClearCart(ctx, order.UserID); err != nil {
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	customerName := order.Address.FirstName + " " + order.Address.LastName
	var qr []byte
	if s.qrEncoder != nil {
		if qr, err = s.qrEncoder.Generate(order.ID); err != nil {
			log.Printf("[store-svc] qr code for order %s: %v", order.ID, err)
		}
	}

	pdf, err := s.receipts.Render(order, customerName, qr)
	if err != nil {
		return nil, fmt.Errorf("failed to render receipt: %w", err)
	}
	receipt := &Receipt{
		OrderID:  order.ID,
		Filename: fmt.Sprintf("FoodiGO_Invoice_%s.pdf", shortID(order.ID)),
		PDF:      pdf,
	}

	s.sendReceipt(ctx, user.Email, order, customerName, receipt)
	s.publish(ctx, domain.Event{
		Type:      domain.EventOrderPaid,
		OrderID:   order.ID,
		UserID:    order.UserID,
		Items:     order.Items,
		Timestamp: s.now(),
	})
	return receipt, nil
}

// checkCollected asks the gateway whether the order's checkout session was
// paid. Orders already marked paid, and orders without a session, pass.
func (s *OrderService) checkCollected(ctx context.Context, order *domain.Order) error {
	if order.Payment || s.payments == nil {
		return nil
	}
	if !strings.HasPrefix(order.PaymentRef, "cs_") {
		log.Printf("[store-svc] order %s has no checkout session, trusting redirect", order.ID)
		return nil
	}
	paid, err := s.payments.CheckoutPaid(ctx, order.PaymentRef)
	if err != nil {
		return fmt.Errorf("failed to check checkout session: %w", err)
	}
	if !paid {
		return invalid("Payment has not been completed")
	}
	return nil
}

func (s *OrderService) discard(ctx context.Context, orderID string) error {
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if _, err := s.orders.DeleteOrder(ctx, orderID); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if _, err := s.users.ClearCart(ctx, order.UserID); err != nil {
		log.Printf("[store-svc] failed to clear cart of %s after failed payment: %v", order.UserID, err)
	}
	log.Printf("[store-svc] payment failed, order %s deleted", orderID)
	return nil
}

func (s *OrderService) sendReceipt(ctx context.Context, to string, order *domain.Order, customerName string, receipt *Receipt) {
	if s.mailer == nil {
		return
	}
	body, err := s.receipts.EmailBody(order, customerName)
	if err != nil {
		log.Printf("[store-svc] receipt email body for order %s: %v", order.ID, err)
		return
	}
	subject := fmt.Sprintf("Your FoodiGO order #%s is confirmed", shortID(order.ID))
	attachment := domain.Attachment{Filename: receipt.Filename, Content: receipt.PDF}
	if err := s.mailer.Send(ctx, to, subject, body, attachment); err != nil {
		log.Printf("[store-svc] failed to email receipt for order %s: %v", order.ID, err)
	}
}

func (s *OrderService) publish(ctx context.Context, event domain.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Printf("[store-svc] failed to publish %s: %v", event.Type, err)
	}
}

func (s *OrderService) ListForUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.orders.ListUserOrders(ctx, userID)
}

func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.orders.ListOrders(ctx)
}

func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	if !status.IsValid() {
		return invalid("Invalid order status %q", status)
	}
	return s.setStatus(ctx, orderID, status)
}

// OverrideStatus writes any non-empty status, bypassing the closed set.
func (s *OrderService) OverrideStatus(ctx context.Context, orderID, status string) error {
	if status == "" {
		return invalid("Status is required")
	}
	log.Printf("[store-svc] unsafe status override on order %s: %q", orderID, status)
	return s.setStatus(ctx, orderID, domain.OrderStatus(status))
}

func (s *OrderService) setStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	if orderID == "" {
		return invalid("Order ID is required")
	}
	rows, err := s.orders.UpdateOrderStatus(ctx, orderID, status)
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	if rows == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (s *OrderService) MarkSeen(ctx context.Context, orderID string) (*domain.Order, error) {
	if orderID == "" {
		return nil, invalid("Order ID is required")
	}
	rows, err := s.orders.MarkOrderSeen(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark order seen: %w", err)
	}
	if rows == 0 {
		return nil, ErrOrderNotFound
	}
	return s.getOrder(ctx, orderID)
}

func (s *OrderService) CountNew(ctx context.Context) (int, error) {
	return s.orders.CountNewOrders(ctx)
}

// Cancel removes an order on behalf of its owner. Orders on the road are kept.
func (s *OrderService) Cancel(ctx context.Context, userID, orderID string) (domain.CancelDecision, error) {
	if orderID == "" {
		return domain.CancelRejected, invalid("Order ID is required")
	}
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return domain.CancelRejected, err
	}
	if order.UserID != userID {
		return domain.CancelRejected, ErrOrderNotFound
	}

	decision := order.Status.CancelDecision()
	switch decision {
	case domain.CancelRejected:
		return decision, invalid("Order is %s and can no longer be cancelled", order.Status)
	case domain.CancelWithRefund:
		s.refund(ctx, order)
	}

	if _, err := s.orders.DeleteOrder(ctx, orderID); err != nil {
		return domain.CancelRejected, fmt.Errorf("failed to delete order: %w", err)
	}
	return decision, nil
}

func (s *OrderService) refund(ctx context.Context, order *domain.Order) {
	if !order.Payment || order.PaymentRef == "" || s.payments == nil {
		return
	}
	if err := s.payments.Refund(ctx, order.PaymentRef); err != nil {
		log.Printf("[store-svc] refund for order %s failed: %v", order.ID, err)
		return
	}
	log.Printf("[store-svc] refunded order %s", order.ID)
}

func (s *OrderService) AdminRemove(ctx context.Context, orderID string) error {
	if orderID == "" {
		return invalid("Order ID is required")
	}
	rows, err := s.orders.DeleteOrder(ctx, orderID)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if rows == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (s *OrderService) QRCode(ctx context.Context, orderID string) ([]byte, error) {
	if _, err := s.getOrder(ctx, orderID); err != nil {
		return nil, err
	}
	if s.qrEncoder == nil {
		return nil, errors.New("qr encoder is not configured")
	}
	return s.qrEncoder.Generate(orderID)
}

// SweepAbandoned deletes unpaid orders older than ttl.
func (s *OrderService) SweepAbandoned(ctx context.Context, ttl time.Duration) (int64, error) {
	removed, err := s.orders.DeleteUnpaidBefore(ctx, s.now().Add(-ttl))
	if err != nil {
		return 0, fmt.Errorf("failed to sweep abandoned orders: %w", err)
	}
	if removed > 0 {
		log.Printf("[store-svc] swept %d abandoned orders", removed)
	}
	return removed, nil
}

func (s *OrderService) getOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	return order, nil
}

func shortID(id string) string {
	if len(id) <= 6 {
		return id
	}
	return id[len(id)-6:]
}

var _ OrderServiceInterface = (*OrderService)(nil)
