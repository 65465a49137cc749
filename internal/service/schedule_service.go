package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"foodigo/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ScheduleInput struct {
	Items             []domain.OrderItem
	Address           domain.Address
	DeliveryTimestamp time.Time
	RecurrenceRule    string
	PaymentMethodID   string
	UpdateCutoffHours int
}

// ScheduleUpdate leaves nil fields untouched. A non-nil empty Items is rejected.
type ScheduleUpdate struct {
	Items             []domain.OrderItem
	DeliveryTimestamp *time.Time
	RecurrenceRule    *string
}

type ScheduleService struct {
	schedules ScheduleRepository
	orders    OrderRepository
	users     UserRepository
	payments  PaymentGateway
	publisher EventPublisher
	grace     time.Duration
	now       func() time.Time
}

// DefaultScheduleGrace is how late the worker may still charge a delivery slot.
const DefaultScheduleGrace = 15 * time.Minute

func NewScheduleService(schedules ScheduleRepository, orders OrderRepository, users UserRepository, payments PaymentGateway, publisher EventPublisher) *ScheduleService {
	return &ScheduleService{
		schedules: schedules,
		orders:    orders,
		users:     users,
		payments:  payments,
		publisher: publisher,
		grace:     DefaultScheduleGrace,
		now:       time.Now,
	}
}

// WithGrace sets how far past its slot a schedule may still be charged.
func (s *ScheduleService) WithGrace(grace time.Duration) *ScheduleService {
	s.grace = grace
	return s
}

func (s *ScheduleService) WithClock(now func() time.Time) *ScheduleService {
	s.now = now
	return s
}

func (s *ScheduleService) Create(ctx context.Context, userID string, in ScheduleInput) (*domain.Schedule, error) {
	if field := missingAddressField(in.Address); field != "" {
		return nil, invalid("Missing required address field: %s", field)
	}
	if err := validateItems(in.Items); err != nil {
		return nil, err
	}
	now := s.now()
	if !in.DeliveryTimestamp.After(now) {
		return nil, invalid("Scheduled time must be in the future.")
	}
	if in.PaymentMethodID == "" {
		return nil, invalid("A payment method is required")
	}
	rule, err := domain.ParseRecurrence(in.RecurrenceRule)
	if err != nil {
		return nil, invalid("Invalid recurrence rule %q", in.RecurrenceRule)
	}
	cutoff := in.UpdateCutoffHours
	if cutoff <= 0 {
		cutoff = domain.DefaultUpdateCutoffHours
	}

	user, err := s.users.GetUser(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	customerID, err := s.payments.CreateCustomer(ctx, in.PaymentMethodID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to register payment method: %w", err)
	}

	schedule := &domain.Schedule{
		ID:                    uuid.NewString(),
		UserID:                userID,
		Items:                 in.Items,
		Address:               in.Address,
		Amount:                ScheduleAmount(in.Items).InexactFloat64(),
		ScheduleType:          rule.ScheduleType(),
		DeliveryTimestamp:     in.DeliveryTimestamp,
		RecurrenceRule:        rule,
		UpdateCutoffHours:     cutoff,
		IsActive:              true,
		StripePaymentMethodID: in.PaymentMethodID,
		StripeCustomerID:      customerID,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if err := s.schedules.CreateSchedule(ctx, schedule); err != nil {
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}
	return schedule, nil
}

func (s *ScheduleService) ListForUser(ctx context.Context, userID string) ([]domain.Schedule, error) {
	return s.schedules.ListUserSchedules(ctx, userID)
}

// List returns every schedule with its owner resolved, soonest delivery first.
func (s *ScheduleService) List(ctx context.Context) ([]domain.ScheduleOwner, error) {
	schedules, err := s.schedules.ListSchedules(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(schedules))
	seen := make(map[string]bool)
	for _, sch := range schedules {
		if !seen[sch.UserID] {
			seen[sch.UserID] = true
			ids = append(ids, sch.UserID)
		}
	}
	owners, err := s.users.GetUserSummaries(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve schedule owners: %w", err)
	}

	result := make([]domain.ScheduleOwner, 0, len(schedules))
	for _, sch := range schedules {
		entry := domain.ScheduleOwner{Schedule: sch}
		if owner, ok := owners[sch.UserID]; ok {
			entry.User = &owner
		}
		result = append(result, entry)
	}
	return result, nil
}

// Update edits a schedule while delivery is still more than the cutoff away.
func (s *ScheduleService) Update(ctx context.Context, userID, id string, upd ScheduleUpdate) (*domain.Schedule, error) {
	schedule, err := s.schedules.GetSchedule(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}
	if schedule.UserID != userID {
		return nil, ErrScheduleNotFound
	}

	now := s.now()
	cutoff := time.Duration(schedule.UpdateCutoffHours) * time.Hour
	if schedule.DeliveryTimestamp.Sub(now) <= cutoff {
		return nil, invalid("Cannot update schedule within %d hours of delivery.", schedule.UpdateCutoffHours)
	}

	if upd.Items != nil {
		if len(upd.Items) == 0 {
			return nil, invalid("Schedule must contain at least one item.")
		}
		if err := validateItems(upd.Items); err != nil {
			return nil, err
		}
	}
	if upd.DeliveryTimestamp != nil && !upd.DeliveryTimestamp.After(now) {
		return nil, invalid("New scheduled time must be in the future.")
	}
	if upd.RecurrenceRule != nil {
		rule, err := domain.ParseRecurrence(*upd.RecurrenceRule)
		if err != nil {
			return nil, invalid("Invalid recurrence rule %q", *upd.RecurrenceRule)
		}
		schedule.RecurrenceRule = rule
		schedule.ScheduleType = rule.ScheduleType()
	}

	if upd.Items != nil {
		schedule.Items = upd.Items
	}
	if upd.DeliveryTimestamp != nil {
		schedule.DeliveryTimestamp = *upd.DeliveryTimestamp
	}
	schedule.Amount = ScheduleAmount(schedule.Items).InexactFloat64()
	schedule.UpdatedAt = now

	rows, err := s.schedules.UpdateSchedule(ctx, schedule)
	if err != nil {
		return nil, fmt.Errorf("failed to update schedule: %w", err)
	}
	if rows == 0 {
		return nil, ErrScheduleNotFound
	}
	return schedule, nil
}

func (s *ScheduleService) Toggle(ctx context.Context, userID, id string, active bool) error {
	if userID == "" {
		return ErrScheduleNotFound
	}
	return s.setActive(ctx, id, userID, active)
}

func (s *ScheduleService) AdminToggle(ctx context.Context, id string, active bool) error {
	return s.setActive(ctx, id, "", active)
}

func (s *ScheduleService) setActive(ctx context.Context, id, userID string, active bool) error {
	rows, err := s.schedules.SetScheduleActive(ctx, id, userID, active)
	if err != nil {
		return fmt.Errorf("failed to toggle schedule: %w", err)
	}
	if rows == 0 {
		return ErrScheduleNotFound
	}
	return nil
}

func (s *ScheduleService) Delete(ctx context.Context, userID, id string) error {
	if userID == "" {
		return ErrScheduleNotFound
	}
	return s.delete(ctx, id, userID)
}

func (s *ScheduleService) AdminDelete(ctx context.Context, id string) error {
	return s.delete(ctx, id, "")
}

func (s *ScheduleService) delete(ctx context.Context, id, userID string) error {
	rows, err := s.schedules.DeleteSchedule(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	if rows == 0 {
		return ErrScheduleNotFound
	}
	return nil
}

func (s *ScheduleService) TopSelling(ctx context.Context) ([]domain.TopSellingItem, error) {
	orderItems, err := s.orders.ListOrderItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load order items: %w", err)
	}
	scheduleItems, err := s.schedules.ListScheduleItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule items: %w", err)
	}
	return RankTopSelling(append(orderItems, scheduleItems...), TopSellingLimit), nil
}

// MaterializeDue turns every active schedule whose delivery time has come into
// an order charged against the saved payment method. Recurring schedules move
// to their next occurrence, one-time schedules are paused. A slot more than the
// grace window in the past is skipped without a charge. An occurrence whose
// order could not be stored after a refunded charge stays due for the next run.
func (s *ScheduleService) MaterializeDue(ctx context.Context) (int, error) {
	now := s.now()
	due, err := s.schedules.ListDueSchedules(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("failed to list due schedules: %w", err)
	}

	placed := 0
	for i := range due {
		schedule := &due[i]
		if late := now.Sub(schedule.DeliveryTimestamp); late > s.grace {
			log.Printf("[store-svc] schedule %s: slot %s missed by %s, not charging",
				schedule.ID, schedule.DeliveryTimestamp.Format(time.RFC3339), late.Round(time.Minute))
		} else {
			charged, consumed := s.materialize(ctx, schedule, now)
			if charged {
				placed++
			}
			if !consumed {
				continue
			}
		}

		if next, ok := schedule.RecurrenceRule.Next(schedule.DeliveryTimestamp, now); ok {
			if err := s.schedules.AdvanceSchedule(ctx, schedule.ID, next); err != nil {
				log.Printf("[store-svc] failed to advance schedule %s: %v", schedule.ID, err)
			}
		} else if _, err := s.schedules.SetScheduleActive(ctx, schedule.ID, "", false); err != nil {
			log.Printf("[store-svc] failed to close schedule %s: %v", schedule.ID, err)
		}
	}
	return placed, nil
}

// materialize charges the saved card and stores the resulting order as paid.
// consumed is false only when the occurrence should be retried.
func (s *ScheduleService) materialize(ctx context.Context, schedule *domain.Schedule, now time.Time) (placed, consumed bool) {
	cents := ToCents(decimal.NewFromFloat(schedule.Amount))
	chargeID, err := s.payments.ChargeSaved(ctx, schedule.StripeCustomerID, schedule.StripePaymentMethodID, cents)
	if err != nil {
		log.Printf("[store-svc] schedule %s: charge failed: %v", schedule.ID, err)
		return false, true
	}

	order := &domain.Order{
		ID:         uuid.NewString(),
		UserID:     schedule.UserID,
		Items:      schedule.Items,
		Address:    schedule.Address,
		Amount:     schedule.Amount,
		Status:     domain.StatusFoodProcessing,
		Payment:    true,
		IsNew:      true,
		PaymentRef: chargeID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.orders.CreateOrder(ctx, order); err != nil {
		log.Printf("[store-svc] schedule %s: failed to store order for charge %s: %v", schedule.ID, chargeID, err)
		if err := s.payments.Refund(ctx, chargeID); err != nil {
			log.Printf("[store-svc] schedule %s: refund of %s failed, occurrence closed: %v", schedule.ID, chargeID, err)
			return false, true
		}
		return false, false
	}

	if s.publisher != nil {
		err := s.publisher.Publish(ctx, domain.Event{
			Type:      domain.EventOrderPaid,
			OrderID:   order.ID,
			UserID:    order.UserID,
			Items:     order.Items,
			Timestamp: now,
		})
		if err != nil {
			log.Printf("[store-svc] failed to publish %s: %v", domain.EventOrderPaid, err)
		}
	}
	log.Printf("[store-svc] schedule %s placed order %s", schedule.ID, order.ID)
	return true, true
}

func missingAddressField(a domain.Address) string {
	fields := []struct {
		name  string
		value string
	}{
		{"firstName", a.FirstName},
		{"lastName", a.LastName},
		{"email", a.Email},
		{"street", a.Street},
		{"city", a.City},
		{"state", a.State},
		{"zipcode", a.Zipcode},
		{"country", a.Country},
		{"phone", a.Phone},
	}
	for _, f := range fields {
		if f.value == "" {
			return f.name
		}
	}
	return ""
}

var _ ScheduleServiceInterface = (*ScheduleService)(nil)
