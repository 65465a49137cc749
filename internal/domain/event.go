package domain

import "time"

const (
	EventNewReview = "new_review"
	EventOrderPaid = "order_paid"
)

type Event struct {
	Type      string      `json:"type"`
	FoodID    string      `json:"food_id,omitempty"`
	OrderID   string      `json:"order_id,omitempty"`
	UserID    string      `json:"user_id,omitempty"`
	Rating    int         `json:"rating,omitempty"`
	Items     []OrderItem `json:"items,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}
