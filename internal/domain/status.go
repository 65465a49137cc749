package domain

type OrderStatus string

// The closed set an admin may move a confirmed order through.
const (
	StatusFoodProcessing OrderStatus = "Food Processing"
	StatusOutForDelivery OrderStatus = "Out for delivery"
	StatusDelivered      OrderStatus = "Delivered"
)

// Legacy values still found on stored orders. They are never assigned by the
// validated status route but take part in the cancellation policy.
const (
	StatusPending         OrderStatus = "Pending"
	StatusInProcess       OrderStatus = "In Process"
	StatusAcceptedByRider OrderStatus = "Accepted by Rider"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusFoodProcessing, StatusOutForDelivery, StatusDelivered:
		return true
	}
	return false
}

func (s OrderStatus) InTransit() bool {
	return s == StatusOutForDelivery || s == StatusAcceptedByRider
}

func (s OrderStatus) PreDispatch() bool {
	switch s {
	case StatusPending, StatusInProcess, StatusFoodProcessing:
		return true
	}
	return false
}

// CancelDecision describes what removing an order in a given status means.
type CancelDecision int

const (
	CancelRejected CancelDecision = iota
	CancelClearHistory
	CancelWithRefund
)

func (s OrderStatus) CancelDecision() CancelDecision {
	switch {
	case s == StatusDelivered:
		return CancelClearHistory
	case s.PreDispatch():
		return CancelWithRefund
	default:
		return CancelRejected
	}
}
