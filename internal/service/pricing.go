package service

import (
	"foodigo/internal/domain"

	"github.com/shopspring/decimal"
)

var (
	OrderDeliveryFee    = decimal.NewFromInt(2)
	ScheduleDeliveryFee = decimal.Zero
	MinimumCharge       = decimal.RequireFromString("0.50")
)

const deliveryLineName = "Delivery Charges"

func itemsSubtotal(items []domain.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return total
}

func OrderAmount(items []domain.OrderItem) decimal.Decimal {
	return itemsSubtotal(items).Add(OrderDeliveryFee).Round(2)
}

func ScheduleAmount(items []domain.OrderItem) decimal.Decimal {
	return itemsSubtotal(items).Add(ScheduleDeliveryFee).Round(2)
}

func ToCents(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

func checkoutLines(items []domain.OrderItem) []domain.LineItem {
	lines := make([]domain.LineItem, 0, len(items)+1)
	for _, item := range items {
		lines = append(lines, domain.LineItem{
			Name:       item.Name,
			UnitAmount: ToCents(decimal.NewFromFloat(item.Price)),
			Quantity:   int64(item.Quantity),
		})
	}
	return append(lines, domain.LineItem{
		Name:       deliveryLineName,
		UnitAmount: ToCents(OrderDeliveryFee),
		Quantity:   1,
	})
}

func validateItems(items []domain.OrderItem) error {
	if len(items) == 0 {
		return invalid("At least one item is required")
	}
	for _, item := range items {
		if item.FoodID == "" && item.Name == "" {
			return invalid("Every item needs an id or a name")
		}
		if item.Quantity < 1 {
			return invalid("Quantity for %q must be at least 1", item.Name)
		}
		if item.Price < 0 {
			return invalid("Price for %q cannot be negative", item.Name)
		}
	}
	return nil
}
