package service

import (
	"context"
	"encoding/json"
	"log"

	"foodigo/internal/domain"

	"github.com/segmentio/kafka-go"
)

type LowStockReporter interface {
	LowStock(ctx context.Context) ([]domain.Food, error)
}

// Consumer applies lifecycle events to the derived aggregates.
type Consumer struct {
	Reader *kafka.Reader
	Store  StatsStore
	Stock  LowStockReporter
}

func NewConsumer(reader *kafka.Reader, store StatsStore, stock LowStockReporter) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
		Stock:  stock,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("[worker] starting event consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("[worker] event consumer stopped")
				return
			}
			log.Printf("[worker] error reading message: %v", err)
			continue
		}

		var event domain.Event
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("[worker] error unmarshaling message: %v", err)
			continue
		}
		c.Process(ctx, event)
	}
}

func (c *Consumer) Process(ctx context.Context, event domain.Event) {
	switch event.Type {
	case domain.EventNewReview:
		c.processReview(ctx, event)
	case domain.EventOrderPaid:
		c.processOrderPaid(ctx, event)
	}
}

func (c *Consumer) processReview(ctx context.Context, event domain.Event) {
	log.Printf("[worker] processing review: FoodID=%s, Rating=%d", event.FoodID, event.Rating)
	if err := c.Store.UpdateFoodRating(ctx, event.FoodID); err != nil {
		log.Printf("[worker] error updating food rating: %v", err)
		return
	}
	log.Printf("[worker] successfully processed review for food %s", event.FoodID)
}

func (c *Consumer) processOrderPaid(ctx context.Context, event domain.Event) {
	log.Printf("[worker] processing paid order %s (%d lines)", event.OrderID, len(event.Items))
	if err := c.Store.DecrementStock(ctx, event.Items); err != nil {
		log.Printf("[worker] error decrementing stock: %v", err)
		return
	}
	if c.Stock != nil {
		if _, err := c.Stock.LowStock(ctx); err != nil {
			log.Printf("[worker] low stock check failed: %v", err)
		}
	}
}
