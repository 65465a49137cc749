package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"foodigo/config"
	"foodigo/internal/payment"
	"foodigo/internal/service"
	"foodigo/internal/storage"
)

func main() {
	cfg := config.MustLoad()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db := config.MustInitPostgres(cfg.DB)
	defer db.Close()

	rdb := config.MustInitRedis(cfg.Redis)
	defer rdb.Close()

	reader := config.NewKafkaReader(cfg.Kafka)
	defer reader.Close()

	kafkaWriter := config.NewKafkaWriter(cfg.Kafka)
	defer kafkaWriter.Close()

	repo := storage.NewPostgresRepository(db)
	publisher := storage.NewKafkaPublisher(kafkaWriter)
	payments := payment.NewStripeGateway(cfg.Stripe.SecretKey, cfg.Stripe.Currency)
	catalog := service.NewCatalogService(repo, repo, storage.NewDiskImageStore(cfg.UploadDir), cfg.Worker.LowStockThreshold)

	consumer := service.NewConsumer(reader, storage.NewStore(db, rdb), catalog)
	sweeper := &service.Sweeper{
		Orders:     service.NewOrderService(service.OrderServiceDeps{Orders: repo, Users: repo, Publisher: publisher}),
		Schedules:  service.NewScheduleService(repo, repo, repo, payments, publisher).WithGrace(cfg.Worker.ScheduleGrace),
		PendingTTL: cfg.Worker.PendingOrderTTL,
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		consumer.Start(ctx)
	}()
	go func() {
		defer wg.Done()
		sweeper.Run(ctx, cfg.Worker.Interval)
	}()

	log.Println("[worker] running")
	wg.Wait()
	log.Println("[worker] shut down")
}
