package main

import (
	"context"
	"log"

	"foodigo/config"
	httpapi "foodigo/internal/api/http"
	"foodigo/internal/auth"
	"foodigo/internal/notify"
	"foodigo/internal/payment"
	"foodigo/internal/service"
	"foodigo/internal/storage"
)

func main() {
	cfg := config.MustLoad()
	ctx := context.Background()

	db := config.MustInitPostgres(cfg.DB)
	defer db.Close()

	rdb := config.MustInitRedis(cfg.Redis)
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter(cfg.Kafka)
	defer kafkaWriter.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatal("Failed to prepare schema:", err)
	}
	cache := storage.NewRedisCache(rdb, cfg.Worker.ReviewMarkerTTL)
	publisher := storage.NewKafkaPublisher(kafkaWriter)
	images := storage.NewDiskImageStore(cfg.UploadDir)

	payments := payment.NewStripeGateway(cfg.Stripe.SecretKey, cfg.Stripe.Currency)
	receipts := notify.NewReceiptRenderer(service.OrderDeliveryFee, "$")
	var mailer service.Mailer
	if cfg.SMTP.Host != "" {
		mailer = notify.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.From)
	} else {
		log.Println("[store-svc] SMTP_HOST not set, receipts will not be emailed")
	}
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)

	accounts := service.NewAccountService(repo, tokens)
	if cfg.Admin.Email != "" && cfg.Admin.Password != "" {
		if err := accounts.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password); err != nil {
			log.Fatal("Failed to seed admin:", err)
		}
	}

	handler := &httpapi.Handler{
		Accounts:  accounts,
		Catalog:   service.NewCatalogService(repo, repo, images, cfg.Worker.LowStockThreshold),
		Cart:      service.NewCartService(repo),
		Favorites: service.NewFavoritesService(repo),
		Orders: service.NewOrderService(service.OrderServiceDeps{
			Orders:      repo,
			Users:       repo,
			Payments:    payments,
			Receipts:    receipts,
			Mailer:      mailer,
			Publisher:   publisher,
			QR:          service.DefaultQRGenerator{BaseURL: cfg.FrontendURL},
			FrontendURL: cfg.FrontendURL,
		}),
		Schedules: service.NewScheduleService(repo, repo, repo, payments, publisher),
		Reviews:   service.NewReviewService(repo, repo, cache, publisher),
		Messages:  service.NewMessageService(repo),
		Auth:      auth.NewMiddleware(tokens),
	}

	httpapi.StartServer(cfg.HTTPAddr, httpapi.NewRouter(handler, cfg.UploadDir))
}
