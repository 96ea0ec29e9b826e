package main

import (
	"log"

	"tablebite/config"
	httpapi "tablebite/internal/api/http"
	"tablebite/internal/auth"
	"tablebite/internal/payments"
	"tablebite/internal/service"
	"tablebite/internal/storage"
)

func main() {
	cfg := config.LoadApp()

	db := config.MustInitPostgres()
	defer db.Close()
	if err := storage.EnsureSchema(db); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	redisClient := config.MustInitRedis()
	defer redisClient.Close()

	kafkaWriter := config.NewKafkaWriter("order-events")
	defer kafkaWriter.Close()

	userRepo := storage.NewUserRepo(db)
	catalogRepo := storage.NewCatalogRepo(db)
	cartRepo := storage.NewCartRepo(db)
	orderRepo := storage.NewOrderRepo(db)
	reservationRepo := storage.NewReservationRepo(db)
	tokenStore := storage.NewTokenStore(redisClient, cfg.RefreshTokenTTL)
	publisher := storage.NewKafkaPublisher(kafkaWriter)

	tokens := auth.NewTokenManager(
		cfg.AccessTokenSecret, cfg.RefreshTokenSecret,
		cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	gateway := payments.NewStripeGateway(cfg.StripeSecretKey, cfg.FrontendURL)

	userSvc := service.NewUserService(userRepo, tokenStore, tokens)
	catalogSvc := service.NewCatalogService(catalogRepo)
	cartSvc := service.NewCartService(cartRepo, catalogRepo)
	orderSvc := service.NewOrderService(orderRepo, cartRepo, catalogRepo, userRepo, gateway, publisher, tokenStore)
	reservationSvc := service.NewReservationService(reservationRepo, service.SlotPolicy{
		OpenHour:  cfg.ReservationOpenHour,
		CloseHour: cfg.ReservationCloseHour,
		Step:      cfg.ReservationSlotStep,
	})

	handler := httpapi.NewHandler(
		userSvc, catalogSvc, cartSvc, orderSvc, reservationSvc,
		tokens, cfg.StripeWebhookSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	router := httpapi.NewRouter(handler, cfg.FrontendURL)
	httpapi.StartServer(":"+cfg.Port, router)
}
