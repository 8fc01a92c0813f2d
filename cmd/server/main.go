package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"tablemenu/config"
	httpapi "tablemenu/internal/api/http"
	"tablemenu/internal/service"
	"tablemenu/internal/storage"
)

func main() {
	cfg := config.Load()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	cache := storage.NewRedisCache(rdb)
	store := storage.NewDiskObjectStore(cfg.UploadDir)

	// With a broker configured, activity events flow through Kafka and the
	// dispatcher writes the log rows; otherwise they are written inline.
	var publisher service.ActivityPublisher
	if cfg.KafkaBroker != "" {
		writer := config.NewKafkaWriter(cfg.KafkaBroker, "activity")
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)

		reader := config.NewKafkaReader(cfg.KafkaBroker, "activity", "activity-dispatcher")
		defer reader.Close()
		dispatcher := service.NewActivityDispatcher(reader, repo)
		go dispatcher.Start(context.Background())
	} else {
		log.Println("KAFKA_BROKER not set, writing activity logs synchronously")
		publisher = service.NewStorePublisher(repo)
	}

	authService := service.NewAuthService(repo, cache, publisher)
	if username := os.Getenv("ADMIN_USERNAME"); username != "" {
		if err := authService.Bootstrap(username, os.Getenv("ADMIN_PASSWORD")); err != nil {
			log.Fatal("Failed to bootstrap manager account:", err)
		}
	}

	menuService := service.NewMenuService(repo, repo, publisher, store)
	orderService := service.NewOrderService(repo, repo, publisher, cfg.RejectEmptyOrders)
	qrService := service.NewQRService(repo, store, publisher, cfg.FrontendURL)
	analyticsService := service.NewAnalyticsService(repo, repo, cache, cfg.Location())
	tracker := service.NewTrackingService(repo, repo, authService)

	handler := httpapi.NewHandler(menuService, orderService, qrService, analyticsService, authService)
	router := httpapi.NewRouter(handler, tracker, cfg.UploadDir)

	addr := cfg.Host + ":" + cfg.Port
	log.Println("Menu platform starting on", addr)
	log.Fatal(http.ListenAndServe(addr, router))
}
