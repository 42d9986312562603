package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pilgrimpal/internal/config"
	"pilgrimpal/internal/consumers"
	"pilgrimpal/internal/logger"
)

func main() {
	// Загружаем конфигурацию
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	if !cfg.NATS.Enabled {
		log.Fatal("Consumers require NATS_ENABLED=true")
	}

	// Создаем сервис консьюмеров
	service, err := consumers.NewConsumerService(cfg)
	if err != nil {
		log.Fatalf("Failed to create consumer service: %v", err)
	}

	if err := service.Start(); err != nil {
		log.Fatalf("Failed to start consumer service: %v", err)
	}

	log.Println("Consumers are running. Press Ctrl+C to exit.")

	// Ждем сигнал для graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down consumers...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := service.Shutdown(ctx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Consumers stopped")
}
