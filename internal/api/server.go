package api

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"pilgrimpal/internal/catalog"
	"pilgrimpal/internal/config"
	"pilgrimpal/internal/external"
	"pilgrimpal/internal/handlers"
	"pilgrimpal/internal/messaging"
	"pilgrimpal/internal/middleware"
	"pilgrimpal/internal/repository"
	"pilgrimpal/internal/service"
	"pilgrimpal/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server представляет HTTP сервер API
type Server struct {
	router   *gin.Engine
	config   *config.Config
	nats     *messaging.NATSClient
	services *service.Services
	sessions *session.Manager
	repos    *repository.Repositories

	stopWatcher context.CancelFunc
}

// NewServer создает новый экземпляр сервера
func NewServer(cfg *config.Config) *Server {
	// Устанавливаем режим Gin
	gin.SetMode(cfg.GinMode)

	// Подключаемся к NATS
	natsClient, err := messaging.NewNATSClient(cfg.NATS)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}

	// Создаем клиенты внешних сервисов
	authGateway := external.NewSimulatedAuthGateway(cfg.Auth)
	paymentClient := external.NewPaymentClient(cfg.Payment)

	// Загружаем справочник храмов
	temples := catalog.Load()

	// Создаем хранилища
	repos := repository.NewRepositories()

	// Создаем сервисы
	services := service.NewServices(temples, repos, paymentClient, natsClient)

	// Создаем менеджер сессий и запускаем наблюдение за identity feed
	sessions := session.NewManager(authGateway, natsClient)
	watcherCtx, stopWatcher := context.WithCancel(context.Background())
	go sessions.Run(watcherCtx)

	// Создаем роутер
	router := gin.New()

	// Применяем middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())

	// Создаем сервер
	server := &Server{
		router:      router,
		config:      cfg,
		nats:        natsClient,
		services:    services,
		sessions:    sessions,
		repos:       repos,
		stopWatcher: stopWatcher,
	}

	// Настраиваем роуты
	server.setupRoutes()

	return server
}

// setupRoutes настраивает все API роуты
func (s *Server) setupRoutes() {
	h := handlers.NewHandlers(s.services, s.sessions)

	// Session bootstrap is the only route reachable without a token
	s.router.POST("/api/sessions", h.StartSession)

	// API routes
	api := s.router.Group("/api")
	api.Use(middleware.SessionAuth(s.sessions))
	{
		// Session endpoints
		sessions := api.Group("/sessions")
		{
			sessions.GET("/current", h.GetSession)
			sessions.POST("/navigate", h.Navigate)
			sessions.POST("/signout", h.SignOut)
		}

		// Temple catalog endpoints
		temples := api.Group("/temples")
		{
			temples.GET("", h.ListTemples)
			temples.GET("/featured", h.FeaturedTemple)
		}

		// Booking endpoints
		bookings := api.Group("/bookings")
		{
			bookings.POST("", h.SubmitBooking)
		}

		// Ticket endpoints
		tickets := api.Group("/tickets")
		{
			tickets.GET("", h.ListTickets)
			tickets.GET("/:queueNumber", h.GetTicket)
		}

		// Directions endpoints
		directions := api.Group("/directions")
		{
			directions.POST("/estimate", h.EstimateTravel)
		}

		// Donation endpoints
		donations := api.Group("/donations")
		{
			donations.POST("", h.Donate)
		}

		// Live darshan endpoints
		streams := api.Group("/streams")
		{
			streams.GET("", h.ListStreams)
		}
	}

	// Health check endpoint
	s.router.GET("/health", s.healthCheck)

	// Prometheus metrics endpoint
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// healthCheck обрабатывает health check запросы
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "pilgrimpal-api",
		"version": "1.0.0",
	})
}

// Run запускает HTTP сервер
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%s", s.config.Port)
	return s.router.Run(addr)
}

// GetRouter возвращает роутер для тестирования
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// Cleanup закрывает соединения
func (s *Server) Cleanup() error {
	if s.stopWatcher != nil {
		s.stopWatcher()
	}

	if s.nats != nil {
		if err := s.nats.Close(); err != nil {
			log.Printf("Error closing NATS connection: %v", err)
			return err
		}
	}

	return nil
}
