package main

import (
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	chatapp "github.com/muhammadheryan/marketplace/application/chat"
	orderapp "github.com/muhammadheryan/marketplace/application/order"
	productapp "github.com/muhammadheryan/marketplace/application/product"
	userapp "github.com/muhammadheryan/marketplace/application/user"
	"github.com/muhammadheryan/marketplace/cmd/config"
	redisclient "github.com/muhammadheryan/marketplace/cmd/redis"
	_ "github.com/muhammadheryan/marketplace/docs"
	chatRepo "github.com/muhammadheryan/marketplace/repository/chat"
	orderRepo "github.com/muhammadheryan/marketplace/repository/order"
	productRepo "github.com/muhammadheryan/marketplace/repository/product"
	redisRepo "github.com/muhammadheryan/marketplace/repository/redis"
	txRepo "github.com/muhammadheryan/marketplace/repository/tx"
	userRepo "github.com/muhammadheryan/marketplace/repository/user"
	"github.com/muhammadheryan/marketplace/thirdparty/rabbitmq"
	"github.com/muhammadheryan/marketplace/transport"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"go.uber.org/zap"
)

// @title MARKETPLACE API
// @version 1.0
// @description Marketplace API Documentation
// @host localhost:8000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment, cfg.ServiceName); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Order events are optional; without a broker orders are still placed.
	var publisher orderapp.EventPublisher
	if cfg.RabbitMQ.Enabled {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer p.Close()
		publisher = p
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	ChatRepo := chatRepo.NewChatRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	ProductApp := productapp.NewProductApp(TxRepo, ProductRepo, UserRepo)
	OrderApp := orderapp.NewOrderApp(TxRepo, OrderRepo, ProductRepo, publisher)
	ChatApp := chatapp.NewChatApp(ChatRepo, UserRepo)

	limiter := transport.NewLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	httpTransport := transport.NewTransport(cfg, UserApp, ProductApp, OrderApp, ChatApp, limiter)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
