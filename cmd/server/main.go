package main

import (
	"os"
	"time"

	"shop-backend/internal/controllers/http"
	mmysql "shop-backend/internal/infra/mysql"
	"shop-backend/internal/infra/rabbitmq"
	cartredis "shop-backend/internal/infra/redis"
	mysqlrepo "shop-backend/internal/repository/mysql"
	"shop-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()

	db, err := mmysql.NewMySQLFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("db: connect")
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	redisClient := redis.NewClient(&redis.Options{
		Addr:         os.Getenv("REDIS_HOST") + ":6379",
		DB:           0,
		PoolSize:     100,
		MinIdleConns: 10,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})

	publisher, err := rabbitmq.NewPublisher(os.Getenv("RABBITMQ_URL"), "order.exchange")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init publisher")
	}
	defer publisher.Close()

	orderRepo := mysqlrepo.NewOrderRepository(db)
	productRepo := mysqlrepo.NewProductRepository(db)

	productService := services.NewProductService(productRepo)
	productService.SetRedisClient(redisClient)

	cartStore := cartredis.NewCartStore(redisClient)

	orderService := services.NewOrderService(orderRepo, productService, cartStore, publisher)

	handler := http.NewHandler(orderService, productService, cartStore)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	handler.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Info().Str("port", port).Msg("starting shop backend")
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server run")
	}
}
