package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/itsraghul/hearty-foods/config"
	"github.com/itsraghul/hearty-foods/controllers"
	"github.com/itsraghul/hearty-foods/database"
	"github.com/itsraghul/hearty-foods/logger"
	"github.com/itsraghul/hearty-foods/payment"
	"github.com/itsraghul/hearty-foods/repository"
	"github.com/itsraghul/hearty-foods/routes"
	"github.com/itsraghul/hearty-foods/services"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger.Initialize(cfg.Env)
	log := logger.Log
	defer log.Sync()

	ctx := context.Background()

	// --- Stores ---
	mongoClient, db, err := database.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("MongoDB connection failed", zap.Error(err))
	}
	defer database.CloseMongo(context.Background(), mongoClient)

	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatal("Index creation failed", zap.Error(err))
	}

	redisClient, err := database.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal("Redis connection failed", zap.Error(err))
	}
	defer redisClient.Close()

	// --- Service wiring ---
	dishRepo := repository.NewDishRepository(db)
	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	dishService := services.NewDishService(dishRepo, log)
	userService := services.NewUserService(userRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	orderService := services.NewOrderService(orderRepo, userRepo, log)
	summaryService := services.NewSummaryService(orderRepo, userRepo, dishRepo, log)

	uploadService, err := services.NewUploadService(ctx, cfg, log)
	if err != nil {
		log.Fatal("Upload service init failed", zap.Error(err))
	}

	var gateway payment.Gateway
	if cfg.StripeSecretKey != "" {
		gateway = payment.NewStripeGateway(cfg.StripeSecretKey)
	}

	// --- HTTP router ---
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(func(c *gin.Context) {
		reqCtx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(reqCtx)
		c.Next()
	})

	routes.Register(r, routes.Controllers{
		Dishes: controllers.NewDishController(dishService),
		Users:  controllers.NewUserController(userService),
		Orders: controllers.NewOrderController(orderService, gateway, cfg.PayPalClientID),
		Plate:  controllers.NewPlateController(redisClient, cfg.PlateTTL, dishService),
		Admin:  controllers.NewAdminController(summaryService, uploadService),
		Seed:   controllers.NewSeedController(userRepo, dishRepo, log),
	}, cfg.JWTSecret, !cfg.IsProduction())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}

	go func() {
		log.Info("hearty-foods starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down hearty-foods...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("hearty-foods stopped gracefully")
}
