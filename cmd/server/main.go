package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/Ravi2k3/E-commerce-assessment/internal/cache"
	"github.com/Ravi2k3/E-commerce-assessment/internal/cart"
	"github.com/Ravi2k3/E-commerce-assessment/internal/catalog"
	"github.com/Ravi2k3/E-commerce-assessment/internal/checkout"
	"github.com/Ravi2k3/E-commerce-assessment/internal/discount"
	h "github.com/Ravi2k3/E-commerce-assessment/internal/http"
	"github.com/Ravi2k3/E-commerce-assessment/internal/orders"
)

type Config struct {
	HTTPPort        string
	MilestoneN      int
	DiscountRate    float64
	AdminUsername   string
	AdminPassword   string
	RedisAddr       string
	RedisPassword   string
	StaticDir       string
	CORSOrigins     []string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		MilestoneN:      getEnvInt("NTH_ORDER_FOR_DISCOUNT", 5),
		DiscountRate:    getEnvFloat("DISCOUNT_RATE", 0.10),
		AdminUsername:   getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:   getEnv("ADMIN_PASSWORD", "admin"),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		StaticDir:       getEnv("STATIC_DIR", ""),
		CORSOrigins:     splitEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:5174"),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func splitEnv(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func main() {
	cfg := loadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Seed the catalog; all other state starts empty and lives only
	// for this process.
	cat := catalog.New(catalog.Seed())

	var cartCache cache.CartCache = cache.Noop{}
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		defer redisClient.Close()
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Fatal("redis connection failed", zap.Error(err))
		}
		logger.Info("redis connected", zap.String("addr", cfg.RedisAddr))
		cartCache = cache.NewRedisCache(redisClient)
	}

	carts := cart.NewService(cart.NewMemoryStore(), cat, cartCache, logger)
	registry := discount.NewRegistry()
	generator := discount.NewGenerator(registry, cfg.MilestoneN, logger)
	ledger := orders.NewLedger()
	checkoutSvc := checkout.NewService(carts, cat, registry, ledger, cfg.DiscountRate, logger)

	router := h.NewRouter(h.RouterConfig{
		AdminUsername:  cfg.AdminUsername,
		AdminPassword:  cfg.AdminPassword,
		CORSOrigins:    cfg.CORSOrigins,
		StaticDir:      cfg.StaticDir,
		RequestTimeout: cfg.RequestTimeout,
	}, h.Handlers{
		Products:  h.NewProductHandler(cat),
		Carts:     h.NewCartHandler(carts),
		Checkout:  h.NewCheckoutHandler(checkoutSvc),
		Discounts: h.NewDiscountHandler(registry),
		Admin:     h.NewAdminHandler(checkoutSvc, generator),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(router, "commerce-server"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			zap.String("port", cfg.HTTPPort),
			zap.Int("milestone_n", cfg.MilestoneN),
			zap.Float64("discount_rate", cfg.DiscountRate))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}
	logger.Info("server exited")
}
