package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Arjit-Adhikari/qr-order/internal/auth"
	"github.com/Arjit-Adhikari/qr-order/internal/config"
	"github.com/Arjit-Adhikari/qr-order/internal/handlers"
	"github.com/Arjit-Adhikari/qr-order/internal/logger"
	"github.com/Arjit-Adhikari/qr-order/internal/middleware"
	"github.com/Arjit-Adhikari/qr-order/internal/services"
	"github.com/Arjit-Adhikari/qr-order/internal/storage"
)

// Global logger instance
var log *logger.Logger

func main() {
	log = logger.NewLogger()
	defer log.Close()

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Warn("ENV", "Error loading .env file, using environment variables")
	}

	log.LogProcess("STARTUP", "QR Order backend starting up...")

	cfg := config.Load()
	log.Info("CONFIG", "Configuration loaded successfully")

	var store storage.Store
	if cfg.MockStore {
		log.Warn("DATABASE", "MOCK_STORE enabled, orders and menu are not persisted")
		store = storage.NewInMemoryStore()
	} else {
		if cfg.Mongo.URI == "" {
			log.Fatal("DATABASE", "MONGO_URI is not set")
		}
		log.LogProcess("DATABASE", "Initializing MongoDB...")
		mongoStore, err := storage.NewMongoStore(context.Background(), cfg.Mongo, log)
		if err != nil {
			log.Fatal("DATABASE", "Failed to initialize MongoDB: "+err.Error())
		}
		store = mongoStore
	}
	defer store.Close(context.Background())

	// One-time menu seeding; blocks until done, failures are logged and
	// swallowed so startup never aborts here.
	services.NewSeeder(store, log, cfg.SeedFile).Run(context.Background())

	authn := auth.NewStaticAuthenticator(cfg.Admin)
	menuService := services.NewMenuService(store, log)
	orderService := services.NewOrderService(store, log)
	log.LogProcess("SERVICE", "Menu and order services initialized")

	menuHandler := handlers.NewMenuHandler(menuService)
	orderHandler := handlers.NewOrderHandler(orderService)
	log.LogProcess("HANDLER", "All handlers initialized")

	router := setupRouter(cfg, authn, menuHandler, orderHandler)
	log.LogProcess("ROUTER", "HTTP router configured")

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.LogProcess("SERVER", "Starting HTTP server on port "+cfg.Server.Port)
		log.Info("STARTUP", "QR Order backend is ready to accept requests")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("SERVER", "Server failed to start: "+err.Error())
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Warn("SHUTDOWN", "Received shutdown signal, initiating graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("SHUTDOWN", "Server forced to shutdown: "+err.Error())
	}

	log.Info("SHUTDOWN", "QR Order backend shutdown completed")
}

func setupRouter(cfg *config.Config, authn auth.Authenticator, menuHandler *handlers.MenuHandler, orderHandler *handlers.OrderHandler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(middleware.EnhancedLogger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS())

	requireAdmin := middleware.RequireAdmin(authn, log)

	// Static pages
	router.StaticFile("/", filepath.Join(cfg.PublicDir, "index.html"))
	router.StaticFile("/index.html", filepath.Join(cfg.PublicDir, "index.html"))
	router.GET("/admin", requireAdmin, func(c *gin.Context) {
		c.File(filepath.Join(cfg.PublicDir, "admin.html"))
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC(),
			"service":   "qr-order",
		})
	})

	// API routes
	api := router.Group("/api")
	{
		api.GET("/menu", menuHandler.GetMenu)

		admin := api.Group("/admin", requireAdmin)
		{
			admin.POST("/seed-menu", menuHandler.SeedMenu)
		}

		orders := api.Group("/orders")
		{
			orders.POST("", orderHandler.PlaceOrder)

			// Policy decision: the order list is admin-gated unless
			// ORDERS_PUBLIC opens it up.
			if cfg.OrdersPublic {
				orders.GET("", orderHandler.ListOrders)
			} else {
				orders.GET("", requireAdmin, orderHandler.ListOrders)
			}

			orders.PATCH("/:id", requireAdmin, orderHandler.UpdateOrderStatus)
			orders.DELETE("/:id", requireAdmin, orderHandler.DeleteOrder)
		}
	}

	log.LogProcess("ROUTER", "All routes registered successfully")
	return router
}
