package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tuffahtayn/delivery-api/config"
	"github.com/tuffahtayn/delivery-api/controllers"
	"github.com/tuffahtayn/delivery-api/middleware"
	"github.com/tuffahtayn/delivery-api/models"
	"github.com/tuffahtayn/delivery-api/repository"
	"github.com/tuffahtayn/delivery-api/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	db, err := config.OpenDatabase()
	if err != nil {
		logger.Fatalw("Failed to open database", "error", err)
	}
	if err := repository.Migrate(db); err != nil {
		logger.Fatalw("Failed to migrate database", "error", err)
	}
	if err := repository.Seed(db); err != nil {
		logger.Fatalw("Failed to seed session data", "error", err)
	}
	logger.Info("Session dataset seeded")

	orders := repository.NewOrders(db)
	directory := repository.NewDirectory(db)
	notifier := services.NewNotifier(cfg.NotificationTTL)
	defer notifier.Close()
	rejections := services.NewRejections()

	router := newRouter(cfg, orders, directory, notifier, rejections, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Simulated feed of incoming orders; canceled with the process context.
	if cfg.SimulateFeed {
		source := services.NewSimulatedSource(ctx, cfg.FeedDelay)
		go consumeFeed(source, orders, logger)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Infof("Server is running on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalw("Server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorw("Shutdown error", "error", err)
	}
}

// newRouter builds the full role-gated API surface.
func newRouter(
	cfg *config.Config,
	orders *repository.Orders,
	directory *repository.Directory,
	notifier *services.Notifier,
	rejections *services.Rejections,
	logger *zap.SugaredLogger,
) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(cors.Default())

	authController := controllers.NewAuthController(cfg, directory, logger)
	storeController := controllers.NewStoreController(orders, logger)
	courierController := controllers.NewCourierController(orders, rejections, notifier, logger)
	supervisorController := controllers.NewSupervisorController(orders, directory, logger)

	authenticated := middleware.EnsureValidToken(cfg.JWTSecret)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)

		v1.POST("/auth/login", authController.Login)
		v1.POST("/auth/logout", authController.Logout)

		store := v1.Group("/store", authenticated, middleware.RequireRole(models.RoleStore))
		{
			store.POST("/orders", storeController.CreateOrder)
			store.GET("/orders", storeController.ListOrders)
		}

		courier := v1.Group("/courier", authenticated, middleware.RequireRole(models.RoleCourier))
		{
			courier.GET("/orders/new", courierController.ListNew)
			courier.GET("/orders/mine", courierController.ListMine)
			courier.GET("/earnings", courierController.Earnings)
			courier.POST("/orders/:id/accept", courierController.Accept)
			courier.POST("/orders/:id/complete", courierController.Complete)
			courier.POST("/orders/:id/reject", courierController.Reject)
			courier.DELETE("/notification", courierController.DismissNotification)
		}

		supervisor := v1.Group("/supervisor", authenticated, middleware.RequireRole(models.RoleSupervisor))
		{
			supervisor.GET("/summary", supervisorController.Summary)
			supervisor.GET("/stores", supervisorController.ListStores)
			supervisor.GET("/couriers", supervisorController.ListCouriers)
		}
	}

	return router
}

// consumeFeed appends every order the source emits through the record store.
func consumeFeed(source services.OrderSource, orders *repository.Orders, logger *zap.SugaredLogger) {
	for draft := range source.Orders() {
		order, err := orders.Create(draft)
		if err != nil {
			logger.Errorw("Failed to append order from feed", "error", err)
			continue
		}
		logger.Infow("Order arrived from feed", "order_id", order.ID, "store_id", order.StoreID)
	}
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Delivery platform API is running",
	})
}
