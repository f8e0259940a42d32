package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tuffahtayn/delivery-api/repository"
	"github.com/tuffahtayn/delivery-api/services"
)

// SupervisorController serves the supervisor dashboard: platform-wide
// aggregate counts and the user-management listings.
type SupervisorController struct {
	orders    *repository.Orders
	directory *repository.Directory
	logger    *zap.SugaredLogger
}

// NewSupervisorController wires the supervisor controller.
func NewSupervisorController(orders *repository.Orders, directory *repository.Directory, logger *zap.SugaredLogger) *SupervisorController {
	return &SupervisorController{orders: orders, directory: directory, logger: logger}
}

// Summary handles GET /api/v1/supervisor/summary - aggregate counts over the
// full order collection
func (s *SupervisorController) Summary(c *gin.Context) {
	orders, err := s.orders.List()
	if err != nil {
		s.failDatabase(c, "Failed to load orders", err)
		return
	}
	stores, err := s.directory.Stores()
	if err != nil {
		s.failDatabase(c, "Failed to load stores", err)
		return
	}
	couriers, err := s.directory.Couriers()
	if err != nil {
		s.failDatabase(c, "Failed to load couriers", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    services.BuildSummary(orders, stores, couriers),
	})
}

// ListStores handles GET /api/v1/supervisor/stores - every registered store
func (s *SupervisorController) ListStores(c *gin.Context) {
	stores, err := s.directory.Stores()
	if err != nil {
		s.failDatabase(c, "Failed to load stores", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stores,
	})
}

// ListCouriers handles GET /api/v1/supervisor/couriers - every registered
// courier with their active flag
func (s *SupervisorController) ListCouriers(c *gin.Context) {
	couriers, err := s.directory.Couriers()
	if err != nil {
		s.failDatabase(c, "Failed to load couriers", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    couriers,
	})
}

func (s *SupervisorController) failDatabase(c *gin.Context, message string, err error) {
	s.logger.Errorw(message, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "DATABASE_ERROR",
			"message": message,
		},
	})
}
