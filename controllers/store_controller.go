package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tuffahtayn/delivery-api/middleware"
	"github.com/tuffahtayn/delivery-api/models"
	"github.com/tuffahtayn/delivery-api/repository"
	"github.com/tuffahtayn/delivery-api/services"
)

// StoreController serves the store dashboard: placing orders and the
// current/past order tabs.
type StoreController struct {
	orders *repository.Orders
	logger *zap.SugaredLogger
}

// NewStoreController wires the store controller.
func NewStoreController(orders *repository.Orders, logger *zap.SugaredLogger) *StoreController {
	return &StoreController{orders: orders, logger: logger}
}

// CreateOrderRequest represents the request body for placing an order
type CreateOrderRequest struct {
	CustomerName string           `json:"customer_name" binding:"required"`
	Address      string           `json:"address" binding:"required"`
	Value        *decimal.Decimal `json:"value" binding:"required"`
	Fee          *decimal.Decimal `json:"fee" binding:"required"`
	Notes        string           `json:"notes"`
}

// CreateOrder handles POST /api/v1/store/orders - places a new order for the
// store bound to the session
func (s *StoreController) CreateOrder(c *gin.Context) {
	storeID, err := middleware.GetActorID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UNAUTHORIZED",
				"message": "Could not extract session information",
			},
		})
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	if req.Value.IsNegative() || req.Fee.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Order value and delivery fee must be non-negative",
			},
		})
		return
	}

	order, err := s.orders.Create(repository.OrderDraft{
		CustomerName: req.CustomerName,
		Address:      req.Address,
		Notes:        req.Notes,
		Value:        *req.Value,
		Fee:          *req.Fee,
		StoreID:      storeID,
	})
	if err != nil {
		s.logger.Errorw("Failed to create order", "store_id", storeID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create order",
			},
		})
		return
	}

	s.logger.Infow("Order created", "order_id", order.ID, "store_id", storeID)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    order.WithLabel(),
	})
}

// ListOrders handles GET /api/v1/store/orders - returns the store's orders
// partitioned into the current and past dashboard tabs
func (s *StoreController) ListOrders(c *gin.Context) {
	storeID, err := middleware.GetActorID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UNAUTHORIZED",
				"message": "Could not extract session information",
			},
		})
		return
	}

	orders, err := s.orders.ListByStore(storeID)
	if err != nil {
		s.logger.Errorw("Failed to list store orders", "store_id", storeID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load orders",
			},
		})
		return
	}

	partition := services.PartitionForStore(orders, storeID)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"current": models.WithLabels(partition.Current),
			"past":    models.WithLabels(partition.Past),
		},
	})
}
