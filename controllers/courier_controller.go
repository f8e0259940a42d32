package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tuffahtayn/delivery-api/middleware"
	"github.com/tuffahtayn/delivery-api/models"
	"github.com/tuffahtayn/delivery-api/repository"
	"github.com/tuffahtayn/delivery-api/services"
)

// CourierController serves the courier dashboard: the system-wide new-orders
// tab, the courier's own deliveries, earnings, and the lifecycle actions.
type CourierController struct {
	orders     *repository.Orders
	rejections *services.Rejections
	notifier   *services.Notifier
	logger     *zap.SugaredLogger
}

// NewCourierController wires the courier controller.
func NewCourierController(orders *repository.Orders, rejections *services.Rejections, notifier *services.Notifier, logger *zap.SugaredLogger) *CourierController {
	return &CourierController{orders: orders, rejections: rejections, notifier: notifier, logger: logger}
}

// ListNew handles GET /api/v1/courier/orders/new - every pending order on
// the platform, minus the ones this courier has rejected. Each read
// re-derives the subset and feeds its size to the notification watcher.
func (cc *CourierController) ListNew(c *gin.Context) {
	courierID, ok := cc.actorID(c)
	if !ok {
		return
	}

	snapshot, err := cc.orders.List()
	if err != nil {
		cc.failDatabase(c, "Failed to load orders", err)
		return
	}

	visible := cc.rejections.Filter(services.NewOrders(snapshot), courierID)

	notification := cc.notifier.Observe(courierID, len(visible))
	if notification == nil {
		notification = cc.notifier.Active(courierID)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"orders":       models.WithLabels(visible),
			"count":        len(visible),
			"notification": notification,
		},
	})
}

// ListMine handles GET /api/v1/courier/orders/mine - the courier's orders
// currently in delivery
func (cc *CourierController) ListMine(c *gin.Context) {
	courierID, ok := cc.actorID(c)
	if !ok {
		return
	}

	snapshot, err := cc.orders.List()
	if err != nil {
		cc.failDatabase(c, "Failed to load orders", err)
		return
	}

	mine := services.ActiveForCourier(snapshot, courierID)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"orders": models.WithLabels(mine),
		},
	})
}

// Earnings handles GET /api/v1/courier/earnings - total delivery fees earned
// over the courier's delivered orders
func (cc *CourierController) Earnings(c *gin.Context) {
	courierID, ok := cc.actorID(c)
	if !ok {
		return
	}

	snapshot, err := cc.orders.List()
	if err != nil {
		cc.failDatabase(c, "Failed to load orders", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"total": services.Earnings(snapshot, courierID),
		},
	})
}

// Accept handles POST /api/v1/courier/orders/:id/accept - claims a pending
// order. When two couriers race, exactly one claim succeeds.
func (cc *CourierController) Accept(c *gin.Context) {
	courierID, ok := cc.actorID(c)
	if !ok {
		return
	}
	orderID, ok := cc.orderIDParam(c)
	if !ok {
		return
	}

	order, err := cc.orders.Accept(orderID, courierID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrOrderNotFound):
			cc.failNotFound(c)
		case errors.Is(err, repository.ErrOrderTaken):
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "ORDER_TAKEN",
					"message": "Another courier already accepted this order",
				},
			})
		case errors.Is(err, repository.ErrInvalidStatus):
			cc.failInvalidStatus(c, "Only pending orders can be accepted")
		default:
			cc.failDatabase(c, "Failed to accept order", err)
		}
		return
	}

	cc.logger.Infow("Order accepted", "order_id", order.ID, "courier_id", courierID)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order.WithLabel(),
	})
}

// Complete handles POST /api/v1/courier/orders/:id/complete - marks one of
// the courier's own in-delivery orders as delivered
func (cc *CourierController) Complete(c *gin.Context) {
	courierID, ok := cc.actorID(c)
	if !ok {
		return
	}
	orderID, ok := cc.orderIDParam(c)
	if !ok {
		return
	}

	order, err := cc.orders.Complete(orderID, courierID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrOrderNotFound):
			cc.failNotFound(c)
		case errors.Is(err, repository.ErrNotAssignee):
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_ASSIGNEE",
					"message": "This order is assigned to another courier",
				},
			})
		case errors.Is(err, repository.ErrInvalidStatus):
			cc.failInvalidStatus(c, "Only in-delivery orders can be completed")
		default:
			cc.failDatabase(c, "Failed to complete order", err)
		}
		return
	}

	cc.logger.Infow("Order delivered", "order_id", order.ID, "courier_id", courierID)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order.WithLabel(),
	})
}

// Reject handles POST /api/v1/courier/orders/:id/reject - hides a pending
// order from this courier's new tab. The order stays pending for everyone
// else; rejection is never a global transition.
func (cc *CourierController) Reject(c *gin.Context) {
	courierID, ok := cc.actorID(c)
	if !ok {
		return
	}
	orderID, ok := cc.orderIDParam(c)
	if !ok {
		return
	}

	order, err := cc.orders.Get(orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			cc.failNotFound(c)
		} else {
			cc.failDatabase(c, "Failed to load order", err)
		}
		return
	}
	if order.Status != models.StatusPending {
		cc.failInvalidStatus(c, "Only pending orders can be rejected")
		return
	}

	cc.rejections.Reject(courierID, orderID)
	cc.logger.Infow("Order rejected", "order_id", orderID, "courier_id", courierID)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order removed from your new orders",
	})
}

// DismissNotification handles DELETE /api/v1/courier/notification - clears
// the courier's notification ahead of its auto-dismiss
func (cc *CourierController) DismissNotification(c *gin.Context) {
	courierID, ok := cc.actorID(c)
	if !ok {
		return
	}

	cc.notifier.Dismiss(courierID)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Notification dismissed",
	})
}

func (cc *CourierController) actorID(c *gin.Context) (uint, bool) {
	courierID, err := middleware.GetActorID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UNAUTHORIZED",
				"message": "Could not extract session information",
			},
		})
		return 0, false
	}
	return courierID, true
}

func (cc *CourierController) orderIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Order id must be a positive integer",
			},
		})
		return 0, false
	}
	return uint(id), true
}

func (cc *CourierController) failNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "ORDER_NOT_FOUND",
			"message": "No order with that id exists",
		},
	})
}

func (cc *CourierController) failInvalidStatus(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "INVALID_STATUS",
			"message": message,
		},
	})
}

func (cc *CourierController) failDatabase(c *gin.Context, message string, err error) {
	cc.logger.Errorw(message, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "DATABASE_ERROR",
			"message": message,
		},
	})
}
