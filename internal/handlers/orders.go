package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Arjit-Adhikari/qr-order/internal/models"
	"github.com/Arjit-Adhikari/qr-order/internal/services"
	"github.com/Arjit-Adhikari/qr-order/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// PlaceOrder accepts a customer order for a table (public).
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req models.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid request payload", err.Error()))
		return
	}

	orderID, err := h.orderService.Place(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrTableRequired) || errors.Is(err, services.ErrNoValidItems) {
			c.JSON(http.StatusBadRequest, utils.ErrorResponse(err.Error(), ""))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to place order", ""))
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse(gin.H{"orderId": orderID}))
}

// ListOrders returns the most recent orders, newest first.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to load orders", ""))
		return
	}

	c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus moves an order to a new status (admin).
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid request payload", err.Error()))
		return
	}

	err := h.orderService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, utils.ErrorResponse(err.Error(), ""))
		case errors.Is(err, services.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, utils.ErrorResponse(err.Error(), ""))
		default:
			c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to update order", ""))
		}
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse(nil))
}

// DeleteOrder removes an order permanently (admin).
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	err := h.orderService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse(err.Error(), ""))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to delete order", ""))
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse(nil))
}
