package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"order_kiosk/internal/models"
	"order_kiosk/internal/services"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// CreateOrder handles POST /api/businesses/:business_id/orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	businessID, ok := uintParam(c, "business_id")
	if !ok {
		return
	}

	var req models.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.orderService.PlaceOrder(c.Request.Context(), businessID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"status":       order.Status,
		"total_amount": order.TotalAmount,
		"line_items":   order.LineItems,
	})
}

// GetOrder handles GET /api/businesses/:business_id/orders/:order_id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	businessID, ok := uintParam(c, "business_id")
	if !ok {
		return
	}
	orderID, ok := uintParam(c, "order_id")
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(businessID, orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// ListOrders handles GET /api/businesses/:business_id/orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	businessID, ok := uintParam(c, "business_id")
	if !ok {
		return
	}

	orders, err := h.orderService.ListOrders(businessID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// UpdateStatus handles PATCH /api/orders/:order_id/status (admin only,
// auth handled upstream)
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID, ok := uintParam(c, "order_id")
	if !ok {
		return
	}

	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.orderService.UpdateStatus(orderID, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"order_id": order.ID,
		"status":   order.Status,
	})
}

func uintParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(value), true
}
