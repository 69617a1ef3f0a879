package handlers

import (
	"net/http"

	"food-truck-api/config"
	"food-truck-api/models"
	"food-truck-api/statemachine"

	"github.com/gin-gonic/gin"
)

// GetTruckOrders returns all orders for the owner's truck with customer info
func GetTruckOrders(c *gin.Context) {
	truck, ok := ownedTruck(c)
	if !ok {
		return
	}

	var orders []models.Order
	query := config.DB.Preload("User").Where("truck_id = ?", truck.ID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	query.Order("order_date desc").Find(&orders)

	// Per-status counts for the owner dashboard
	summary := map[string]int{}
	projections := make([]gin.H, 0, len(orders))
	for _, o := range orders {
		summary[string(o.Status)]++
		projections = append(projections, gin.H{
			"order_id":              o.ID,
			"status":                o.Status,
			"total_price":           o.TotalPrice,
			"scheduled_pickup_time": o.ScheduledPickupTime,
			"order_date":            o.OrderDate,
			"customer_name":         o.User.Name,
			"customer_email":        o.User.Email,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"truck":         truck.Name,
		"order_summary": summary,
		"count":         len(projections),
		"orders":        projections,
	})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus moves an order through the lifecycle. Only transitions in
// the state machine table are allowed; free-form overwrites are rejected.
func UpdateOrderStatus(c *gin.Context) {
	truck, ok := ownedTruck(c)
	if !ok {
		return
	}
	orderID := c.Param("id")

	var order models.Order
	if err := config.DB.First(&order, orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.TruckID != truck.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Order not found or not associated with your truck"})
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order status"})
		return
	}

	if err := statemachine.CanTransition(order.Status, req.Status, "truckOwner"); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    order.Status,
			"requested":         req.Status,
			"reason":            err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(order.Status),
		})
		return
	}

	prevStatus := order.Status
	config.DB.Model(&order).Update("status", req.Status)

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated successfully",
		"previous_status": prevStatus,
		"order": gin.H{
			"order_id":    order.ID,
			"status":      req.Status,
			"total_price": order.TotalPrice,
		},
	})
}

// GetStateMachineInfo returns the full transition table for documentation
func GetStateMachineInfo(c *gin.Context) {
	transitions := statemachine.GetAllTransitions()
	info := make([]gin.H, 0, len(transitions))
	for _, t := range transitions {
		info = append(info, gin.H{"from": t.From, "to": t.To, "actor": t.Actor})
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   info,
		"terminal_states": []models.OrderStatus{models.StatusCompleted, models.StatusCancelled},
		"description":     "Food Truck Order Lifecycle State Machine",
	})
}
