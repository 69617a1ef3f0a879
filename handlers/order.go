package handlers

import (
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"food-truck-api/config"
	"food-truck-api/middleware"
	"food-truck-api/models"
	"food-truck-api/statemachine"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	errEmptyCart        = errors.New("cart is empty")
	errMultiTruck       = errors.New("cannot order from multiple trucks")
	errTruckUnavailable = errors.New("truck is not accepting orders")
	errCartConsumed     = errors.New("cart was consumed by a concurrent order")
)

// placeLocks serializes order placement per user. A concurrent duplicate that
// slips past the lock (e.g. across processes) is still caught by the
// delete-guard inside the transaction.
var placeLocks sync.Map

func userLock(userID uint) *sync.Mutex {
	mu, _ := placeLocks.LoadOrStore(userID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

type PlaceOrderRequest struct {
	ScheduledPickupTime time.Time `json:"scheduledPickupTime" binding:"required"`
}

// PlaceOrder converts the caller's cart into an immutable order. The cart
// read, order insert, order-item inserts and cart clear run in one
// transaction; any failure rolls the whole unit back.
func PlaceOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "scheduledPickupTime is required (RFC 3339)"})
		return
	}

	mu := userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	var order models.Order
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var lines []models.CartLine
		if err := tx.Where("user_id = ?", userID).Order("id asc").Find(&lines).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return errEmptyCart
		}

		truckID := lines[0].TruckID
		for _, line := range lines {
			if line.TruckID != truckID {
				return errMultiTruck
			}
		}

		var truck models.Truck
		if err := tx.First(&truck, truckID).Error; err != nil {
			return err
		}
		if truck.OrderStatus != models.TruckAvailable {
			return errTruckUnavailable
		}

		var total float64
		for _, line := range lines {
			total += line.Price * float64(line.Quantity)
		}

		order = models.Order{
			UserID:              userID,
			TruckID:             truckID,
			Status:              models.StatusPending,
			TotalPrice:          total,
			ScheduledPickupTime: req.ScheduledPickupTime,
			OrderDate:           time.Now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, line := range lines {
			oi := models.OrderItem{
				OrderID:  order.ID,
				ItemID:   line.ItemID,
				Quantity: line.Quantity,
				Price:    line.Price,
			}
			if err := tx.Create(&oi).Error; err != nil {
				return err
			}
		}

		// The clear must consume exactly the snapshotted lines; otherwise a
		// concurrent placement already took them and this unit must not commit.
		res := tx.Where("user_id = ?", userID).Delete(&models.CartLine{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != int64(len(lines)) {
			return errCartConsumed
		}
		return nil
	})

	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{
			"message":  "Order placed successfully",
			"orderId":  order.ID,
			"total":    order.TotalPrice,
			"status":   order.Status,
			"truck_id": order.TruckID,
		})
	case errors.Is(err, errEmptyCart), errors.Is(err, errCartConsumed):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
	case errors.Is(err, errMultiTruck):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot order from multiple trucks. Please adjust your cart."})
	case errors.Is(err, errTruckUnavailable):
		c.JSON(http.StatusBadRequest, gin.H{"error": "This truck does not process orders at the moment"})
	default:
		log.Printf("place order failed for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not place order"})
	}
}

// GetMyOrders returns all orders for the logged-in customer, newest first
func GetMyOrders(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var orders []models.Order
	config.DB.Preload("Truck").
		Where("user_id = ?", userID).
		Order("order_date desc").
		Find(&orders)

	projections := make([]gin.H, 0, len(orders))
	for _, o := range orders {
		projections = append(projections, gin.H{
			"order_id":              o.ID,
			"truck_id":              o.TruckID,
			"truck_name":            o.Truck.Name,
			"status":                o.Status,
			"total_price":           o.TotalPrice,
			"scheduled_pickup_time": o.ScheduledPickupTime,
			"order_date":            o.OrderDate,
		})
	}
	c.JSON(http.StatusOK, gin.H{"count": len(projections), "orders": projections})
}

// GetOrderDetail returns one order with its items. Visible to the placing
// customer or the owner of the truck it was placed with.
func GetOrderDetail(c *gin.Context) {
	userID := middleware.GetUserID(c)
	role := middleware.GetRole(c)
	orderID := c.Param("id")

	var order models.Order
	if err := config.DB.Preload("Items.Item").Preload("Truck").First(&order, orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	switch role {
	case models.RoleCustomer:
		if order.UserID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
			return
		}
	case models.RoleTruckOwner:
		if order.Truck.OwnerID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to your truck"})
			return
		}
	default:
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}

// CancelOrder lets a customer cancel their own order while it is still pending
func CancelOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)
	orderID := c.Param("id")

	var order models.Order
	if err := config.DB.First(&order, orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}

	if err := statemachine.CanTransition(order.Status, models.StatusCancelled, "customer"); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":         "Cannot cancel order",
			"reason":        err.Error(),
			"current_state": order.Status,
		})
		return
	}

	config.DB.Model(&order).Update("status", models.StatusCancelled)
	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled successfully", "order_id": order.ID})
}
