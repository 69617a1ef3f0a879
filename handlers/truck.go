package handlers

import (
	"net/http"

	"food-truck-api/config"
	"food-truck-api/middleware"
	"food-truck-api/models"

	"github.com/gin-gonic/gin"
)

// ── Truck Management (owner) ────────────────────────────────────────────────

type CreateTruckRequest struct {
	Name string `json:"truckName" binding:"required"`
	Logo string `json:"truckLogo"`
}

// CreateTruck lets a truckOwner-role user register their truck (one per owner)
func CreateTruck(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var req CreateTruckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.Truck
	if err := config.DB.Where("owner_id = ?", ownerID).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "You already own a truck"})
		return
	}
	if err := config.DB.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Truck name already exists"})
		return
	}

	truck := models.Truck{
		OwnerID:     ownerID,
		Name:        req.Name,
		Logo:        req.Logo,
		TruckStatus: models.TruckAvailable,
		OrderStatus: models.TruckAvailable,
	}
	if err := config.DB.Create(&truck).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create truck"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Truck created successfully", "truck": truck})
}

// GetMyTruck fetches the truck owned by the logged-in user
func GetMyTruck(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var truck models.Truck
	if err := config.DB.Preload("MenuItems").Where("owner_id = ?", ownerID).First(&truck).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No truck found for your account"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"truck": truck})
}

type UpdateTruckOrderStatusRequest struct {
	OrderStatus models.TruckOrderStatus `json:"orderStatus" binding:"required"`
}

// UpdateTruckOrderStatus flips whether the truck is accepting new orders
func UpdateTruckOrderStatus(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var req UpdateTruckOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.OrderStatus != models.TruckAvailable && req.OrderStatus != models.TruckUnavailable {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order status. Must be: available or unavailable"})
		return
	}

	var truck models.Truck
	if err := config.DB.Where("owner_id = ?", ownerID).First(&truck).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No truck found for your account"})
		return
	}

	config.DB.Model(&truck).Update("order_status", req.OrderStatus)
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully", "truck": truck})
}

// GetTruckStats returns a small dashboard summary for the owner's truck
func GetTruckStats(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var truck models.Truck
	if err := config.DB.Where("owner_id = ?", ownerID).First(&truck).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No truck found for your account"})
		return
	}

	var menuCount, pendingCount, completedCount int64
	config.DB.Model(&models.MenuItem{}).
		Where("truck_id = ? AND status = ?", truck.ID, models.ItemAvailable).
		Count(&menuCount)
	config.DB.Model(&models.Order{}).
		Where("truck_id = ? AND status = ?", truck.ID, models.StatusPending).
		Count(&pendingCount)
	config.DB.Model(&models.Order{}).
		Where("truck_id = ? AND status = ?", truck.ID, models.StatusCompleted).
		Count(&completedCount)

	c.JSON(http.StatusOK, gin.H{
		"truck_name":            truck.Name,
		"truck_status":          truck.TruckStatus,
		"order_status":          truck.OrderStatus,
		"menu_item_count":       menuCount,
		"pending_order_count":   pendingCount,
		"completed_order_count": completedCount,
	})
}

// ── Public browsing ─────────────────────────────────────────────────────────

// ListTrucks returns all trucks (public)
func ListTrucks(c *gin.Context) {
	var trucks []models.Truck
	query := config.DB

	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	if open := c.Query("open"); open == "true" {
		query = query.Where("order_status = ?", models.TruckAvailable)
	}

	query.Order("id asc").Find(&trucks)
	c.JSON(http.StatusOK, gin.H{"count": len(trucks), "trucks": trucks})
}

// GetTruckMenu returns the available menu for a specific truck (public).
// Soft-deleted items never appear here.
func GetTruckMenu(c *gin.Context) {
	truckID := c.Param("id")
	var truck models.Truck
	if err := config.DB.First(&truck, truckID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Truck not found"})
		return
	}

	var items []models.MenuItem
	query := config.DB.Where("truck_id = ? AND status = ?", truckID, models.ItemAvailable)
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	query.Order("id asc").Find(&items)

	c.JSON(http.StatusOK, gin.H{
		"truck": truck.Name,
		"count": len(items),
		"menu":  items,
	})
}
