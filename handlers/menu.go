package handlers

import (
	"net/http"

	"food-truck-api/config"
	"food-truck-api/middleware"
	"food-truck-api/models"

	"github.com/gin-gonic/gin"
)

type CreateMenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	Category    string  `json:"category"`
}

// ownedTruck resolves the caller's truck or writes a 404
func ownedTruck(c *gin.Context) (*models.Truck, bool) {
	ownerID := middleware.GetUserID(c)
	var truck models.Truck
	if err := config.DB.Where("owner_id = ?", ownerID).First(&truck).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No truck found for your account"})
		return nil, false
	}
	return &truck, true
}

// AddMenuItem adds a new item to the truck's menu
func AddMenuItem(c *gin.Context) {
	truck, ok := ownedTruck(c)
	if !ok {
		return
	}

	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := req.Category
	if category == "" {
		category = "general"
	}

	item := models.MenuItem{
		TruckID:     truck.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    category,
		Status:      models.ItemAvailable,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add menu item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item was created successfully", "item": item})
}

// GetMyMenu lists every item on the caller's truck, including soft-deleted ones
func GetMyMenu(c *gin.Context) {
	truck, ok := ownedTruck(c)
	if !ok {
		return
	}
	var items []models.MenuItem
	config.DB.Where("truck_id = ?", truck.ID).Order("id asc").Find(&items)
	c.JSON(http.StatusOK, gin.H{"count": len(items), "menu": items})
}

type UpdateMenuItemRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Status      *string  `json:"status"`
}

// UpdateMenuItem partially updates a menu item (only by the truck's owner)
func UpdateMenuItem(c *gin.Context) {
	truck, ok := ownedTruck(c)
	if !ok {
		return
	}
	itemID := c.Param("itemId")

	var item models.MenuItem
	if err := config.DB.First(&item, itemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	if item.TruckID != truck.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You don't own this menu item"})
		return
	}

	var req UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := map[string]interface{}{}
	if req.Name != nil {
		update["name"] = *req.Name
	}
	if req.Description != nil {
		update["description"] = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be a non-negative number"})
			return
		}
		update["price"] = *req.Price
	}
	if req.Category != nil {
		update["category"] = *req.Category
	}
	if req.Status != nil {
		s := models.ItemStatus(*req.Status)
		if s != models.ItemAvailable && s != models.ItemUnavailable {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item status"})
			return
		}
		update["status"] = s
	}

	config.DB.Model(&item).Updates(update)
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated successfully", "item": item})
}

// DeleteMenuItem soft-deletes a menu item by flipping its status to
// unavailable. Historical order items keep pointing at it.
func DeleteMenuItem(c *gin.Context) {
	truck, ok := ownedTruck(c)
	if !ok {
		return
	}
	itemID := c.Param("itemId")

	var item models.MenuItem
	if err := config.DB.First(&item, itemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	if item.TruckID != truck.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You don't own this menu item"})
		return
	}

	config.DB.Model(&item).Update("status", models.ItemUnavailable)
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted successfully"})
}
