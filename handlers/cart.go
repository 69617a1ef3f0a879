package handlers

import (
	"net/http"

	"food-truck-api/config"
	"food-truck-api/middleware"
	"food-truck-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddToCartRequest struct {
	ItemID   uint `json:"itemId" binding:"required"`
	Quantity int  `json:"quantity" binding:"required"`
	// Accepted for wire compatibility with older clients; the snapshot price
	// always comes from the catalog.
	Price *float64 `json:"price"`
}

// AddToCart inserts a cart line or increments an existing one. A cart may only
// hold items from a single truck at a time.
func AddToCart(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Quantity < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be at least 1"})
		return
	}

	var item models.MenuItem
	if err := config.DB.Where("id = ? AND status = ?", req.ItemID, models.ItemAvailable).
		First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found or not available"})
		return
	}

	// Single-truck invariant: reject if the cart already holds another truck's items
	var foreign int64
	config.DB.Model(&models.CartLine{}).
		Where("user_id = ? AND truck_id != ?", userID, item.TruckID).
		Count(&foreign)
	if foreign > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Cannot order from multiple trucks. Please clear your cart first.",
		})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var line models.CartLine
		err := tx.Where("user_id = ? AND item_id = ?", userID, req.ItemID).First(&line).Error
		if err == nil {
			// One line per (user, item): merge by incrementing quantity
			return tx.Model(&line).Update("quantity", line.Quantity+req.Quantity).Error
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		return tx.Create(&models.CartLine{
			UserID:   userID,
			ItemID:   item.ID,
			TruckID:  item.TruckID,
			Quantity: req.Quantity,
			Price:    item.Price,
		}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not add item to cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item added to cart successfully"})
}

// ViewCart returns the caller's cart lines joined with current item details.
// The price shown is the snapshot taken at add time, not the live price.
func ViewCart(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var lines []models.CartLine
	config.DB.Preload("Item").Where("user_id = ?", userID).Order("id asc").Find(&lines)

	items := make([]gin.H, 0, len(lines))
	var subtotal float64
	for _, line := range lines {
		subtotal += line.Price * float64(line.Quantity)
		items = append(items, gin.H{
			"cart_id":     line.ID,
			"item_id":     line.ItemID,
			"name":        line.Item.Name,
			"description": line.Item.Description,
			"category":    line.Item.Category,
			"quantity":    line.Quantity,
			"price":       line.Price,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    len(items),
		"items":    items,
		"subtotal": subtotal,
	})
}

type UpdateCartRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// UpdateCartLine changes a line's quantity. Quantity below 1 is rejected and
// leaves the line untouched.
func UpdateCartLine(c *gin.Context) {
	userID := middleware.GetUserID(c)
	cartID := c.Param("cartId")

	var req UpdateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Quantity < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid quantity is required"})
		return
	}

	result := config.DB.Model(&models.CartLine{}).
		Where("id = ? AND user_id = ?", cartID, userID).
		Update("quantity", req.Quantity)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update cart"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found or not owned by you"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart updated successfully"})
}

// RemoveCartLine deletes a single line, ownership-checked
func RemoveCartLine(c *gin.Context) {
	userID := middleware.GetUserID(c)
	cartID := c.Param("cartId")

	result := config.DB.Where("id = ? AND user_id = ?", cartID, userID).
		Delete(&models.CartLine{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not remove item from cart"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found or not owned by you"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart successfully"})
}

// ClearCart deletes every line for the caller
func ClearCart(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if err := config.DB.Where("user_id = ?", userID).Delete(&models.CartLine{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not clear cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared successfully"})
}
