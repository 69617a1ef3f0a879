package routes

import (
	"food-truck-api/handlers"
	"food-truck-api/middleware"
	"food-truck-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Trucks & menus (no auth needed)
		public.GET("/trucks", handlers.ListTrucks)
		public.GET("/trucks/:id/menu", handlers.GetTruckMenu)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
		auth.GET("/order/:id", handlers.GetOrderDetail)
	}

	// ── Customer routes ────────────────────────────────────────────
	customer := r.Group("/api")
	customer.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleCustomer))
	{
		customer.POST("/cart", handlers.AddToCart)
		customer.GET("/cart", handlers.ViewCart)
		customer.PUT("/cart/:cartId", handlers.UpdateCartLine)
		customer.DELETE("/cart/:cartId", handlers.RemoveCartLine)
		customer.DELETE("/cart", handlers.ClearCart)

		customer.POST("/order", handlers.PlaceOrder)
		customer.GET("/order/mine", handlers.GetMyOrders)
		customer.PUT("/order/:id/cancel", handlers.CancelOrder)
	}

	// ── Truck owner routes ─────────────────────────────────────────
	owner := r.Group("/api")
	owner.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleTruckOwner))
	{
		// Truck management
		owner.POST("/truck", handlers.CreateTruck)
		owner.GET("/truck", handlers.GetMyTruck)
		owner.PUT("/truck/order-status", handlers.UpdateTruckOrderStatus)
		owner.GET("/truck/stats", handlers.GetTruckStats)

		// Menu management
		owner.POST("/truck/menu", handlers.AddMenuItem)
		owner.GET("/truck/menu", handlers.GetMyMenu)
		owner.PUT("/truck/menu/:itemId", handlers.UpdateMenuItem)
		owner.DELETE("/truck/menu/:itemId", handlers.DeleteMenuItem)

		// Order management
		owner.GET("/order/forMyTruck", handlers.GetTruckOrders)
		owner.PUT("/order/:id/status", handlers.UpdateOrderStatus)
	}
}
