package models

import "time"

// OrderStatus represents all possible states of a food truck order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// ValidStatus reports whether s is one of the recognized order statuses
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID                  uint        `json:"id" gorm:"primaryKey"`
	UserID              uint        `json:"user_id" gorm:"not null;index"`
	User                User        `json:"customer,omitempty" gorm:"foreignKey:UserID"`
	TruckID             uint        `json:"truck_id" gorm:"not null;index"`
	Truck               Truck       `json:"truck,omitempty" gorm:"foreignKey:TruckID"`
	Status              OrderStatus `json:"status" gorm:"not null;default:'pending'"`
	TotalPrice          float64     `json:"total_price"`
	ScheduledPickupTime time.Time   `json:"scheduled_pickup_time" gorm:"not null"`
	OrderDate           time.Time   `json:"order_date"`
	Items               []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID       uint     `json:"id" gorm:"primaryKey"`
	OrderID  uint     `json:"order_id" gorm:"not null;index"`
	ItemID   uint     `json:"item_id" gorm:"not null"`
	Item     MenuItem `json:"item,omitempty" gorm:"foreignKey:ItemID"`
	Quantity int      `json:"quantity" gorm:"not null"`
	Price    float64  `json:"price" gorm:"not null"` // snapshot carried over from the cart line
}
