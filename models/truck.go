package models

import "time"

// TruckOrderStatus gates whether a truck currently accepts new orders.
// Distinct from the status of an individual order.
type TruckOrderStatus string

const (
	TruckAvailable   TruckOrderStatus = "available"
	TruckUnavailable TruckOrderStatus = "unavailable"
)

type Truck struct {
	ID          uint             `json:"id" gorm:"primaryKey"`
	OwnerID     uint             `json:"owner_id" gorm:"uniqueIndex;not null"` // one truck per owner
	Owner       User             `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Name        string           `json:"name" gorm:"uniqueIndex;not null"`
	Logo        string           `json:"logo"`
	TruckStatus TruckOrderStatus `json:"truck_status" gorm:"not null;default:'available'"`
	OrderStatus TruckOrderStatus `json:"order_status" gorm:"not null;default:'available'"`
	MenuItems   []MenuItem       `json:"menu_items,omitempty" gorm:"foreignKey:TruckID"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// ItemStatus marks a menu item sellable or soft-deleted
type ItemStatus string

const (
	ItemAvailable   ItemStatus = "available"
	ItemUnavailable ItemStatus = "unavailable"
)

type MenuItem struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	TruckID     uint       `json:"truck_id" gorm:"not null;index"`
	Name        string     `json:"name" gorm:"not null"`
	Description string     `json:"description"`
	Price       float64    `json:"price" gorm:"not null"`
	Category    string     `json:"category" gorm:"default:'general'"`
	Status      ItemStatus `json:"status" gorm:"not null;default:'available'"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
