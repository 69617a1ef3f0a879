package models

import "time"

// CartLine is one (user, item) pairing pending order placement. Price and
// TruckID are snapshotted from the menu item at add time; at most one line
// exists per (user, item), and all of a user's lines share one truck.
type CartLine struct {
	ID        uint      `json:"cart_id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index;uniqueIndex:idx_cart_user_item"`
	ItemID    uint      `json:"item_id" gorm:"not null;uniqueIndex:idx_cart_user_item"`
	Item      MenuItem  `json:"item,omitempty" gorm:"foreignKey:ItemID"`
	TruckID   uint      `json:"truck_id" gorm:"not null"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	Price     float64   `json:"price" gorm:"not null"` // snapshot at add time
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
