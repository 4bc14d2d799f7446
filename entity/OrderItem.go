package entity

import (
	"gorm.io/gorm"
)

// OrderItem is a sabji snapshot row. It stores the name as published at the
// time of ordering, not a reference into the menu tables.
type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	Name      string `gorm:"not null" json:"name"`
	IsSpecial bool   `json:"isSpecial"`
}
