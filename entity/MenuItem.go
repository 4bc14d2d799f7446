package entity

import (
	"gorm.io/gorm"
)

// MenuItem is a selectable sabji on a published menu.
type MenuItem struct {
	gorm.Model
	MenuID uint `json:"menuId"`
	Menu   Menu `json:"-"`

	Name      string `gorm:"not null" json:"name"`
	ImageURL  string `json:"imageUrl"`
	IsSpecial bool   `json:"isSpecial"`
}
