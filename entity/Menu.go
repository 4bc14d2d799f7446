package entity

import (
	"gorm.io/gorm"
)

// Menu is one published lunch or dinner card. Publishing always appends a
// new row; old menus stay untouched so the admin can reuse them from history.
type Menu struct {
	gorm.Model
	MealType  string `gorm:"not null;index" json:"mealType"`
	BasePrice int64  `json:"basePrice"`

	Items []MenuItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}

const (
	MealTypeLunch  = "lunch"
	MealTypeDinner = "dinner"
)

func ValidMealType(mt string) bool {
	return mt == MealTypeLunch || mt == MealTypeDinner
}
