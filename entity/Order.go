package entity

import (
	"gorm.io/gorm"
)

// Base is the staple component of a thali.
const (
	BaseRoti     = "roti"
	BaseRotiRice = "roti+rice"
	BaseRice     = "rice"
)

func ValidBase(b string) bool {
	return b == BaseRoti || b == BaseRotiRice || b == BaseRice
}

// Address is the delivery address snapshotted onto an order.
type Address struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Line1    string `json:"line1"`
	Landmark string `json:"landmark"`
	City     string `json:"city"`
}

// Order is a placed thali order. Sabjis are copied into OrderItem rows by
// name at placement; later menu edits never change an existing order.
type Order struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	MealType            string `json:"mealType"`
	Base                string `json:"base"`
	ExtraRoti           int    `json:"extraRoti"`
	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"specialInstructions"`
	PaymentMethod       string `json:"paymentMethod"`

	Address Address `gorm:"embedded;embeddedPrefix:addr_" json:"address"`

	// OTP is assigned once at creation and never regenerated.
	OTP    string `gorm:"column:otp" json:"otp"`
	Status Status `gorm:"not null;index" json:"status"`

	// price snapshot at placement; the authoritative breakdown is always
	// recomputed by the pricing engine from the same inputs
	PerUnitPrice int64 `json:"perUnitPrice"`
	Subtotal     int64 `json:"subtotal"`
	Discount     int64 `json:"discount"`
	Tax          int64 `json:"tax"`
	DeliveryFee  int64 `json:"deliveryFee"`
	TotalPrice   int64 `json:"totalPrice"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
