package services

import (
	"fmt"

	"github.com/coldup-cpu/skfood/entity"
	"github.com/shopspring/decimal"
)

// Canonical pricing rules. The product has shipped with a few variants of
// these numbers; this rule set is the one SKFood runs with.
const (
	RequiredSabjiCount = 2
	SpecialSurcharge   = 20 // per thali when any selected sabji is special
	ExtraRotiPrice     = 5  // per extra roti
	MaxExtraRoti       = 3
	MinQuantity        = 1
	MaxQuantity        = 5
	BulkDiscountMinQty = 3
	DeliveryFee        = 0 // free delivery
	MaxInstructionsLen = 200
)

var (
	bulkDiscountRate = decimal.NewFromFloat(0.05)
	taxRate          = decimal.NewFromFloat(0.05)
)

// SabjiSelection is a sabji picked into a draft, snapshotted by name.
type SabjiSelection struct {
	Name      string `json:"name"`
	IsSpecial bool   `json:"isSpecial"`
}

// OrderDraft is the meal a customer is assembling. It lives in the session
// until the order is placed; nothing is persisted before submission.
type OrderDraft struct {
	MealType            string           `json:"mealType"`
	Sabjis              []SabjiSelection `json:"sabjis"`
	Base                string           `json:"base"`
	ExtraRoti           int              `json:"extraRoti"`
	Quantity            int              `json:"quantity"`
	SpecialInstructions string           `json:"specialInstructions"`
	Address             entity.Address   `json:"address"`
}

func (d *OrderDraft) AnySpecial() bool {
	for _, s := range d.Sabjis {
		if s.IsSpecial {
			return true
		}
	}
	return false
}

// PriceBreakdown is derived from a draft and a menu; it is recomputed on
// every request rather than stored as truth.
type PriceBreakdown struct {
	PerUnitPrice int64   `json:"perUnitPrice"`
	Subtotal     int64   `json:"subtotal"`
	Discount     float64 `json:"discount"`
	Tax          float64 `json:"tax"`
	DeliveryFee  int64   `json:"deliveryFee"`
	Total        int64   `json:"total"`
}

// ComputePrice maps a draft and its menu to a price breakdown.
//
//	perUnit  = basePrice + specialSurcharge + extraRoti × rotiPrice
//	subtotal = perUnit × quantity
//	discount = 5% of subtotal when quantity ≥ 3
//	tax      = 5% of (subtotal − discount)
//	total    = round(subtotal − discount + tax + deliveryFee)
//
// The function is pure: same inputs always produce the same breakdown.
func ComputePrice(d *OrderDraft, menu *entity.Menu) (PriceBreakdown, error) {
	if menu == nil {
		return PriceBreakdown{}, fmt.Errorf("%w: menu is required", ErrInvalidInput)
	}
	if d.Quantity < MinQuantity || d.Quantity > MaxQuantity {
		return PriceBreakdown{}, fmt.Errorf("%w: quantity %d out of range [%d,%d]",
			ErrInvalidInput, d.Quantity, MinQuantity, MaxQuantity)
	}
	if d.ExtraRoti < 0 || d.ExtraRoti > MaxExtraRoti {
		return PriceBreakdown{}, fmt.Errorf("%w: extraRoti %d out of range [0,%d]",
			ErrInvalidInput, d.ExtraRoti, MaxExtraRoti)
	}

	perUnit := menu.BasePrice + int64(d.ExtraRoti)*ExtraRotiPrice
	if d.AnySpecial() {
		perUnit += SpecialSurcharge
	}
	subtotal := perUnit * int64(d.Quantity)

	sub := decimal.NewFromInt(subtotal)
	discount := decimal.Zero
	if d.Quantity >= BulkDiscountMinQty {
		discount = sub.Mul(bulkDiscountRate)
	}
	taxable := sub.Sub(discount)
	tax := taxable.Mul(taxRate)
	total := taxable.Add(tax).Add(decimal.NewFromInt(DeliveryFee)).Round(0)

	return PriceBreakdown{
		PerUnitPrice: perUnit,
		Subtotal:     subtotal,
		Discount:     discount.InexactFloat64(),
		Tax:          tax.InexactFloat64(),
		DeliveryFee:  DeliveryFee,
		Total:        total.IntPart(),
	}, nil
}
