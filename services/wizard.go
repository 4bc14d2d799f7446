package services

import (
	"github.com/coldup-cpu/skfood/entity"
)

// WizardStep is a step in the guided thali builder.
type WizardStep string

const (
	StepSelectingItems WizardStep = "selecting-items"
	StepSelectingBase  WizardStep = "selecting-base"
	StepReviewing      WizardStep = "reviewing"
)

// OrderWizard walks a customer through item selection → base selection →
// review. Steps are linear; forward moves are guarded, backward moves are
// always allowed. A failed guard is a no-op, not an error.
type OrderWizard struct {
	Step  WizardStep
	Draft OrderDraft
}

func NewOrderWizard(mealType string) *OrderWizard {
	return &OrderWizard{
		Step: StepSelectingItems,
		Draft: OrderDraft{
			MealType: mealType,
			Quantity: MinQuantity,
		},
	}
}

// AddSabji adds a sabji unless it is already selected or the plate is full.
func (w *OrderWizard) AddSabji(name string, isSpecial bool) bool {
	if len(w.Draft.Sabjis) >= RequiredSabjiCount {
		return false
	}
	for _, s := range w.Draft.Sabjis {
		if s.Name == name {
			return false
		}
	}
	w.Draft.Sabjis = append(w.Draft.Sabjis, SabjiSelection{Name: name, IsSpecial: isSpecial})
	return true
}

func (w *OrderWizard) RemoveSabji(name string) bool {
	for i, s := range w.Draft.Sabjis {
		if s.Name == name {
			w.Draft.Sabjis = append(w.Draft.Sabjis[:i], w.Draft.Sabjis[i+1:]...)
			return true
		}
	}
	return false
}

func (w *OrderWizard) SetBase(base string) bool {
	if !entity.ValidBase(base) {
		return false
	}
	w.Draft.Base = base
	return true
}

func (w *OrderWizard) SetExtraRoti(n int) bool {
	if n < 0 || n > MaxExtraRoti {
		return false
	}
	w.Draft.ExtraRoti = n
	return true
}

func (w *OrderWizard) SetQuantity(n int) bool {
	if n < MinQuantity || n > MaxQuantity {
		return false
	}
	w.Draft.Quantity = n
	return true
}

func (w *OrderWizard) SetInstructions(text string) bool {
	if len(text) > MaxInstructionsLen {
		return false
	}
	w.Draft.SpecialInstructions = text
	return true
}

// Next advances one step when the current step's guard passes. Re-invoking
// while the guard fails simply declines to advance.
func (w *OrderWizard) Next() bool {
	switch w.Step {
	case StepSelectingItems:
		if len(w.Draft.Sabjis) != RequiredSabjiCount {
			return false
		}
		w.Step = StepSelectingBase
		return true
	case StepSelectingBase:
		if w.Draft.Base == "" {
			return false
		}
		w.Step = StepReviewing
		return true
	}
	return false
}

// Back steps backward, unguarded. At the first step it is a no-op.
func (w *OrderWizard) Back() bool {
	switch w.Step {
	case StepSelectingBase:
		w.Step = StepSelectingItems
		return true
	case StepReviewing:
		w.Step = StepSelectingBase
		return true
	}
	return false
}
