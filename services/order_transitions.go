package services

import (
	"github.com/coldup-cpu/skfood/entity"
	"gorm.io/gorm"
)

// Status transitions are compare-and-swap updates: the row must still be in
// the expected state or the transition is rejected.

// MarkOnTheWay moves a Confirmed order out for delivery. No code is needed;
// any authenticated admin action suffices.
func (s *OrderService) MarkOnTheWay(orderID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := s.Get(orderID); err != nil {
			return err
		}
		affected, err := s.Repo.UpdateStatusGuard(tx, orderID, entity.StatusConfirmed, entity.StatusOnTheWay)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
}

// Deliver finalizes an on-the-way order when the submitted code matches the
// order's OTP exactly. A mismatch changes nothing and may be retried.
func (s *OrderService) Deliver(orderID uint, code string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Get(orderID)
		if err != nil {
			return err
		}
		if !o.Status.CanTransition(entity.StatusDelivered) {
			return ErrInvalidTransition
		}
		if code != o.OTP {
			return ErrOTPMismatch
		}
		affected, err := s.Repo.UpdateStatusGuard(tx, orderID, o.Status, entity.StatusDelivered)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
}

// Cancel voids a Confirmed order. Cancelled is terminal.
func (s *OrderService) Cancel(orderID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := s.Get(orderID); err != nil {
			return err
		}
		affected, err := s.Repo.UpdateStatusGuard(tx, orderID, entity.StatusConfirmed, entity.StatusCancelled)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
}
