package services

import (
	"errors"
	"fmt"
	"regexp"
	"testing"

	"github.com/coldup-cpu/skfood/entity"
	"github.com/coldup-cpu/skfood/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Menu{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newTestOrderService(t *testing.T) *OrderService {
	t.Helper()
	db := newTestDB(t)
	return NewOrderService(db, repository.NewOrderRepository(db), repository.NewMenuRepository(db))
}

func seedLunchMenu(t *testing.T, db *gorm.DB, basePrice int64) *entity.Menu {
	t.Helper()
	menu := entity.Menu{
		MealType:  entity.MealTypeLunch,
		BasePrice: basePrice,
		Items: []entity.MenuItem{
			{Name: "Paneer Butter Masala", IsSpecial: true},
			{Name: "Dal Tadka"},
			{Name: "Aloo Gobi"},
			{Name: "Bhindi Masala"},
		},
	}
	if err := db.Create(&menu).Error; err != nil {
		t.Fatalf("seed menu: %v", err)
	}
	return &menu
}

func validPlaceReq() *PlaceOrderReq {
	return &PlaceOrderReq{
		MealType:  entity.MealTypeLunch,
		Sabjis:    []string{"Paneer Butter Masala", "Dal Tadka"},
		Base:      entity.BaseRoti,
		ExtraRoti: 2,
		Quantity:  3,
		Address: AddressIn{
			Name:  "Asha Verma",
			Phone: "9876543210",
			Line1: "12 MG Road",
			City:  "Indore",
		},
	}
}

func TestPlaceOrder(t *testing.T) {
	svc := newTestOrderService(t)
	seedLunchMenu(t, svc.DB, 120)

	order, err := svc.Place(7, validPlaceReq())
	if err != nil {
		t.Fatalf("Place() error: %v", err)
	}

	if order.Status != entity.StatusConfirmed {
		t.Errorf("status = %v, want %v", order.Status, entity.StatusConfirmed)
	}
	if order.PerUnitPrice != 150 || order.Subtotal != 450 || order.TotalPrice != 449 {
		t.Errorf("pricing snapshot = perUnit %d subtotal %d total %d, want 150/450/449",
			order.PerUnitPrice, order.Subtotal, order.TotalPrice)
	}
	if !regexp.MustCompile(`^[0-9]{4}$`).MatchString(order.OTP) {
		t.Errorf("otp = %q, want 4 numeric digits", order.OTP)
	}
	if len(order.Items) != 2 {
		t.Fatalf("order items = %d, want 2", len(order.Items))
	}
	if !order.Items[0].IsSpecial {
		t.Errorf("special flag not snapshotted onto %q", order.Items[0].Name)
	}

	// the snapshot survives independently of later menu publishes
	seedLunchMenu(t, svc.DB, 999)
	stored, err := svc.GetForUser(7, order.ID)
	if err != nil {
		t.Fatalf("GetForUser() error: %v", err)
	}
	if stored.TotalPrice != 449 {
		t.Errorf("stored total = %d, want 449", stored.TotalPrice)
	}
}

func TestPlaceOrderValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PlaceOrderReq)
	}{
		{"one sabji only", func(r *PlaceOrderReq) { r.Sabjis = []string{"Dal Tadka"} }},
		{"three sabjis", func(r *PlaceOrderReq) {
			r.Sabjis = []string{"Dal Tadka", "Aloo Gobi", "Bhindi Masala"}
		}},
		{"duplicate sabji", func(r *PlaceOrderReq) { r.Sabjis = []string{"Dal Tadka", "Dal Tadka"} }},
		{"sabji not on menu", func(r *PlaceOrderReq) { r.Sabjis = []string{"Dal Tadka", "Mutton Curry"} }},
		{"bad phone", func(r *PlaceOrderReq) { r.Address.Phone = "1234567890" }},
		{"short phone", func(r *PlaceOrderReq) { r.Address.Phone = "98765" }},
		{"missing name", func(r *PlaceOrderReq) { r.Address.Name = "" }},
		{"missing city", func(r *PlaceOrderReq) { r.Address.City = "" }},
		{"missing line1", func(r *PlaceOrderReq) { r.Address.Line1 = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestOrderService(t)
			seedLunchMenu(t, svc.DB, 120)

			req := validPlaceReq()
			tt.mutate(req)

			_, err := svc.Place(1, req)
			var ve ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Place() error = %v, want ValidationError", err)
			}
		})
	}
}

func TestPlaceOrderNoMenu(t *testing.T) {
	svc := newTestOrderService(t)

	_, err := svc.Place(1, validPlaceReq())
	if !errors.Is(err, ErrMenuNotFound) {
		t.Fatalf("Place() error = %v, want ErrMenuNotFound", err)
	}
}

func TestGenerateOTPFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9]{4}$`)
	for i := 0; i < 1000; i++ {
		otp := GenerateOTP()
		if !pattern.MatchString(otp) {
			t.Fatalf("GenerateOTP() = %q, want 4 digits with leading zeros kept", otp)
		}
	}
}

func TestListUndeliveredForUser(t *testing.T) {
	svc := newTestOrderService(t)
	seedLunchMenu(t, svc.DB, 120)

	first, err := svc.Place(3, validPlaceReq())
	if err != nil {
		t.Fatalf("Place() error: %v", err)
	}
	second, err := svc.Place(3, validPlaceReq())
	if err != nil {
		t.Fatalf("Place() error: %v", err)
	}

	if err := svc.MarkOnTheWay(first.ID); err != nil {
		t.Fatalf("MarkOnTheWay() error: %v", err)
	}
	if err := svc.Deliver(first.ID, first.OTP); err != nil {
		t.Fatalf("Deliver() error: %v", err)
	}

	undelivered, err := svc.ListUndeliveredForUser(3)
	if err != nil {
		t.Fatalf("ListUndeliveredForUser() error: %v", err)
	}
	if len(undelivered) != 1 || undelivered[0].ID != second.ID {
		t.Fatalf("undelivered = %d orders, want just the second one", len(undelivered))
	}
}
