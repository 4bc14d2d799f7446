package services

import (
	"errors"
	"testing"

	"github.com/coldup-cpu/skfood/entity"
	"github.com/coldup-cpu/skfood/repository"
)

func newTestMenuService(t *testing.T) *MenuService {
	t.Helper()
	db := newTestDB(t)
	return NewMenuService(repository.NewMenuRepository(db))
}

func TestPublishMenu(t *testing.T) {
	svc := newTestMenuService(t)

	menu, err := svc.Publish(&PublishMenuReq{
		MealType:  entity.MealTypeLunch,
		BasePrice: 120,
		Items: []MenuItemIn{
			{Name: "  Paneer Butter Masala  ", IsSpecial: true},
			{Name: "Dal Tadka"},
		},
	})
	if err != nil {
		t.Fatalf("Publish() error: %v", err)
	}
	if menu.ID == 0 {
		t.Fatal("published menu has no id")
	}
	if menu.Items[0].Name != "Paneer Butter Masala" {
		t.Errorf("item name = %q, want trimmed", menu.Items[0].Name)
	}
}

func TestPublishMenuValidation(t *testing.T) {
	tests := []struct {
		name string
		req  PublishMenuReq
	}{
		{"bad meal type", PublishMenuReq{
			MealType: "brunch", BasePrice: 100,
			Items: []MenuItemIn{{Name: "Chole"}},
		}},
		{"negative base price", PublishMenuReq{
			MealType: entity.MealTypeLunch, BasePrice: -1,
			Items: []MenuItemIn{{Name: "Chole"}},
		}},
		{"no items", PublishMenuReq{
			MealType: entity.MealTypeLunch, BasePrice: 100,
		}},
		{"blank item name", PublishMenuReq{
			MealType: entity.MealTypeLunch, BasePrice: 100,
			Items: []MenuItemIn{{Name: "   "}},
		}},
		{"duplicate item", PublishMenuReq{
			MealType: entity.MealTypeDinner, BasePrice: 100,
			Items: []MenuItemIn{{Name: "Chole"}, {Name: "Chole"}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestMenuService(t)
			_, err := svc.Publish(&tt.req)
			var ve ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Publish() error = %v, want ValidationError", err)
			}
		})
	}
}

func TestMenuHistoryAppendOnly(t *testing.T) {
	svc := newTestMenuService(t)

	for _, price := range []int64{100, 110, 120} {
		_, err := svc.Publish(&PublishMenuReq{
			MealType:  entity.MealTypeLunch,
			BasePrice: price,
			Items:     []MenuItemIn{{Name: "Chole"}, {Name: "Dal Tadka"}},
		})
		if err != nil {
			t.Fatalf("Publish() error: %v", err)
		}
	}
	_, err := svc.Publish(&PublishMenuReq{
		MealType:  entity.MealTypeDinner,
		BasePrice: 90,
		Items:     []MenuItemIn{{Name: "Bhindi Masala"}},
	})
	if err != nil {
		t.Fatalf("Publish() error: %v", err)
	}

	history, err := svc.History()
	if err != nil {
		t.Fatalf("History() error: %v", err)
	}
	if len(history) != 4 {
		t.Fatalf("history length = %d, want 4 (append-only)", len(history))
	}
	// newest first
	if history[0].MealType != entity.MealTypeDinner {
		t.Errorf("history[0].MealType = %q, want dinner (latest publish)", history[0].MealType)
	}

	current, err := svc.CurrentMenu(entity.MealTypeLunch)
	if err != nil {
		t.Fatalf("CurrentMenu() error: %v", err)
	}
	if current.BasePrice != 120 {
		t.Errorf("current lunch basePrice = %d, want latest (120)", current.BasePrice)
	}

	lunches, err := svc.MenusFor(entity.MealTypeLunch)
	if err != nil {
		t.Fatalf("MenusFor() error: %v", err)
	}
	if len(lunches) != 3 {
		t.Fatalf("lunch menus = %d, want 3", len(lunches))
	}
}

func TestCurrentMenuMissing(t *testing.T) {
	svc := newTestMenuService(t)

	_, err := svc.CurrentMenu(entity.MealTypeDinner)
	if !errors.Is(err, ErrMenuNotFound) {
		t.Fatalf("CurrentMenu() error = %v, want ErrMenuNotFound", err)
	}
}
