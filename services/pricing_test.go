package services

import (
	"errors"
	"testing"

	"github.com/coldup-cpu/skfood/entity"
)

func TestComputePrice(t *testing.T) {
	tests := []struct {
		name    string
		draft   OrderDraft
		menu    *entity.Menu
		want    PriceBreakdown
		wantErr error
	}{
		{
			name: "special thali with extras and bulk discount",
			draft: OrderDraft{
				Sabjis: []SabjiSelection{
					{Name: "Paneer Butter Masala", IsSpecial: true},
					{Name: "Dal Tadka"},
				},
				Base:      entity.BaseRoti,
				ExtraRoti: 2,
				Quantity:  3,
			},
			menu: &entity.Menu{BasePrice: 120},
			want: PriceBreakdown{
				PerUnitPrice: 150,
				Subtotal:     450,
				Discount:     22.5,
				Tax:          21.375,
				DeliveryFee:  0,
				Total:        449,
			},
		},
		{
			name: "plain single thali",
			draft: OrderDraft{
				Sabjis: []SabjiSelection{
					{Name: "Aloo Gobi"},
					{Name: "Bhindi Masala"},
				},
				Base:     entity.BaseRice,
				Quantity: 1,
			},
			menu: &entity.Menu{BasePrice: 60},
			want: PriceBreakdown{
				PerUnitPrice: 60,
				Subtotal:     60,
				Discount:     0,
				Tax:          3,
				DeliveryFee:  0,
				Total:        63,
			},
		},
		{
			name: "missing menu",
			draft: OrderDraft{
				Sabjis:   []SabjiSelection{{Name: "Chole"}, {Name: "Rajma Masala"}},
				Quantity: 1,
			},
			menu:    nil,
			wantErr: ErrInvalidInput,
		},
		{
			name: "quantity above range",
			draft: OrderDraft{
				Sabjis:   []SabjiSelection{{Name: "Chole"}, {Name: "Rajma Masala"}},
				Quantity: 6,
			},
			menu:    &entity.Menu{BasePrice: 100},
			wantErr: ErrInvalidInput,
		},
		{
			name: "quantity below range",
			draft: OrderDraft{
				Sabjis:   []SabjiSelection{{Name: "Chole"}, {Name: "Rajma Masala"}},
				Quantity: 0,
			},
			menu:    &entity.Menu{BasePrice: 100},
			wantErr: ErrInvalidInput,
		},
		{
			name: "extra roti above range",
			draft: OrderDraft{
				Sabjis:    []SabjiSelection{{Name: "Chole"}, {Name: "Rajma Masala"}},
				ExtraRoti: 4,
				Quantity:  1,
			},
			menu:    &entity.Menu{BasePrice: 100},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputePrice(&tt.draft, tt.menu)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ComputePrice() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ComputePrice() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ComputePrice() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestComputePriceDeterministic(t *testing.T) {
	draft := OrderDraft{
		Sabjis: []SabjiSelection{
			{Name: "Paneer Butter Masala", IsSpecial: true},
			{Name: "Dal Tadka"},
		},
		Base:      entity.BaseRotiRice,
		ExtraRoti: 1,
		Quantity:  4,
	}
	menu := &entity.Menu{BasePrice: 110}

	first, err := ComputePrice(&draft, menu)
	if err != nil {
		t.Fatalf("ComputePrice() error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := ComputePrice(&draft, menu)
		if err != nil {
			t.Fatalf("ComputePrice() error on call %d: %v", i, err)
		}
		if again != first {
			t.Fatalf("ComputePrice() call %d = %+v, first call = %+v", i, again, first)
		}
	}
}

func TestComputePriceBulkDiscountThreshold(t *testing.T) {
	menu := &entity.Menu{BasePrice: 100}
	for qty := MinQuantity; qty <= MaxQuantity; qty++ {
		draft := OrderDraft{
			Sabjis:   []SabjiSelection{{Name: "Chole"}, {Name: "Dal Tadka"}},
			Quantity: qty,
		}
		got, err := ComputePrice(&draft, menu)
		if err != nil {
			t.Fatalf("quantity %d: %v", qty, err)
		}
		if qty >= BulkDiscountMinQty && got.Discount <= 0 {
			t.Errorf("quantity %d: discount = %v, want > 0", qty, got.Discount)
		}
		if qty < BulkDiscountMinQty && got.Discount != 0 {
			t.Errorf("quantity %d: discount = %v, want 0", qty, got.Discount)
		}
		// tax and fee never push the total below the discounted subtotal
		if float64(got.Total) < float64(got.Subtotal)-got.Discount-0.5 {
			t.Errorf("quantity %d: total %d below subtotal-discount", qty, got.Total)
		}
	}
}
