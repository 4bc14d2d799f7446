package services

import (
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strings"

	"github.com/coldup-cpu/skfood/entity"
	"github.com/coldup-cpu/skfood/repository"
	"gorm.io/gorm"
)

var phonePattern = regexp.MustCompile(`^[6-9][0-9]{9}$`)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	MenuRepo *repository.MenuRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, menuRepo *repository.MenuRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, MenuRepo: menuRepo}
}

// ----- DTOs from Controller -----

type AddressIn struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required,inphone"`
	Line1    string `json:"line1" binding:"required"`
	Landmark string `json:"landmark"`
	City     string `json:"city" binding:"required"`
}

type PlaceOrderReq struct {
	MealType            string    `json:"mealType" binding:"required,oneof=lunch dinner"`
	Sabjis              []string  `json:"sabjis" binding:"required"`
	Base                string    `json:"base" binding:"required,oneof=roti roti+rice rice"`
	ExtraRoti           int       `json:"extraRoti" binding:"min=0,max=3"`
	Quantity            int       `json:"quantity" binding:"required,min=1,max=5"`
	SpecialInstructions string    `json:"specialInstructions" binding:"max=200"`
	PaymentMethod       string    `json:"paymentMethod" binding:"omitempty,oneof=cod upi"`
	Address             AddressIn `json:"address" binding:"required"`
}

// Place validates the submitted draft against the current menu, prices it
// server-side, assigns the delivery OTP and persists the order as Confirmed.
func (s *OrderService) Place(userID uint, req *PlaceOrderReq) (*entity.Order, error) {
	menu, err := s.MenuRepo.LatestByMealType(req.MealType)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMenuNotFound
	}
	if err != nil {
		return nil, err
	}

	draft, err := buildDraft(req, menu)
	if err != nil {
		return nil, err
	}

	pricing, err := ComputePrice(draft, menu)
	if err != nil {
		return nil, err
	}

	order := entity.Order{
		UserID:              userID,
		MealType:            draft.MealType,
		Base:                draft.Base,
		ExtraRoti:           draft.ExtraRoti,
		Quantity:            draft.Quantity,
		SpecialInstructions: draft.SpecialInstructions,
		PaymentMethod:       req.PaymentMethod,
		Address:             draft.Address,
		OTP:                 GenerateOTP(),
		Status:              entity.StatusConfirmed,
		PerUnitPrice:        pricing.PerUnitPrice,
		Subtotal:            pricing.Subtotal,
		Discount:            int64(pricing.Discount + 0.5),
		Tax:                 int64(pricing.Tax + 0.5),
		DeliveryFee:         pricing.DeliveryFee,
		TotalPrice:          pricing.Total,
	}
	for _, sel := range draft.Sabjis {
		order.Items = append(order.Items, entity.OrderItem{
			Name:      sel.Name,
			IsSpecial: sel.IsSpecial,
		})
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Create(tx, &order)
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// buildDraft resolves the submitted sabji names against the published menu
// and snapshots them, so the order never references menu rows.
func buildDraft(req *PlaceOrderReq, menu *entity.Menu) (*OrderDraft, error) {
	if len(req.Sabjis) != RequiredSabjiCount {
		return nil, ValidationError{
			Field:   "sabjis",
			Message: fmt.Sprintf("exactly %d sabjis must be selected", RequiredSabjiCount),
		}
	}

	byName := make(map[string]entity.MenuItem, len(menu.Items))
	for _, it := range menu.Items {
		byName[it.Name] = it
	}

	draft := &OrderDraft{
		MealType:            req.MealType,
		Base:                req.Base,
		ExtraRoti:           req.ExtraRoti,
		Quantity:            req.Quantity,
		SpecialInstructions: strings.TrimSpace(req.SpecialInstructions),
		Address: entity.Address{
			Name:     strings.TrimSpace(req.Address.Name),
			Phone:    strings.TrimSpace(req.Address.Phone),
			Line1:    strings.TrimSpace(req.Address.Line1),
			Landmark: strings.TrimSpace(req.Address.Landmark),
			City:     strings.TrimSpace(req.Address.City),
		},
	}

	seen := make(map[string]bool, len(req.Sabjis))
	for _, name := range req.Sabjis {
		name = strings.TrimSpace(name)
		if seen[name] {
			return nil, ValidationError{Field: "sabjis", Message: "duplicate sabji: " + name}
		}
		seen[name] = true
		item, ok := byName[name]
		if !ok {
			return nil, ValidationError{Field: "sabjis", Message: "not on today's menu: " + name}
		}
		draft.Sabjis = append(draft.Sabjis, SabjiSelection{Name: item.Name, IsSpecial: item.IsSpecial})
	}

	if err := validateAddress(&draft.Address); err != nil {
		return nil, err
	}
	return draft, nil
}

func validateAddress(a *entity.Address) error {
	if a.Name == "" {
		return ValidationError{Field: "address.name", Message: "name is required"}
	}
	if !phonePattern.MatchString(a.Phone) {
		return ValidationError{Field: "address.phone", Message: "must be 10 digits starting with 6-9"}
	}
	if a.Line1 == "" {
		return ValidationError{Field: "address.line1", Message: "address line is required"}
	}
	if a.City == "" {
		return ValidationError{Field: "address.city", Message: "city is required"}
	}
	return nil
}

// GenerateOTP returns a 4-digit numeric code with leading zeros preserved.
// It is a delivery handshake, not a security control.
func GenerateOTP() string {
	return fmt.Sprintf("%04d", rand.Intn(10000))
}

// ----- List & Detail -----

func (s *OrderService) ListAll() ([]entity.Order, error) {
	return s.Repo.ListAll()
}

func (s *OrderService) Get(orderID uint) (*entity.Order, error) {
	o, err := s.Repo.Get(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	return o, err
}

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.Repo.ListForUser(userID)
}

// ListUndeliveredForUser returns the user's orders still on their way to the
// door (Confirmed or on-the-way).
func (s *OrderService) ListUndeliveredForUser(userID uint) ([]entity.Order, error) {
	return s.Repo.ListForUserByStatuses(userID, []entity.Status{
		entity.StatusConfirmed, entity.StatusOnTheWay,
	})
}

func (s *OrderService) GetForUser(userID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetForUser(userID, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	return o, err
}
