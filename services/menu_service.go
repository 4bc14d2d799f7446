package services

import (
	"errors"
	"strings"

	"github.com/coldup-cpu/skfood/entity"
	"github.com/coldup-cpu/skfood/repository"
	"gorm.io/gorm"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

// ----- DTOs from Controller -----

type MenuItemIn struct {
	Name      string `json:"name" binding:"required"`
	ImageURL  string `json:"imageUrl"`
	IsSpecial bool   `json:"isSpecial"`
}

type PublishMenuReq struct {
	MealType  string       `json:"mealType" binding:"required,oneof=lunch dinner"`
	BasePrice int64        `json:"basePrice" binding:"min=0"`
	Items     []MenuItemIn `json:"items" binding:"required,min=1,dive"`
}

// Publish appends a new menu to the history log.
func (s *MenuService) Publish(req *PublishMenuReq) (*entity.Menu, error) {
	if !entity.ValidMealType(req.MealType) {
		return nil, ValidationError{Field: "mealType", Message: "must be lunch or dinner"}
	}
	if req.BasePrice < 0 {
		return nil, ValidationError{Field: "basePrice", Message: "must not be negative"}
	}
	if len(req.Items) == 0 {
		return nil, ValidationError{Field: "items", Message: "at least one sabji is required"}
	}

	menu := entity.Menu{
		MealType:  req.MealType,
		BasePrice: req.BasePrice,
	}
	seen := make(map[string]bool, len(req.Items))
	for _, it := range req.Items {
		name := strings.TrimSpace(it.Name)
		if name == "" {
			return nil, ValidationError{Field: "items", Message: "sabji name must not be empty"}
		}
		if seen[name] {
			return nil, ValidationError{Field: "items", Message: "duplicate sabji: " + name}
		}
		seen[name] = true
		menu.Items = append(menu.Items, entity.MenuItem{
			Name:      name,
			ImageURL:  strings.TrimSpace(it.ImageURL),
			IsSpecial: it.IsSpecial,
		})
	}

	if err := s.Repo.Create(&menu); err != nil {
		return nil, err
	}
	return &menu, nil
}

// History returns all published menus, newest first.
func (s *MenuService) History() ([]entity.Menu, error) {
	return s.Repo.History()
}

// MenusFor returns the published menus of one meal type, newest first. The
// customer panel orders from the first entry.
func (s *MenuService) MenusFor(mealType string) ([]entity.Menu, error) {
	if !entity.ValidMealType(mealType) {
		return nil, ValidationError{Field: "mealType", Message: "must be lunch or dinner"}
	}
	return s.Repo.HistoryByMealType(mealType)
}

// CurrentMenu returns the menu orders are priced against.
func (s *MenuService) CurrentMenu(mealType string) (*entity.Menu, error) {
	menu, err := s.Repo.LatestByMealType(mealType)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMenuNotFound
	}
	return menu, err
}
