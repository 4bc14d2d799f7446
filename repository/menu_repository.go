package repository

import (
	"github.com/coldup-cpu/skfood/entity"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// Create appends a newly published menu. Menus are never updated in place.
func (r *MenuRepository) Create(menu *entity.Menu) error {
	return r.DB.Create(menu).Error
}

// History returns every published menu, newest first.
func (r *MenuRepository) History() ([]entity.Menu, error) {
	var menus []entity.Menu
	err := r.DB.
		Preload("Items").
		Order("id DESC").
		Find(&menus).Error
	return menus, err
}

// HistoryByMealType returns published menus of one meal type, newest first.
func (r *MenuRepository) HistoryByMealType(mealType string) ([]entity.Menu, error) {
	var menus []entity.Menu
	err := r.DB.
		Preload("Items").
		Where("meal_type = ?", mealType).
		Order("id DESC").
		Find(&menus).Error
	return menus, err
}

// LatestByMealType returns the menu customers currently order from.
func (r *MenuRepository) LatestByMealType(mealType string) (*entity.Menu, error) {
	var menu entity.Menu
	err := r.DB.
		Preload("Items").
		Where("meal_type = ?", mealType).
		Order("id DESC").
		First(&menu).Error
	if err != nil {
		return nil, err
	}
	return &menu, nil
}
