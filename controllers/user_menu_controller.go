package controllers

import (
	"github.com/coldup-cpu/skfood/entity"
	"github.com/coldup-cpu/skfood/pkg/resp"
	"github.com/coldup-cpu/skfood/services"

	"github.com/gin-gonic/gin"
)

type UserMenuController struct {
	menus *services.MenuService
}

func NewUserMenuController(menus *services.MenuService) *UserMenuController {
	return &UserMenuController{menus: menus}
}

// GET /userPanel/seeLunchMenu
func (mc *UserMenuController) LunchMenu(c *gin.Context) {
	mc.byMealType(c, entity.MealTypeLunch)
}

// GET /userPanel/seeDinnerMenu
func (mc *UserMenuController) DinnerMenu(c *gin.Context) {
	mc.byMealType(c, entity.MealTypeDinner)
}

func (mc *UserMenuController) byMealType(c *gin.Context, mealType string) {
	menus, err := mc.menus.MenusFor(mealType)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, menus)
}
