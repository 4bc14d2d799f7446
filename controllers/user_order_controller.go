package controllers

import (
	"errors"
	"strconv"

	"github.com/coldup-cpu/skfood/pkg/resp"
	"github.com/coldup-cpu/skfood/services"
	"github.com/coldup-cpu/skfood/utils"

	"github.com/gin-gonic/gin"
)

type UserOrderController struct {
	orders *services.OrderService
	drafts *services.DraftService
}

func NewUserOrderController(orders *services.OrderService, drafts *services.DraftService) *UserOrderController {
	return &UserOrderController{orders: orders, drafts: drafts}
}

// POST /userPanel/orderPreparedThali
func (oc *UserOrderController) PlaceOrder(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.PlaceOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.orders.Place(uid, &req)
	if err != nil {
		oc.placeError(c, err)
		return
	}

	// successful placement consumes the wizard draft
	oc.drafts.Cancel(uid)

	resp.Created(c, order)
}

// GET /userPanel/myAllOrders
func (oc *UserOrderController) MyOrders(c *gin.Context) {
	orders, err := oc.orders.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /userPanel/confirmedOrders — orders not yet delivered.
func (oc *UserOrderController) MyUndeliveredOrders(c *gin.Context) {
	orders, err := oc.orders.ListUndeliveredForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /userPanel/myOrderwithId/:id
func (oc *UserOrderController) MyOrderDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	order, err := oc.orders.GetForUser(utils.CurrentUserID(c), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}

func (oc *UserOrderController) placeError(c *gin.Context, err error) {
	var ve services.ValidationError
	switch {
	case errors.As(err, &ve):
		resp.BadRequest(c, ve.Error())
	case errors.Is(err, services.ErrMenuNotFound):
		resp.BadRequest(c, "no menu published for this meal type")
	case errors.Is(err, services.ErrInvalidInput):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
