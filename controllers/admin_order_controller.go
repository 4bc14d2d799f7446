package controllers

import (
	"errors"
	"strconv"

	"github.com/coldup-cpu/skfood/pkg/resp"
	"github.com/coldup-cpu/skfood/services"

	"github.com/gin-gonic/gin"
)

// AdminOrderController serves the order board: list, inspect and walk orders
// through the delivery lifecycle.
type AdminOrderController struct {
	orders *services.OrderService
}

func NewAdminOrderController(orders *services.OrderService) *AdminOrderController {
	return &AdminOrderController{orders: orders}
}

// GET /admin/allOrders — board filters by status client-side.
func (oc *AdminOrderController) ListAll(c *gin.Context) {
	orders, err := oc.orders.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /admin/orderwithId/:id
func (oc *AdminOrderController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	order, err := oc.orders.Get(uint(id))
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

// PATCH /admin/orders/:id/dispatch — Confirmed → on-the-way.
func (oc *AdminOrderController) Dispatch(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	if err := oc.orders.MarkOnTheWay(uint(id)); err != nil {
		oc.transitionError(c, err)
		return
	}
	resp.OK(c, gin.H{"status": "on-the-way"})
}

// PATCH /admin/orders/:id/deliver — on-the-way → delivered, OTP required.
func (oc *AdminOrderController) Deliver(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var req struct {
		OTP string `json:"otp" binding:"required,len=4,numeric"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := oc.orders.Deliver(uint(id), req.OTP); err != nil {
		oc.transitionError(c, err)
		return
	}
	resp.OK(c, gin.H{"status": "delivered"})
}

// PATCH /admin/orders/:id/cancel — Confirmed → cancelled.
func (oc *AdminOrderController) Cancel(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	if err := oc.orders.Cancel(uint(id)); err != nil {
		oc.transitionError(c, err)
		return
	}
	resp.OK(c, gin.H{"status": "cancelled"})
}

func (oc *AdminOrderController) transitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		resp.NotFound(c, "order not found")
	case errors.Is(err, services.ErrOTPMismatch):
		resp.Conflict(c, "otp does not match")
	case errors.Is(err, services.ErrInvalidTransition):
		resp.Conflict(c, "transition not allowed from current status")
	default:
		resp.ServerError(c, err)
	}
}
