package controllers

import (
	"github.com/coldup-cpu/skfood/pkg/resp"
	"github.com/coldup-cpu/skfood/services"
	"github.com/coldup-cpu/skfood/utils"

	"github.com/gin-gonic/gin"
)

// DraftController exposes the thali-builder wizard. Each customer session
// holds at most one draft; all state lives server-side in the DraftService.
type DraftController struct {
	drafts *services.DraftService
	menus  *services.MenuService
}

func NewDraftController(drafts *services.DraftService, menus *services.MenuService) *DraftController {
	return &DraftController{drafts: drafts, menus: menus}
}

// draftPayload decorates the wizard view with a live price quote when one
// can be computed for the current draft.
func (dc *DraftController) draftPayload(v services.DraftView) gin.H {
	payload := gin.H{"step": v.Step, "draft": v.Draft}
	menu, err := dc.menus.CurrentMenu(v.Draft.MealType)
	if err != nil {
		return payload
	}
	if pricing, err := services.ComputePrice(&v.Draft, menu); err == nil {
		payload["pricing"] = pricing
	}
	return payload
}

// POST /userPanel/draft {mealType} — start over with a fresh draft.
func (dc *DraftController) Start(c *gin.Context) {
	var req struct {
		MealType string `json:"mealType" binding:"required,oneof=lunch dinner"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	v := dc.drafts.Start(utils.CurrentUserID(c), req.MealType)
	resp.Created(c, dc.draftPayload(v))
}

// GET /userPanel/draft
func (dc *DraftController) Get(c *gin.Context) {
	v, ok := dc.drafts.Get(utils.CurrentUserID(c))
	if !ok {
		resp.NotFound(c, "no active draft")
		return
	}
	resp.OK(c, dc.draftPayload(v))
}

// POST /userPanel/draft/sabji {name}
func (dc *DraftController) AddSabji(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	v, ok := dc.drafts.Get(utils.CurrentUserID(c))
	if !ok {
		resp.NotFound(c, "no active draft")
		return
	}

	// resolve the sabji against the published menu so the draft records the
	// special flag the customer will be charged for
	menu, err := dc.menus.CurrentMenu(v.Draft.MealType)
	if err != nil {
		resp.BadRequest(c, "no menu published for this meal type")
		return
	}
	var isSpecial bool
	found := false
	for _, it := range menu.Items {
		if it.Name == req.Name {
			isSpecial = it.IsSpecial
			found = true
			break
		}
	}
	if !found {
		resp.BadRequest(c, "not on today's menu: "+req.Name)
		return
	}

	dc.mutate(c, func(w *services.OrderWizard) bool {
		return w.AddSabji(req.Name, isSpecial)
	})
}

// DELETE /userPanel/draft/sabji/:name
func (dc *DraftController) RemoveSabji(c *gin.Context) {
	name := c.Param("name")
	dc.mutate(c, func(w *services.OrderWizard) bool {
		return w.RemoveSabji(name)
	})
}

// POST /userPanel/draft/base {base}
func (dc *DraftController) SetBase(c *gin.Context) {
	var req struct {
		Base string `json:"base" binding:"required,oneof=roti roti+rice rice"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	dc.mutate(c, func(w *services.OrderWizard) bool {
		return w.SetBase(req.Base)
	})
}

// POST /userPanel/draft/extras {extraRoti, quantity, specialInstructions}
func (dc *DraftController) SetExtras(c *gin.Context) {
	var req struct {
		ExtraRoti           *int    `json:"extraRoti" binding:"omitempty,min=0,max=3"`
		Quantity            *int    `json:"quantity" binding:"omitempty,min=1,max=5"`
		SpecialInstructions *string `json:"specialInstructions" binding:"omitempty,max=200"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	dc.mutate(c, func(w *services.OrderWizard) bool {
		ok := true
		if req.ExtraRoti != nil {
			ok = w.SetExtraRoti(*req.ExtraRoti) && ok
		}
		if req.Quantity != nil {
			ok = w.SetQuantity(*req.Quantity) && ok
		}
		if req.SpecialInstructions != nil {
			ok = w.SetInstructions(*req.SpecialInstructions) && ok
		}
		return ok
	})
}

// POST /userPanel/draft/next — guarded; declining to advance is not an error.
func (dc *DraftController) Next(c *gin.Context) {
	dc.mutate(c, func(w *services.OrderWizard) bool {
		return w.Next()
	})
}

// POST /userPanel/draft/back — always permitted.
func (dc *DraftController) Back(c *gin.Context) {
	dc.mutate(c, func(w *services.OrderWizard) bool {
		w.Back()
		return true
	})
}

// DELETE /userPanel/draft — leaving the wizard discards everything.
func (dc *DraftController) Cancel(c *gin.Context) {
	dc.drafts.Cancel(utils.CurrentUserID(c))
	resp.OK(c, gin.H{"cancelled": true})
}

func (dc *DraftController) mutate(c *gin.Context, fn func(*services.OrderWizard) bool) {
	v, exists, accepted := dc.drafts.Mutate(utils.CurrentUserID(c), fn)
	if !exists {
		resp.NotFound(c, "no active draft")
		return
	}
	payload := dc.draftPayload(v)
	payload["accepted"] = accepted
	resp.OK(c, payload)
}
