package controllers

import (
	"errors"
	"path/filepath"

	"github.com/coldup-cpu/skfood/pkg/resp"
	"github.com/coldup-cpu/skfood/services"
	"github.com/coldup-cpu/skfood/utils"

	"github.com/gin-gonic/gin"
)

// AdminMenuController serves the publish-menu side of the admin panel.
type AdminMenuController struct {
	menus     *services.MenuService
	uploadDir string
}

func NewAdminMenuController(menus *services.MenuService, uploadDir string) *AdminMenuController {
	return &AdminMenuController{menus: menus, uploadDir: uploadDir}
}

// PUT /admin/createMeal
func (ac *AdminMenuController) PublishMenu(c *gin.Context) {
	var req services.PublishMenuReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	menu, err := ac.menus.Publish(&req)
	if err != nil {
		var ve services.ValidationError
		if errors.As(err, &ve) {
			resp.BadRequest(c, ve.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, menu)
}

// GET /admin/menuHistoryLog
func (ac *AdminMenuController) MenuHistory(c *gin.Context) {
	menus, err := ac.menus.History()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, menus)
}

// POST /admin/imageUpload — multipart sabji photo, served back from /uploads.
func (ac *AdminMenuController) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		resp.BadRequest(c, "image file is required")
		return
	}

	ext := filepath.Ext(file.Filename)
	if !utils.AllowedImageExt(ext) {
		resp.BadRequest(c, "unsupported image type")
		return
	}

	filename := utils.UploadFilename(ext)
	savePath := filepath.Join(ac.uploadDir, filename)
	if err := c.SaveUploadedFile(file, savePath); err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.Created(c, gin.H{"url": "/uploads/" + filename})
}
