package routes

import (
	"regexp"

	"github.com/coldup-cpu/skfood/configs"
	"github.com/coldup-cpu/skfood/controllers"
	"github.com/coldup-cpu/skfood/middlewares"
	"github.com/coldup-cpu/skfood/repository"
	"github.com/coldup-cpu/skfood/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

var phoneRe = regexp.MustCompile(`^[6-9][0-9]{9}$`)

// RegisterValidators installs the custom binding rules (Indian mobile
// numbers: 10 digits, first digit 6-9).
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("inphone", func(fl validator.FieldLevel) bool {
			return phoneRe.MatchString(fl.Field().String())
		})
	}
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo)
	draftSvc := services.NewDraftService()

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, int(cfg.JWTTTL.Seconds()))
	adminMenuCtrl := controllers.NewAdminMenuController(menuSvc, cfg.UploadDir)
	adminOrderCtrl := controllers.NewAdminOrderController(orderSvc)
	userMenuCtrl := controllers.NewUserMenuController(menuSvc)
	userOrderCtrl := controllers.NewUserOrderController(orderSvc, draftSvc)
	draftCtrl := controllers.NewDraftController(draftSvc, menuSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.POST("/logout", authCtrl.Logout)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
	}

	// Admin panel
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/menuHistoryLog", adminMenuCtrl.MenuHistory)
		admin.PUT("/createMeal", adminMenuCtrl.PublishMenu)
		admin.POST("/imageUpload", adminMenuCtrl.UploadImage)

		admin.GET("/allOrders", adminOrderCtrl.ListAll)
		admin.GET("/orderwithId/:id", adminOrderCtrl.Detail)
		admin.PATCH("/orders/:id/dispatch", adminOrderCtrl.Dispatch)
		admin.PATCH("/orders/:id/deliver", adminOrderCtrl.Deliver)
		admin.PATCH("/orders/:id/cancel", adminOrderCtrl.Cancel)
	}

	// Customer panel
	user := r.Group("/userPanel", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		user.GET("/seeLunchMenu", userMenuCtrl.LunchMenu)
		user.GET("/seeDinnerMenu", userMenuCtrl.DinnerMenu)

		user.POST("/orderPreparedThali", userOrderCtrl.PlaceOrder)
		user.GET("/myAllOrders", userOrderCtrl.MyOrders)
		user.GET("/confirmedOrders", userOrderCtrl.MyUndeliveredOrders)
		user.GET("/myOrderwithId/:id", userOrderCtrl.MyOrderDetail)

		// thali-builder wizard (session drafts)
		user.POST("/draft", draftCtrl.Start)
		user.GET("/draft", draftCtrl.Get)
		user.DELETE("/draft", draftCtrl.Cancel)
		user.POST("/draft/sabji", draftCtrl.AddSabji)
		user.DELETE("/draft/sabji/:name", draftCtrl.RemoveSabji)
		user.POST("/draft/base", draftCtrl.SetBase)
		user.POST("/draft/extras", draftCtrl.SetExtras)
		user.POST("/draft/next", draftCtrl.Next)
		user.POST("/draft/back", draftCtrl.Back)
	}
}
