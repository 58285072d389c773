package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/syafiqfadli/food-ordering-app-server/configs"
	"github.com/syafiqfadli/food-ordering-app-server/controllers"
	"github.com/syafiqfadli/food-ordering-app-server/repository"
	"github.com/syafiqfadli/food-ordering-app-server/services"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"isSuccess": true}) })

	store := repository.NewMongoStore(configs.DB())

	userSvc := services.NewUserService(store)
	cartSvc := services.NewCartService(store)
	orderSvc := services.NewOrderService(store)
	adminSvc := services.NewAdminService(store)
	catalogSvc := services.NewCatalogService(store, configs.Redis(), cfg.CatalogCacheTTL)

	userCtrl := controllers.NewUserController(userSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	adminCtrl := controllers.NewAdminController(adminSvc, orderSvc, catalogSvc)
	restCtrl := controllers.NewRestaurantController(catalogSvc)

	api := r.Group("/order-me-api")

	// User
	u := api.Group("/user")
	{
		u.GET("/list", userCtrl.List)
		u.GET("/info", userCtrl.Info)
		u.GET("/cart", userCtrl.Cart)
		u.GET("/order", orderCtrl.ListForUser)

		u.POST("/create", userCtrl.Create)

		u.PATCH("/add-to-cart", cartCtrl.AddToCart)
		u.PATCH("/checkout-order", orderCtrl.Checkout)

		u.DELETE("/cart", cartCtrl.RemoveCart)
		u.DELETE("/cart/menu", cartCtrl.RemoveMenu)
		u.DELETE("/delete", userCtrl.Delete)
	}

	// Admin
	a := api.Group("/admin")
	{
		a.GET("/info", adminCtrl.Info)
		a.GET("/restaurant-list", adminCtrl.Restaurants)
		a.GET("/order", adminCtrl.KitchenOrders)

		a.POST("/create", adminCtrl.Create)

		a.PATCH("/update", adminCtrl.Update)
		a.PATCH("/add-restaurant", adminCtrl.AddRestaurant)
		a.PATCH("/add-menu", adminCtrl.AddMenu)
		a.PATCH("/order-status", adminCtrl.OrderStatus)

		a.DELETE("/delete", adminCtrl.Delete)
	}

	// Public catalog
	rest := api.Group("/restaurant")
	{
		rest.GET("/list", restCtrl.List)
		rest.GET("/menu", restCtrl.Menu)
	}
}
