package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/syafiqfadli/food-ordering-app-server/pkg/resp"
	"github.com/syafiqfadli/food-ordering-app-server/services"
)

type RestaurantController struct{ Svc *services.CatalogService }

func NewRestaurantController(s *services.CatalogService) *RestaurantController {
	return &RestaurantController{Svc: s}
}

// GET /restaurant/list
func (h *RestaurantController) List(c *gin.Context) {
	rests, err := h.Svc.ListRestaurants(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	resp.Data(c, gin.H{"restaurant": rests})
}

// GET /restaurant/menu?restaurantId=
func (h *RestaurantController) Menu(c *gin.Context) {
	restaurantID := c.Query("restaurantId")
	if restaurantID == "" {
		resp.BadRequest(c, msgMissingField)
		return
	}
	rest, err := h.Svc.Menu(c.Request.Context(), restaurantID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Data(c, gin.H{"restaurant": rest})
}
