package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/syafiqfadli/food-ordering-app-server/pkg/resp"
	"github.com/syafiqfadli/food-ordering-app-server/services"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// PATCH /user/add-to-cart
func (h *CartController) AddToCart(c *gin.Context) {
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, msgMissingField)
		return
	}
	cart, err := h.Svc.AddItem(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Data(c, gin.H{"cart": cart})
}

// DELETE /user/cart
func (h *CartController) RemoveCart(c *gin.Context) {
	var req struct {
		FirebaseID string `json:"firebaseId" binding:"required"`
		CartID     string `json:"cartId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, msgMissingField)
		return
	}
	cart, err := h.Svc.RemoveGroup(c.Request.Context(), req.FirebaseID, req.CartID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Data(c, gin.H{"cart": cart})
}

// DELETE /user/cart/menu
func (h *CartController) RemoveMenu(c *gin.Context) {
	var req struct {
		FirebaseID string `json:"firebaseId" binding:"required"`
		CartID     string `json:"cartId" binding:"required"`
		MenuID     string `json:"menuId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, msgMissingField)
		return
	}
	cart, err := h.Svc.RemoveLine(c.Request.Context(), req.FirebaseID, req.CartID, req.MenuID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Data(c, gin.H{"cart": cart})
}
