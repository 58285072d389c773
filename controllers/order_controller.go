package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/syafiqfadli/food-ordering-app-server/pkg/resp"
	"github.com/syafiqfadli/food-ordering-app-server/services"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// PATCH /user/checkout-order
func (h *OrderController) Checkout(c *gin.Context) {
	var req struct {
		FirebaseID string `json:"firebaseId" binding:"required"`
		CartID     string `json:"cartId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, msgMissingField)
		return
	}
	order, err := h.Svc.Checkout(c.Request.Context(), req.FirebaseID, req.CartID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Data(c, gin.H{"order": order})
}

// GET /user/order?firebaseId=
func (h *OrderController) ListForUser(c *gin.Context) {
	firebaseID := c.Query("firebaseId")
	if firebaseID == "" {
		resp.BadRequest(c, msgMissingField)
		return
	}
	orders, err := h.Svc.ListForUser(c.Request.Context(), firebaseID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Data(c, gin.H{"order": orders})
}
