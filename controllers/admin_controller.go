package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/syafiqfadli/food-ordering-app-server/pkg/resp"
	"github.com/syafiqfadli/food-ordering-app-server/services"
)

type AdminController struct {
	Svc     *services.AdminService
	Orders  *services.OrderService
	Catalog *services.CatalogService
}

func NewAdminController(s *services.AdminService, o *services.OrderService, cat *services.CatalogService) *AdminController {
	return &AdminController{Svc: s, Orders: o, Catalog: cat}
}

// GET /admin/info?email=
func (h *AdminController) Info(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		resp.BadRequest(c, msgMissingField)
		return
	}
	a, err := h.Svc.Get(c.Request.Context(), email)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Data(c, gin.H{"admin": a})
}

// POST /admin/create
func (h *AdminController) Create(c *gin.Context) {
	var req services.CreateAdminIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, msgMissingField)
		return
	}
	a, err := h.Svc.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Data(c, gin.H{"admin": a})
}

// PATCH /admin/update
func (h *AdminController) Update(c *gin.Context) {
	var req services.UpdateAdminIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, msgMissingField)
		return
	}
	a, err := h.Svc.Update(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Data(c, gin.H{"admin": a})
}

// DELETE /admin/delete
func (h *AdminController) Delete(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, msgMissingField)
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), req.Email); err != nil {
		fail(c, err)
		return
	}
	resp.Message(c, "Admin with email "+req.Email+" has been deleted.")
}

// GET /admin/restaurant-list?email=
func (h *AdminController) Restaurants(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		resp.BadRequest(c, msgMissingField)
		return
	}
	rests, err := h.Svc.Restaurants(c.Request.Context(), email)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Data(c, gin.H{"restaurant": rests})
}

// PATCH /admin/add-restaurant
func (h *AdminController) AddRestaurant(c *gin.Context) {
	var req struct {
		Email          string `json:"email" binding:"required"`
		RestaurantName string `json:"restaurantName" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, msgMissingField)
		return
	}
	rest, err := h.Svc.AddRestaurant(c.Request.Context(), req.Email, req.RestaurantName)
	if err != nil {
		fail(c, err)
		return
	}
	h.Catalog.InvalidateRestaurants(c.Request.Context())
	resp.Data(c, gin.H{"restaurant": rest})
}

// PATCH /admin/add-menu
func (h *AdminController) AddMenu(c *gin.Context) {
	var req services.AddMenuIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, msgMissingField)
		return
	}
	m, err := h.Svc.AddMenu(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}
	h.Catalog.InvalidateMenu(c.Request.Context(), req.RestaurantID)
	resp.Data(c, gin.H{"menu": m})
}

// GET /admin/order?restaurantId=
func (h *AdminController) KitchenOrders(c *gin.Context) {
	restaurantID := c.Query("restaurantId")
	if restaurantID == "" {
		resp.BadRequest(c, msgMissingField)
		return
	}
	orders, err := h.Orders.KitchenOrders(c.Request.Context(), restaurantID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Data(c, gin.H{"order": orders})
}

// PATCH /admin/order-status
func (h *AdminController) OrderStatus(c *gin.Context) {
	var req struct {
		OrderID string `json:"orderId" binding:"required"`
		From    string `json:"from" binding:"required"`
		To      string `json:"to" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, msgMissingField)
		return
	}
	if err := h.Orders.AdvanceStatus(c.Request.Context(), req.OrderID, req.From, req.To); err != nil {
		fail(c, err)
		return
	}
	resp.Message(c, "Order status updated successfully.")
}
