package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/syafiqfadli/food-ordering-app-server/pkg/resp"
	"github.com/syafiqfadli/food-ordering-app-server/services"
)

type UserController struct{ Svc *services.UserService }

func NewUserController(s *services.UserService) *UserController { return &UserController{Svc: s} }

// GET /user/list
func (h *UserController) List(c *gin.Context) {
	users, err := h.Svc.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	resp.Data(c, gin.H{"users": users})
}

// GET /user/info?firebaseId=
func (h *UserController) Info(c *gin.Context) {
	firebaseID := c.Query("firebaseId")
	if firebaseID == "" {
		resp.BadRequest(c, msgMissingField)
		return
	}
	u, err := h.Svc.Get(c.Request.Context(), firebaseID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Data(c, gin.H{"user": u})
}

// GET /user/cart?firebaseId=
func (h *UserController) Cart(c *gin.Context) {
	firebaseID := c.Query("firebaseId")
	if firebaseID == "" {
		resp.BadRequest(c, msgMissingField)
		return
	}
	cart, err := h.Svc.Cart(c.Request.Context(), firebaseID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Data(c, gin.H{"cart": cart})
}

// POST /user/create
func (h *UserController) Create(c *gin.Context) {
	var req services.CreateUserIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, msgMissingField)
		return
	}
	if err := h.Svc.Create(c.Request.Context(), &req); err != nil {
		fail(c, err)
		return
	}
	resp.Message(c, "User created successfully.")
}

// DELETE /user/delete
func (h *UserController) Delete(c *gin.Context) {
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
	resp.Message(c, "User with email "+req.Email+" has been deleted.")
}
