package handler

import (
	"net/http"

	"communityhub/internal/middleware"
	"communityhub/internal/model"
	"communityhub/internal/pkg"
	"communityhub/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc *service.UserService
}

type SignupReq struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SigninReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func NewAuthHandler(svc *service.UserService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, pkg.ErrValidation.WithMessage("name, email and password expected"))
		return
	}

	user, token, err := h.svc.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": userData(user),
		"meta": gin.H{"access_token": token},
	})
}

func (h *AuthHandler) Signin(c *gin.Context) {
	var req SigninReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, pkg.ErrValidation.WithMessage("email and password expected"))
		return
	}

	user, token, err := h.svc.Signin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": userData(user),
		"meta": gin.H{"access_token": token},
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.svc.Me(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": userData(user)})
}

// userData is the only place user records are serialized; the password hash
// never leaves the service layer.
func userData(u *model.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"name":       u.Name,
		"email":      u.Email,
		"created_at": u.CreatedAt,
	}
}
