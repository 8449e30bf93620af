package handler

import (
	"net/http"

	"communityhub/internal/middleware"
	"communityhub/internal/pkg"
	"communityhub/internal/service"

	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	svc *service.MemberService
}

type MemberAddReq struct {
	Community string `json:"community" binding:"required"`
	User      string `json:"user" binding:"required"`
	Role      string `json:"role" binding:"required"`
}

func NewMemberHandler(svc *service.MemberService) *MemberHandler {
	return &MemberHandler{svc: svc}
}

func (h *MemberHandler) Add(c *gin.Context) {
	var req MemberAddReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, pkg.ErrValidation.WithMessage("community, user and role are required"))
		return
	}

	member, err := h.svc.AddMember(c.Request.Context(), middleware.CallerID(c), req.Community, req.User, req.Role)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":         member.ID,
		"community":  member.CommunityID,
		"user":       member.UserID,
		"role":       member.RoleID,
		"created_at": member.CreatedAt,
	})
}

func (h *MemberHandler) Remove(c *gin.Context) {
	if err := h.svc.RemoveMember(c.Request.Context(), middleware.CallerID(c), c.Param("id")); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": true})
}
