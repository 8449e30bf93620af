package handler

import (
	"net/http"
	"time"

	"communityhub/internal/pkg"
	"communityhub/internal/service"

	"github.com/gin-gonic/gin"
)

type RoleHandler struct {
	svc *service.RoleService
}

type RoleCreateReq struct {
	Name string `json:"name"`
}

type roleItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewRoleHandler(svc *service.RoleService) *RoleHandler {
	return &RoleHandler{svc: svc}
}

func (h *RoleHandler) Create(c *gin.Context) {
	var req RoleCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, pkg.ErrValidation.WithMessage("role name is required"))
		return
	}

	role, err := h.svc.CreateRole(c.Request.Context(), req.Name)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":         role.ID,
		"name":       role.Name,
		"created_at": role.CreatedAt,
		"updated_at": role.UpdatedAt,
	})
}

func (h *RoleHandler) List(c *gin.Context) {
	page := pkg.ParsePage(c.Query("page"))

	roles, meta, err := h.svc.ListRoles(c.Request.Context(), page)
	if err != nil {
		fail(c, err)
		return
	}

	content := make([]roleItem, 0, len(roles))
	for _, r := range roles {
		content = append(content, roleItem{
			ID:        r.ID,
			Name:      r.Name,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"meta": gin.H{
			"total": meta.Total,
			"pages": meta.Pages,
			"page":  meta.Page,
		},
		"content": content,
	})
}
