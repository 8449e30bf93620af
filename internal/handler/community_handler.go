package handler

import (
	"net/http"
	"time"

	"communityhub/internal/middleware"
	"communityhub/internal/pkg"
	"communityhub/internal/service"

	"github.com/gin-gonic/gin"
)

type CommunityHandler struct {
	svc     *service.CommunityService
	members *service.MemberService
}

type CommunityCreateReq struct {
	Name string `json:"name" binding:"required"`
}

// communityExpandedItem carries the owner expanded to its safe fields.
type communityExpandedItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Owner     ref       `json:"owner"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// communityOwnedItem leaves the owner as a bare id; the caller is the owner.
type communityOwnedItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Owner     string    `json:"owner"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type memberItem struct {
	ID        string    `json:"id"`
	Community string    `json:"community"`
	User      ref       `json:"user"`
	Role      ref       `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func NewCommunityHandler(svc *service.CommunityService, members *service.MemberService) *CommunityHandler {
	return &CommunityHandler{svc: svc, members: members}
}

func (h *CommunityHandler) Create(c *gin.Context) {
	var req CommunityCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, pkg.ErrValidation.WithMessage("community name is required"))
		return
	}

	community, err := h.svc.CreateCommunity(c.Request.Context(), middleware.CallerID(c), req.Name)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":         community.ID,
		"name":       community.Name,
		"slug":       community.Slug,
		"owner":      community.OwnerID,
		"created_at": community.CreatedAt,
		"updated_at": community.UpdatedAt,
	})
}

func (h *CommunityHandler) List(c *gin.Context) {
	page := pkg.ParsePage(c.Query("page"))

	rows, meta, err := h.svc.ListCommunities(c.Request.Context(), page)
	if err != nil {
		fail(c, err)
		return
	}

	data := make([]communityExpandedItem, 0, len(rows))
	for _, row := range rows {
		data = append(data, communityExpandedItem{
			ID:        row.ID,
			Name:      row.Name,
			Slug:      row.Slug,
			Owner:     ref{ID: row.OwnerID, Name: row.OwnerName},
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"meta": gin.H{
			"totalDocuments": meta.Total,
			"pages":          meta.Pages,
			"page":           meta.Page,
		},
		"data": data,
	})
}

func (h *CommunityHandler) ListMembers(c *gin.Context) {
	communityID := c.Param("id")
	page := pkg.ParsePage(c.Query("page"))

	rows, meta, err := h.members.ListMembers(c.Request.Context(), communityID, page)
	if err != nil {
		fail(c, err)
		return
	}

	data := make([]memberItem, 0, len(rows))
	for _, row := range rows {
		data = append(data, memberItem{
			ID:        row.ID,
			Community: row.CommunityID,
			User:      ref{ID: row.UserID, Name: row.UserName},
			Role:      ref{ID: row.RoleID, Name: row.RoleName},
			CreatedAt: row.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"meta": gin.H{
			"totalMembers": meta.Total,
			"pages":        meta.Pages,
			"page":         meta.Page,
		},
		"data": data,
	})
}

func (h *CommunityHandler) ListOwned(c *gin.Context) {
	page := pkg.ParsePage(c.Query("page"))

	rows, meta, err := h.svc.ListOwned(c.Request.Context(), middleware.CallerID(c), page)
	if err != nil {
		fail(c, err)
		return
	}

	data := make([]communityOwnedItem, 0, len(rows))
	for _, row := range rows {
		data = append(data, communityOwnedItem{
			ID:        row.ID,
			Name:      row.Name,
			Slug:      row.Slug,
			Owner:     row.OwnerID,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"meta": gin.H{
			"totalCommunitiesOwned": meta.Total,
			"pages":                 meta.Pages,
			"page":                  meta.Page,
		},
		"data": data,
	})
}

func (h *CommunityHandler) ListJoined(c *gin.Context) {
	page := pkg.ParsePage(c.Query("page"))

	rows, meta, err := h.svc.ListJoined(c.Request.Context(), middleware.CallerID(c), page)
	if err != nil {
		fail(c, err)
		return
	}

	data := make([]communityExpandedItem, 0, len(rows))
	for _, row := range rows {
		data = append(data, communityExpandedItem{
			ID:        row.ID,
			Name:      row.Name,
			Slug:      row.Slug,
			Owner:     ref{ID: row.OwnerID, Name: row.OwnerName},
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"meta": gin.H{
			"totalCommunitiesJoined": meta.Total,
			"pages":                  meta.Pages,
			"page":                   meta.Page,
		},
		"data": data,
	})
}
