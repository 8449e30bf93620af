package router

import (
	"communityhub/internal/handler"
	"communityhub/internal/middleware"

	"github.com/gin-gonic/gin"
)

func InitRouter(auth *handler.AuthHandler, role *handler.RoleHandler, community *handler.CommunityHandler, member *handler.MemberHandler) *gin.Engine {
	r := gin.Default()

	authGroup := r.Group("/v1/auth")
	{
		authGroup.POST("/signup", auth.Signup)
		authGroup.POST("/signin", auth.Signin)
		authGroup.GET("/me", middleware.AuthRequired(), auth.Me)
	}

	roleGroup := r.Group("/v1/role")
	{
		roleGroup.POST("", role.Create)
		roleGroup.GET("", role.List)
	}

	communityGroup := r.Group("/v1/community")
	{
		communityGroup.POST("", middleware.AuthRequired(), community.Create)
		communityGroup.GET("", community.List)
		communityGroup.GET("/:id/members", community.ListMembers)
		communityGroup.GET("/me/owner", middleware.AuthRequired(), community.ListOwned)
		communityGroup.GET("/me/member", middleware.AuthRequired(), community.ListJoined)
	}

	memberGroup := r.Group("/v1/member")
	memberGroup.Use(middleware.AuthRequired())
	{
		memberGroup.POST("", member.Add)
		memberGroup.POST("/:id", member.Remove)
	}

	return r
}
