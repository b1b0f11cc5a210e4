/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-15 11:30:55
 * @LastEditTime: 2025-10-08 18:26:37
 * @LastEditors: 安知鱼
 */
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/anzhiyu-c/moyu-blog/internal/app/middleware"
	archive_handler "github.com/anzhiyu-c/moyu-blog/pkg/handler/archive"
	auth_handler "github.com/anzhiyu-c/moyu-blog/pkg/handler/auth"
	post_handler "github.com/anzhiyu-c/moyu-blog/pkg/handler/post"
	user_handler "github.com/anzhiyu-c/moyu-blog/pkg/handler/user"
)

// Router 封装了应用的所有路由和其依赖的处理器。
type Router struct {
	authHandler    *auth_handler.AuthHandler
	postHandler    *post_handler.PostHandler
	userHandler    *user_handler.UserHandler
	archiveHandler *archive_handler.ArchiveHandler
	mw             *middleware.Middleware
}

// NewRouter 是 Router 的构造函数，通过依赖注入接收所有处理器。
func NewRouter(
	authHandler *auth_handler.AuthHandler,
	postHandler *post_handler.PostHandler,
	userHandler *user_handler.UserHandler,
	archiveHandler *archive_handler.ArchiveHandler,
	mw *middleware.Middleware,
) *Router {
	return &Router{
		authHandler:    authHandler,
		postHandler:    postHandler,
		userHandler:    userHandler,
		archiveHandler: archiveHandler,
		mw:             mw,
	}
}

// Setup 在给定的 gin 引擎上注册全部路由。
func (r *Router) Setup(engine *gin.Engine) {
	engine.Use(middleware.Cors())

	api := engine.Group("/api")
	{
		// 认证接口，注册和登录做IP限流防止撞库
		authGroup := api.Group("/auth")
		authGroup.Use(middleware.CustomRateLimit(10, 20))
		{
			authGroup.POST("/register", r.authHandler.Register)
			authGroup.POST("/login", r.authHandler.Login)
			authGroup.POST("/refresh", r.authHandler.RefreshToken)
		}

		// 公开接口
		api.GET("/posts", r.postHandler.List)
		api.GET("/posts/:id", r.postHandler.Get)
		api.GET("/authors", r.userHandler.ListAuthors)
		api.GET("/authors/:id", r.userHandler.GetAuthor)
		api.GET("/archive/posts", r.archiveHandler.ListPosts)
		api.GET("/archive/options", r.archiveHandler.GetOptions)

		// 需要登录的接口
		authed := api.Group("")
		authed.Use(r.mw.JWTAuth())
		{
			authed.POST("/posts", r.postHandler.Create)
		}
	}
}
