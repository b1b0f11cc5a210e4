/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-16 10:35:28
 * @LastEditTime: 2025-10-09 16:15:28
 * @LastEditors: 安知鱼
 */
// moyu-blog/cmd/server/app.go
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/anzhiyu-c/moyu-blog/internal/app/bootstrap"
	"github.com/anzhiyu-c/moyu-blog/internal/app/middleware"
	"github.com/anzhiyu-c/moyu-blog/internal/infra/persistence/database"
	ent_impl "github.com/anzhiyu-c/moyu-blog/internal/infra/persistence/ent"
	"github.com/anzhiyu-c/moyu-blog/internal/infra/router"
	"github.com/anzhiyu-c/moyu-blog/pkg/config"
	archive_handler "github.com/anzhiyu-c/moyu-blog/pkg/handler/archive"
	auth_handler "github.com/anzhiyu-c/moyu-blog/pkg/handler/auth"
	post_handler "github.com/anzhiyu-c/moyu-blog/pkg/handler/post"
	user_handler "github.com/anzhiyu-c/moyu-blog/pkg/handler/user"
	"github.com/anzhiyu-c/moyu-blog/pkg/idgen"
	archive_service "github.com/anzhiyu-c/moyu-blog/pkg/service/archive"
	"github.com/anzhiyu-c/moyu-blog/pkg/service/auth"
	post_service "github.com/anzhiyu-c/moyu-blog/pkg/service/post"
	user_service "github.com/anzhiyu-c/moyu-blog/pkg/service/user"
)

// App 结构体，用于封装应用的所有核心组件
type App struct {
	cfg    *config.Config
	engine *gin.Engine
	sqlDB  *sql.DB
}

// NewApp 构建整个应用：配置、数据库、仓储、服务、处理器、路由。
func NewApp() (*App, func(), error) {
	// 1. 配置
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("初始化配置失败: %w", err)
	}

	if cfg.GetBool(config.KeyServerDebug) {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// 2. 数据库
	sqlDB, err := database.NewSQLDB(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("初始化数据库连接失败: %w", err)
	}
	entClient, err := database.NewEntClient(sqlDB, cfg)
	if err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("初始化 Ent 客户端失败: %w", err)
	}

	// 3. 公共ID编码器
	if err := idgen.InitSqidsEncoder(); err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("初始化ID编码器失败: %w", err)
	}

	// 4. 数据库引导
	bootstrapper := bootstrap.NewBootstrapper(entClient)
	if err := bootstrapper.InitializeDatabase(); err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("数据库引导失败: %w", err)
	}

	// 5. 仓储层
	userRepo := ent_impl.NewEntUserRepository(entClient)
	postRepo := ent_impl.NewPostRepo(entClient, cfg.GetString(config.KeyDBType))

	// 6. 服务层
	authSvc := auth.NewAuthService(userRepo)
	tokenSvc := auth.NewTokenService(userRepo, cfg)
	postSvc := post_service.NewService(postRepo)
	archiveSvc := archive_service.NewService(postRepo, userRepo)
	userSvc := user_service.NewService(userRepo, postRepo)

	// 7. 处理器与中间件
	authHandler := auth_handler.NewAuthHandler(authSvc, tokenSvc)
	postHandler := post_handler.NewPostHandler(postSvc)
	userHandler := user_handler.NewUserHandler(userSvc)
	archiveHandler := archive_handler.NewArchiveHandler(archiveSvc)
	mw := middleware.NewMiddleware(tokenSvc)

	// 8. 路由
	engine := gin.Default()
	appRouter := router.NewRouter(authHandler, postHandler, userHandler, archiveHandler, mw)
	appRouter.Setup(engine)

	app := &App{
		cfg:    cfg,
		engine: engine,
		sqlDB:  sqlDB,
	}

	cleanup := func() {
		log.Println("正在关闭数据库连接...")
		if err := entClient.Close(); err != nil {
			log.Printf("关闭 Ent 客户端失败: %v", err)
		}
		if err := sqlDB.Close(); err != nil {
			log.Printf("关闭数据库连接失败: %v", err)
		}
	}

	return app, cleanup, nil
}

// Run 启动 HTTP 服务并阻塞，收到退出信号后优雅关闭。
func (a *App) Run() error {
	port := a.cfg.GetString(config.KeyServerPort)
	if port == "" {
		port = "8092"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: a.engine,
	}

	go func() {
		log.Printf("应用程序启动成功，正在监听端口: %s\n", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP 服务异常退出: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("收到退出信号，开始优雅关闭...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("服务关闭超时: %w", err)
	}

	log.Println("服务已关闭。")
	return nil
}
