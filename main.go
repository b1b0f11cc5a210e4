/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-16 00:21:55
 * @LastEditTime: 2025-10-09 12:19:06
 * @LastEditors: 安知鱼
 */
package main

import (
	"log"

	"github.com/anzhiyu-c/moyu-blog/cmd/server"
)

// @title           Moyu Blog API
// @version         1.0
// @description     多用户博客应用接口文档

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 在请求头中添加 Bearer Token，格式为: Bearer {token}

//go:generate go run github.com/swaggo/swag/cmd/swag init -g main.go -o docs
func main() {
	app, cleanup, err := server.NewApp()
	if err != nil {
		log.Fatalf("应用初始化失败: %v", err)
	}
	defer cleanup()

	if err := app.Run(); err != nil {
		log.Fatalf("应用运行失败: %v", err)
	}
}
