// internal/app/bootstrap/bootstrap.go
package bootstrap

import (
	"context"
	"fmt"
	"log"

	"github.com/anzhiyu-c/moyu-blog/ent"
)

type Bootstrapper struct {
	entClient *ent.Client
}

func NewBootstrapper(entClient *ent.Client) *Bootstrapper {
	return &Bootstrapper{entClient: entClient}
}

// InitializeDatabase 同步表结构并做启动检查。
func (b *Bootstrapper) InitializeDatabase() error {
	log.Println("--- 开始执行数据库初始化引导程序 ---")

	if err := b.entClient.Schema.Create(context.Background()); err != nil {
		return fmt.Errorf("数据库 schema 创建/更新失败: %w", err)
	}
	log.Println("--- 数据库 Schema 同步成功 ---")

	b.checkUserTable()

	log.Println("--- 数据库初始化引导程序执行完成 ---")
	return nil
}

// checkUserTable 检查用户表，空库时提示如何填充演示数据。
func (b *Bootstrapper) checkUserTable() {
	count, err := b.entClient.User.Query().Count(context.Background())
	if err != nil {
		log.Printf("⚠️ 查询用户表失败: %v", err)
		return
	}
	if count == 0 {
		log.Println("提示: 用户表为空，可运行 `moyu-seed` 填充演示账号与文章。")
	} else {
		log.Printf("✅ 用户表检查完成，当前共有 %d 个用户。", count)
	}
}
