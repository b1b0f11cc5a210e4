/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 14:35:44
 * @LastEditTime: 2025-09-22 12:01:36
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"

	"github.com/anzhiyu-c/moyu-blog/pkg/domain/model"
)

// UserRepository 定义了所有用户数据操作的契约。
type UserRepository interface {
	// Create 创建一个新用户，成功后回填 entity 的 ID 与时间戳。
	Create(ctx context.Context, entity *model.User) error

	// FindByID 根据用户id(number)查找用户，未找到时返回 (nil, nil)
	FindByID(ctx context.Context, id uint) (*model.User, error)

	// FindByIDs 批量查找用户，结果顺序不保证
	FindByIDs(ctx context.Context, ids []uint) ([]*model.User, error)

	// FindByUsername 根据用户名(string)查找用户
	FindByUsername(ctx context.Context, username string) (*model.User, error)

	// FindByEmail 根据邮箱(string)查找用户
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// List 分页查询用户列表，按昵称排序，返回总数
	List(ctx context.Context, page, pageSize int) ([]*model.User, int, error)
}
