/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 14:40:18
 * @LastEditTime: 2025-09-24 16:20:47
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"

	"github.com/anzhiyu-c/moyu-blog/pkg/domain/model"
)

// PostRepository 定义了文章数据仓库的接口。
// 它是数据持久化层的抽象，所有方法都使用领域模型和自定义参数，与具体的 ORM (Ent) 解耦。
type PostRepository interface {
	// Create 方法接收一个包含所有必需数据的参数对象，返回创建后的文章领域模型。
	Create(ctx context.Context, params *model.CreatePostParams) (*model.Post, error)

	// FindByID 根据数据库的 uint ID 获取单个文章（含作者），未找到时返回 (nil, nil)。
	FindByID(ctx context.Context, id uint) (*model.Post, error)

	// List 方法根据提供的选项，分页查询文章列表，按发布时间倒序、ID倒序排列，
	// 并返回满足筛选条件的文章总数。
	List(ctx context.Context, options *model.ListPostsOptions) ([]*model.Post, int, error)

	// Count 统计满足筛选条件的文章数量。
	Count(ctx context.Context, sel model.ArchiveSelection) (int, error)

	// DistinctYears 返回满足筛选条件的文章的发布年份去重列表（顺序不保证）。
	DistinctYears(ctx context.Context, sel model.ArchiveSelection) ([]int, error)

	// DistinctMonths 返回满足筛选条件的文章的发布月份(1-12)去重列表（顺序不保证）。
	DistinctMonths(ctx context.Context, sel model.ArchiveSelection) ([]int, error)

	// DistinctAuthorIDs 返回满足筛选条件的文章的作者ID去重列表（顺序不保证）。
	DistinctAuthorIDs(ctx context.Context, sel model.ArchiveSelection) ([]uint, error)

	// CountByAuthor 统计某作者已发表的文章数。
	CountByAuthor(ctx context.Context, authorID uint) (int, error)

	// ListRecentByAuthor 返回某作者最近发表的 limit 篇文章。
	ListRecentByAuthor(ctx context.Context, authorID uint, limit int) ([]*model.Post, error)
}
