package user

import (
	"context"
	"fmt"

	"github.com/anzhiyu-c/moyu-blog/pkg/constant"
	"github.com/anzhiyu-c/moyu-blog/pkg/domain/model"
	"github.com/anzhiyu-c/moyu-blog/pkg/domain/repository"
	"github.com/anzhiyu-c/moyu-blog/pkg/idgen"
)

// RecentPostsLimit 作者详情页展示的最近文章数量
const RecentPostsLimit = 3

// Service 定义了作者目录相关的业务逻辑接口
type Service interface {
	ListAuthors(ctx context.Context, page, pageSize int) ([]*model.AuthorInfo, int, error)
	GetAuthor(ctx context.Context, publicID string) (*model.AuthorInfo, []*model.Post, error)
}

type service struct {
	userRepo repository.UserRepository
	postRepo repository.PostRepository
}

// NewService 是 service 的构造函数
func NewService(userRepo repository.UserRepository, postRepo repository.PostRepository) Service {
	return &service{userRepo: userRepo, postRepo: postRepo}
}

// ListAuthors 按昵称顺序分页返回作者目录，每位作者附带其发文数。
func (s *service) ListAuthors(ctx context.Context, page, pageSize int) ([]*model.AuthorInfo, int, error) {
	users, total, err := s.userRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("查询作者列表失败: %w", err)
	}

	authors := make([]*model.AuthorInfo, 0, len(users))
	for _, u := range users {
		count, err := s.postRepo.CountByAuthor(ctx, u.ID)
		if err != nil {
			return nil, 0, fmt.Errorf("统计作者文章数失败: %w", err)
		}
		authors = append(authors, &model.AuthorInfo{User: u, PostCount: count})
	}
	return authors, total, nil
}

// GetAuthor 返回作者详情：基础信息、发文数与最近发表的几篇文章。
func (s *service) GetAuthor(ctx context.Context, publicID string) (*model.AuthorInfo, []*model.Post, error) {
	dbID, entityType, err := idgen.DecodePublicID(publicID)
	if err != nil || entityType != idgen.EntityTypeUser {
		return nil, nil, fmt.Errorf("%w: 无效的作者ID", constant.ErrInvalidPublicID)
	}

	u, err := s.userRepo.FindByID(ctx, dbID)
	if err != nil {
		return nil, nil, fmt.Errorf("数据库查询失败: %w", err)
	}
	if u == nil {
		return nil, nil, fmt.Errorf("%w: 作者不存在", constant.ErrNotFound)
	}

	count, err := s.postRepo.CountByAuthor(ctx, u.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("统计作者文章数失败: %w", err)
	}

	recent, err := s.postRepo.ListRecentByAuthor(ctx, u.ID, RecentPostsLimit)
	if err != nil {
		return nil, nil, fmt.Errorf("查询作者最近文章失败: %w", err)
	}

	return &model.AuthorInfo{User: u, PostCount: count}, recent, nil
}
