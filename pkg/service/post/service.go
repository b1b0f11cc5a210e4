/*
 * @Description: 文章业务逻辑，包括发布校验与首页分页
 * @Author: 安知鱼
 * @Date: 2025-09-07 10:12:44
 * @LastEditTime: 2025-10-03 16:40:21
 * @LastEditors: 安知鱼
 */
package post

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/anzhiyu-c/moyu-blog/internal/pkg/parser"
	"github.com/anzhiyu-c/moyu-blog/pkg/constant"
	"github.com/anzhiyu-c/moyu-blog/pkg/domain/model"
	"github.com/anzhiyu-c/moyu-blog/pkg/domain/repository"
	"github.com/anzhiyu-c/moyu-blog/pkg/idgen"
)

const (
	// PostsPerPage 首页与归档列表每页的文章数
	PostsPerPage = 10
	// MinBodyRunes 正文的最小字符数（按 Unicode 字符计）
	MinBodyRunes = 10
)

// Service 定义了文章相关的业务逻辑接口
type Service interface {
	Create(ctx context.Context, authorID uint, title, body string) (*model.Post, error)
	GetByPublicID(ctx context.Context, publicID string) (*model.Post, error)
	ListHome(ctx context.Context, page int) (*model.PostPage, error)
}

type service struct {
	postRepo repository.PostRepository
}

// NewService 是 service 的构造函数
func NewService(postRepo repository.PostRepository) Service {
	return &service{postRepo: postRepo}
}

// ValidatePost 校验文章的标题与正文。
// 标题去除首尾空白后不能为空；正文按 Unicode 字符计数不得少于 MinBodyRunes。
func ValidatePost(title, body string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: 标题不能为空", constant.ErrValidation)
	}
	if utf8.RuneCountInString(body) < MinBodyRunes {
		return fmt.Errorf("%w: 正文长度不能少于 %d 个字符", constant.ErrValidation, MinBodyRunes)
	}
	return nil
}

// Create 校验并发布一篇文章，发布时间取服务器当前时间。
func (s *service) Create(ctx context.Context, authorID uint, title, body string) (*model.Post, error) {
	if err := ValidatePost(title, body); err != nil {
		return nil, err
	}

	bodyHTML, err := parser.MarkdownToHTML(body)
	if err != nil {
		return nil, fmt.Errorf("渲染文章内容失败: %w", err)
	}

	created, err := s.postRepo.Create(ctx, &model.CreatePostParams{
		Title:    strings.TrimSpace(title),
		Body:     body,
		BodyHTML: bodyHTML,
		PubDate:  time.Now(),
		AuthorID: authorID,
	})
	if err != nil {
		return nil, fmt.Errorf("保存文章失败: %w", err)
	}
	return created, nil
}

// GetByPublicID 通过对外公共ID查找文章。
func (s *service) GetByPublicID(ctx context.Context, publicID string) (*model.Post, error) {
	dbID, entityType, err := idgen.DecodePublicID(publicID)
	if err != nil || entityType != idgen.EntityTypePost {
		return nil, fmt.Errorf("%w: 无效的文章ID", constant.ErrInvalidPublicID)
	}

	found, err := s.postRepo.FindByID(ctx, dbID)
	if err != nil {
		return nil, fmt.Errorf("数据库查询失败: %w", err)
	}
	if found == nil {
		return nil, fmt.Errorf("%w: 文章不存在", constant.ErrNotFound)
	}
	return found, nil
}

// ListHome 返回首页的文章分页，按发布时间倒序。
func (s *service) ListHome(ctx context.Context, page int) (*model.PostPage, error) {
	return s.listPage(ctx, model.ArchiveSelection{}, page)
}

// listPage 执行通用的分页查询并计算上一页/下一页页码。
func (s *service) listPage(ctx context.Context, sel model.ArchiveSelection, page int) (*model.PostPage, error) {
	if page < 1 {
		page = 1
	}

	items, total, err := s.postRepo.List(ctx, &model.ListPostsOptions{
		Page:      page,
		PageSize:  PostsPerPage,
		Selection: sel,
	})
	if err != nil {
		return nil, fmt.Errorf("查询文章列表失败: %w", err)
	}

	return model.NewPostPage(items, total, page, PostsPerPage), nil
}
