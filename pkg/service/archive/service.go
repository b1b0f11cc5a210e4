/*
 * @Description: 归档筛选业务逻辑，三个筛选维度的候选项互相联动
 * @Author: 安知鱼
 * @Date: 2025-09-08 09:31:17
 * @LastEditTime: 2025-10-05 21:08:49
 * @LastEditors: 安知鱼
 */
package archive

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/anzhiyu-c/moyu-blog/pkg/domain/model"
	"github.com/anzhiyu-c/moyu-blog/pkg/domain/repository"
	"github.com/anzhiyu-c/moyu-blog/pkg/idgen"
	postsvc "github.com/anzhiyu-c/moyu-blog/pkg/service/post"
)

// Service 定义了归档页相关的业务逻辑接口
type Service interface {
	// Resolve 计算当前筛选条件下，每个筛选维度仍然可选的候选项。
	Resolve(ctx context.Context, sel model.ArchiveSelection) (*model.ArchiveOptions, error)
	// ListPosts 返回满足筛选条件的文章分页。
	ListPosts(ctx context.Context, sel model.ArchiveSelection, page int) (*model.PostPage, error)
}

type service struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// NewService 是 service 的构造函数
func NewService(postRepo repository.PostRepository, userRepo repository.UserRepository) Service {
	return &service{postRepo: postRepo, userRepo: userRepo}
}

// Resolve 的联动规则：某一维度的候选项，由「其余两个维度的已选值」筛出的文章集合决定，
// 维度自身的已选值不参与自己候选项的计算，这样已选值始终出现在自己的候选列表里。
// 当三个维度的完整组合匹配不到任何文章时，三个候选列表都返回空。
func (s *service) Resolve(ctx context.Context, sel model.ArchiveSelection) (*model.ArchiveOptions, error) {
	options := &model.ArchiveOptions{
		Year:   []model.FacetOption{},
		Month:  []model.FacetOption{},
		Author: []model.FacetOption{},
	}

	if !sel.IsZero() {
		matched, err := s.postRepo.Count(ctx, sel)
		if err != nil {
			return nil, fmt.Errorf("统计筛选结果失败: %w", err)
		}
		if matched == 0 {
			return options, nil
		}
	}

	yearOptions, err := s.resolveYears(ctx, sel)
	if err != nil {
		return nil, err
	}
	monthOptions, err := s.resolveMonths(ctx, sel)
	if err != nil {
		return nil, err
	}
	authorOptions, err := s.resolveAuthors(ctx, sel)
	if err != nil {
		return nil, err
	}

	options.Year = yearOptions
	options.Month = monthOptions
	options.Author = authorOptions
	return options, nil
}

// resolveYears 计算年份候选项，按年份从新到旧排列。
func (s *service) resolveYears(ctx context.Context, sel model.ArchiveSelection) ([]model.FacetOption, error) {
	peers := sel
	peers.Year = nil

	years, err := s.postRepo.DistinctYears(ctx, peers)
	if err != nil {
		return nil, fmt.Errorf("查询年份候选项失败: %w", err)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	options := make([]model.FacetOption, 0, len(years))
	for _, y := range years {
		options = append(options, model.FacetOption{
			Value: strconv.Itoa(y),
			Name:  strconv.Itoa(y),
		})
	}
	return options, nil
}

// resolveMonths 计算月份候选项，按 1-12 月的自然顺序排列。
func (s *service) resolveMonths(ctx context.Context, sel model.ArchiveSelection) ([]model.FacetOption, error) {
	peers := sel
	peers.Month = nil

	months, err := s.postRepo.DistinctMonths(ctx, peers)
	if err != nil {
		return nil, fmt.Errorf("查询月份候选项失败: %w", err)
	}
	sort.Ints(months)

	options := make([]model.FacetOption, 0, len(months))
	for _, m := range months {
		if m < 1 || m > 12 {
			continue
		}
		options = append(options, model.FacetOption{
			Value: strconv.Itoa(m),
			Name:  time.Month(m).String(),
		})
	}
	return options, nil
}

// resolveAuthors 计算作者候选项，按昵称的字母顺序排列。
func (s *service) resolveAuthors(ctx context.Context, sel model.ArchiveSelection) ([]model.FacetOption, error) {
	peers := sel
	peers.AuthorID = nil

	authorIDs, err := s.postRepo.DistinctAuthorIDs(ctx, peers)
	if err != nil {
		return nil, fmt.Errorf("查询作者候选项失败: %w", err)
	}

	users, err := s.userRepo.FindByIDs(ctx, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("批量查询作者信息失败: %w", err)
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].Nickname != users[j].Nickname {
			return users[i].Nickname < users[j].Nickname
		}
		return users[i].ID < users[j].ID
	})

	options := make([]model.FacetOption, 0, len(users))
	for _, u := range users {
		publicID, err := idgen.GeneratePublicID(u.ID, idgen.EntityTypeUser)
		if err != nil {
			return nil, fmt.Errorf("生成作者公共ID失败: %w", err)
		}
		options = append(options, model.FacetOption{
			Value: publicID,
			Name:  u.Nickname,
		})
	}
	return options, nil
}

// ListPosts 返回满足筛选条件的文章分页，与首页共用每页数量。
func (s *service) ListPosts(ctx context.Context, sel model.ArchiveSelection, page int) (*model.PostPage, error) {
	if page < 1 {
		page = 1
	}

	items, total, err := s.postRepo.List(ctx, &model.ListPostsOptions{
		Page:      page,
		PageSize:  postsvc.PostsPerPage,
		Selection: sel,
	})
	if err != nil {
		return nil, fmt.Errorf("查询归档文章列表失败: %w", err)
	}

	return model.NewPostPage(items, total, page, postsvc.PostsPerPage), nil
}
