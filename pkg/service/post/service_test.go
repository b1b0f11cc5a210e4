package post

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/anzhiyu-c/moyu-blog/pkg/constant"
	"github.com/anzhiyu-c/moyu-blog/pkg/domain/model"
	"github.com/anzhiyu-c/moyu-blog/pkg/domain/repository"
)

// fakePostRepo 是 PostRepository 的内存实现，用于测试业务逻辑。
type fakePostRepo struct {
	posts  []*model.Post
	nextID uint
}

var _ repository.PostRepository = (*fakePostRepo)(nil)

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{nextID: 1}
}

func (r *fakePostRepo) matches(sel model.ArchiveSelection, p *model.Post) bool {
	if sel.Year != nil && p.PubDate.Year() != *sel.Year {
		return false
	}
	if sel.Month != nil && int(p.PubDate.Month()) != *sel.Month {
		return false
	}
	if sel.AuthorID != nil && p.AuthorID != *sel.AuthorID {
		return false
	}
	return true
}

func (r *fakePostRepo) filtered(sel model.ArchiveSelection) []*model.Post {
	var out []*model.Post
	for _, p := range r.posts {
		if r.matches(sel, p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].PubDate.Equal(out[j].PubDate) {
			return out[i].PubDate.After(out[j].PubDate)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (r *fakePostRepo) Create(ctx context.Context, params *model.CreatePostParams) (*model.Post, error) {
	p := &model.Post{
		ID:        r.nextID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		Title:     params.Title,
		Body:      params.Body,
		BodyHTML:  params.BodyHTML,
		PubDate:   params.PubDate,
		AuthorID:  params.AuthorID,
	}
	r.nextID++
	r.posts = append(r.posts, p)
	return p, nil
}

func (r *fakePostRepo) FindByID(ctx context.Context, id uint) (*model.Post, error) {
	for _, p := range r.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePostRepo) List(ctx context.Context, options *model.ListPostsOptions) ([]*model.Post, int, error) {
	all := r.filtered(options.Selection)
	total := len(all)
	if options.Page > 0 && options.PageSize > 0 {
		start := (options.Page - 1) * options.PageSize
		if start > total {
			start = total
		}
		end := start + options.PageSize
		if end > total {
			end = total
		}
		all = all[start:end]
	}
	return all, total, nil
}

func (r *fakePostRepo) Count(ctx context.Context, sel model.ArchiveSelection) (int, error) {
	return len(r.filtered(sel)), nil
}

func (r *fakePostRepo) DistinctYears(ctx context.Context, sel model.ArchiveSelection) ([]int, error) {
	seen := map[int]bool{}
	var out []int
	for _, p := range r.filtered(sel) {
		y := p.PubDate.Year()
		if !seen[y] {
			seen[y] = true
			out = append(out, y)
		}
	}
	return out, nil
}

func (r *fakePostRepo) DistinctMonths(ctx context.Context, sel model.ArchiveSelection) ([]int, error) {
	seen := map[int]bool{}
	var out []int
	for _, p := range r.filtered(sel) {
		m := int(p.PubDate.Month())
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakePostRepo) DistinctAuthorIDs(ctx context.Context, sel model.ArchiveSelection) ([]uint, error) {
	seen := map[uint]bool{}
	var out []uint
	for _, p := range r.filtered(sel) {
		if !seen[p.AuthorID] {
			seen[p.AuthorID] = true
			out = append(out, p.AuthorID)
		}
	}
	return out, nil
}

func (r *fakePostRepo) CountByAuthor(ctx context.Context, authorID uint) (int, error) {
	return len(r.filtered(model.ArchiveSelection{AuthorID: &authorID})), nil
}

func (r *fakePostRepo) ListRecentByAuthor(ctx context.Context, authorID uint, limit int) ([]*model.Post, error) {
	all := r.filtered(model.ArchiveSelection{AuthorID: &authorID})
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// seedPosts 批量写入 n 篇文章，发布时间逐篇递减保证排序可预测。
func seedPosts(t *testing.T, repo *fakePostRepo, n int) {
	t.Helper()
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		_, err := repo.Create(context.Background(), &model.CreatePostParams{
			Title:    fmt.Sprintf("Post Number %d", i+1),
			Body:     "这是一篇用于测试的文章正文内容。",
			BodyHTML: "<p>这是一篇用于测试的文章正文内容。</p>",
			PubDate:  base.Add(-time.Duration(i) * 24 * time.Hour),
			AuthorID: uint(i%3 + 1),
		})
		if err != nil {
			t.Fatalf("写入测试文章失败: %v", err)
		}
	}
}

func TestValidatePost(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		body    string
		wantErr bool
	}{
		{"标题和正文都合法", "你好世界", "0123456789", false},
		{"标题为空", "", "0123456789", true},
		{"标题只有空白字符", "   \t ", "0123456789", true},
		{"正文只有9个字符", "标题", "123456789", true},
		{"正文恰好10个字符", "标题", "1234567890", false},
		{"中文正文恰好10个字符", "标题", "一二三四五六七八九十", false},
		{"中文正文只有9个字符", "标题", "一二三四五六七八九", true},
		{"正文为空", "标题", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePost(tt.title, tt.body)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePost(%q, %q) error = %v, wantErr %v", tt.title, tt.body, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, constant.ErrValidation) {
				t.Errorf("校验错误应包裹 ErrValidation, got %v", err)
			}
		})
	}
}

func TestCreate(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewService(repo)

	t.Run("发布成功并渲染HTML", func(t *testing.T) {
		created, err := svc.Create(context.Background(), 1, "  第一篇文章  ", "# 标题\n\n这是正文内容。")
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if created.Title != "第一篇文章" {
			t.Errorf("标题应去除首尾空白, got %q", created.Title)
		}
		if created.BodyHTML == "" {
			t.Error("BodyHTML 不应为空")
		}
		if created.PubDate.IsZero() {
			t.Error("PubDate 应在创建时固定")
		}
	})

	t.Run("正文过短被拒绝", func(t *testing.T) {
		_, err := svc.Create(context.Background(), 1, "标题", "太短了")
		if !errors.Is(err, constant.ErrValidation) {
			t.Errorf("期望 ErrValidation, got %v", err)
		}
	})
}

func TestListHome_Pagination(t *testing.T) {
	tests := []struct {
		name         string
		total        int
		page         int
		wantItems    int
		wantPrevPage bool
		wantNextPage bool
	}{
		{"空库第一页", 0, 1, 0, false, false},
		{"1篇文章第一页", 1, 1, 1, false, false},
		{"恰好10篇第一页", 10, 1, 10, false, false},
		{"11篇第一页有下一页", 11, 1, 10, false, true},
		{"11篇第二页只有1篇", 11, 2, 1, true, false},
		{"25篇第二页", 25, 2, 10, true, true},
		{"25篇第三页剩5篇", 25, 3, 5, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakePostRepo()
			seedPosts(t, repo, tt.total)
			svc := NewService(repo)

			page, err := svc.ListHome(context.Background(), tt.page)
			if err != nil {
				t.Fatalf("ListHome() error = %v", err)
			}
			if len(page.Items) != tt.wantItems {
				t.Errorf("len(Items) = %d, want %d", len(page.Items), tt.wantItems)
			}
			if page.Total != tt.total {
				t.Errorf("Total = %d, want %d", page.Total, tt.total)
			}
			if (page.PrevPage != nil) != tt.wantPrevPage {
				t.Errorf("PrevPage = %v, want present=%v", page.PrevPage, tt.wantPrevPage)
			}
			if (page.NextPage != nil) != tt.wantNextPage {
				t.Errorf("NextPage = %v, want present=%v", page.NextPage, tt.wantNextPage)
			}
		})
	}
}

// 逐页翻完所有页面后，应当不重不漏地覆盖全部文章，且整体保持发布时间倒序。
func TestListHome_PagesCoverAllPosts(t *testing.T) {
	const total = 25
	repo := newFakePostRepo()
	seedPosts(t, repo, total)
	svc := NewService(repo)

	seen := map[uint]bool{}
	var lastPubDate time.Time
	page := 1
	for {
		result, err := svc.ListHome(context.Background(), page)
		if err != nil {
			t.Fatalf("第 %d 页查询失败: %v", page, err)
		}
		for _, p := range result.Items {
			if seen[p.ID] {
				t.Fatalf("文章 %d 在多个页面出现", p.ID)
			}
			seen[p.ID] = true
			if !lastPubDate.IsZero() && p.PubDate.After(lastPubDate) {
				t.Fatalf("跨页排序被破坏: %v 出现在 %v 之后", p.PubDate, lastPubDate)
			}
			lastPubDate = p.PubDate
		}
		if result.NextPage == nil {
			break
		}
		page = *result.NextPage
	}

	if len(seen) != total {
		t.Errorf("翻页共覆盖 %d 篇文章, want %d", len(seen), total)
	}
}
