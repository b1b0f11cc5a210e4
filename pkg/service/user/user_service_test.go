package user

import (
	"context"
	"log"
	"os"
	"sort"
	"testing"
	"time"

	"github.com/anzhiyu-c/moyu-blog/pkg/domain/model"
	"github.com/anzhiyu-c/moyu-blog/pkg/domain/repository"
	"github.com/anzhiyu-c/moyu-blog/pkg/idgen"
)

func TestMain(m *testing.M) {
	if err := idgen.InitSqidsEncoder(); err != nil {
		log.Fatalf("初始化 Sqids 编码器失败: %v", err)
	}
	os.Exit(m.Run())
}

type fakeUserRepo struct {
	users []*model.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func (r *fakeUserRepo) Create(ctx context.Context, entity *model.User) error {
	entity.ID = uint(len(r.users) + 1)
	r.users = append(r.users, entity)
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uint) (*model.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByIDs(ctx context.Context, ids []uint) ([]*model.User, error) {
	var out []*model.User
	for _, id := range ids {
		for _, u := range r.users {
			if u.ID == id {
				out = append(out, u)
			}
		}
	}
	return out, nil
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(ctx context.Context, page, pageSize int) ([]*model.User, int, error) {
	out := make([]*model.User, len(r.users))
	copy(out, r.users)
	sort.Slice(out, func(i, j int) bool { return out[i].Nickname < out[j].Nickname })
	return out, len(out), nil
}

// fakePostRepo 只实现作者目录用到的统计和最近文章查询，其余方法直接空转。
type fakePostRepo struct {
	posts []*model.Post
}

var _ repository.PostRepository = (*fakePostRepo)(nil)

func (r *fakePostRepo) byAuthor(authorID uint) []*model.Post {
	var out []*model.Post
	for _, p := range r.posts {
		if p.AuthorID == authorID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PubDate.After(out[j].PubDate) })
	return out
}

func (r *fakePostRepo) Create(ctx context.Context, params *model.CreatePostParams) (*model.Post, error) {
	return nil, nil
}

func (r *fakePostRepo) FindByID(ctx context.Context, id uint) (*model.Post, error) {
	return nil, nil
}

func (r *fakePostRepo) List(ctx context.Context, options *model.ListPostsOptions) ([]*model.Post, int, error) {
	return nil, 0, nil
}

func (r *fakePostRepo) Count(ctx context.Context, sel model.ArchiveSelection) (int, error) {
	return len(r.posts), nil
}

func (r *fakePostRepo) DistinctYears(ctx context.Context, sel model.ArchiveSelection) ([]int, error) {
	return nil, nil
}

func (r *fakePostRepo) DistinctMonths(ctx context.Context, sel model.ArchiveSelection) ([]int, error) {
	return nil, nil
}

func (r *fakePostRepo) DistinctAuthorIDs(ctx context.Context, sel model.ArchiveSelection) ([]uint, error) {
	return nil, nil
}

func (r *fakePostRepo) CountByAuthor(ctx context.Context, authorID uint) (int, error) {
	return len(r.byAuthor(authorID)), nil
}

func (r *fakePostRepo) ListRecentByAuthor(ctx context.Context, authorID uint, limit int) ([]*model.Post, error) {
	out := r.byAuthor(authorID)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func newFixture() (*fakeUserRepo, *fakePostRepo) {
	userRepo := &fakeUserRepo{users: []*model.User{
		{ID: 1, Username: "joe", Nickname: "Joe"},
		{ID: 2, Username: "sawyer", Nickname: "Sawyer"},
	}}

	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	postRepo := &fakePostRepo{}
	// Joe 有5篇文章，Sawyer 一篇都没有
	for i := 0; i < 5; i++ {
		postRepo.posts = append(postRepo.posts, &model.Post{
			ID:       uint(i + 1),
			Title:    "Joe 的文章",
			PubDate:  base.Add(-time.Duration(i) * 24 * time.Hour),
			AuthorID: 1,
		})
	}
	return userRepo, postRepo
}

func TestListAuthors(t *testing.T) {
	userRepo, postRepo := newFixture()
	svc := NewService(userRepo, postRepo)

	authors, total, err := svc.ListAuthors(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("ListAuthors() error = %v", err)
	}
	if total != 2 || len(authors) != 2 {
		t.Fatalf("total = %d, len = %d, want 2 和 2", total, len(authors))
	}

	// 昵称字母序
	if authors[0].User.Nickname != "Joe" || authors[1].User.Nickname != "Sawyer" {
		t.Errorf("作者排序错误: %s, %s", authors[0].User.Nickname, authors[1].User.Nickname)
	}
	if authors[0].PostCount != 5 {
		t.Errorf("Joe 的发文数 = %d, want 5", authors[0].PostCount)
	}
	if authors[1].PostCount != 0 {
		t.Errorf("Sawyer 的发文数 = %d, want 0", authors[1].PostCount)
	}
}

func TestGetAuthor(t *testing.T) {
	userRepo, postRepo := newFixture()
	svc := NewService(userRepo, postRepo)

	publicID, err := idgen.GeneratePublicID(1, idgen.EntityTypeUser)
	if err != nil {
		t.Fatalf("生成公共ID失败: %v", err)
	}

	info, recent, err := svc.GetAuthor(context.Background(), publicID)
	if err != nil {
		t.Fatalf("GetAuthor() error = %v", err)
	}
	if info.User.Nickname != "Joe" || info.PostCount != 5 {
		t.Errorf("作者详情错误: %s, %d 篇", info.User.Nickname, info.PostCount)
	}

	// 最多返回最近3篇，按发布时间倒序
	if len(recent) != RecentPostsLimit {
		t.Fatalf("最近文章数 = %d, want %d", len(recent), RecentPostsLimit)
	}
	for i := 1; i < len(recent); i++ {
		if recent[i].PubDate.After(recent[i-1].PubDate) {
			t.Error("最近文章应按发布时间倒序排列")
		}
	}
}

func TestGetAuthor_InvalidID(t *testing.T) {
	userRepo, postRepo := newFixture()
	svc := NewService(userRepo, postRepo)

	if _, _, err := svc.GetAuthor(context.Background(), "???"); err == nil {
		t.Error("非法公共ID应返回错误")
	}

	// 文章类型的公共ID不能当作者ID用
	postID, err := idgen.GeneratePublicID(1, idgen.EntityTypePost)
	if err != nil {
		t.Fatalf("生成公共ID失败: %v", err)
	}
	if _, _, err := svc.GetAuthor(context.Background(), postID); err == nil {
		t.Error("实体类型不匹配的公共ID应返回错误")
	}
}
