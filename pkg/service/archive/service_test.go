package archive

import (
	"context"
	"log"
	"os"
	"sort"
	"strconv"
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

// === 内存假仓储 ===

type fakePostRepo struct {
	posts []*model.Post
}

var _ repository.PostRepository = (*fakePostRepo)(nil)

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
		ID:       uint(len(r.posts) + 1),
		Title:    params.Title,
		Body:     params.Body,
		BodyHTML: params.BodyHTML,
		PubDate:  params.PubDate,
		AuthorID: params.AuthorID,
	}
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
		if y := p.PubDate.Year(); !seen[y] {
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
		if m := int(p.PubDate.Month()); !seen[m] {
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

// === 测试夹具 ===

// 两位作者各一篇文章：Alice 发表于 2017年10月，Bob 发表于 2018年3月。
func newFixture() (*fakePostRepo, *fakeUserRepo) {
	userRepo := &fakeUserRepo{users: []*model.User{
		{ID: 1, Username: "alice", Nickname: "Alice"},
		{ID: 2, Username: "bob", Nickname: "Bob"},
	}}
	postRepo := &fakePostRepo{posts: []*model.Post{
		{ID: 1, Title: "十月的文章", PubDate: time.Date(2017, 10, 15, 10, 0, 0, 0, time.UTC), AuthorID: 1},
		{ID: 2, Title: "三月的文章", PubDate: time.Date(2018, 3, 20, 10, 0, 0, 0, time.UTC), AuthorID: 2},
	}}
	return postRepo, userRepo
}

func intPtr(v int) *int    { return &v }
func uintPtr(v uint) *uint { return &v }

func facetValues(options []model.FacetOption) []string {
	out := make([]string, len(options))
	for i, o := range options {
		out[i] = o.Value
	}
	return out
}

func facetNames(options []model.FacetOption) []string {
	out := make([]string, len(options))
	for i, o := range options {
		out[i] = o.Name
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// === 测试 ===

func TestResolve_NoSelection(t *testing.T) {
	postRepo, userRepo := newFixture()
	svc := NewService(postRepo, userRepo)

	options, err := svc.Resolve(context.Background(), model.ArchiveSelection{})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if got, want := facetValues(options.Year), []string{"2018", "2017"}; !equalStrings(got, want) {
		t.Errorf("年份候选项 = %v, want %v", got, want)
	}
	if got, want := facetNames(options.Month), []string{"March", "October"}; !equalStrings(got, want) {
		t.Errorf("月份候选项 = %v, want %v", got, want)
	}
	if got, want := facetNames(options.Author), []string{"Alice", "Bob"}; !equalStrings(got, want) {
		t.Errorf("作者候选项 = %v, want %v", got, want)
	}
}

func TestResolve_YearNarrowsOtherFacets(t *testing.T) {
	postRepo, userRepo := newFixture()
	svc := NewService(postRepo, userRepo)

	options, err := svc.Resolve(context.Background(), model.ArchiveSelection{Year: intPtr(2017)})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	// 年份维度自身不受已选年份限制，两个年份都应保留
	if got, want := facetValues(options.Year), []string{"2018", "2017"}; !equalStrings(got, want) {
		t.Errorf("年份候选项 = %v, want %v", got, want)
	}
	if got, want := facetNames(options.Month), []string{"October"}; !equalStrings(got, want) {
		t.Errorf("月份候选项 = %v, want %v", got, want)
	}
	if got, want := facetNames(options.Author), []string{"Alice"}; !equalStrings(got, want) {
		t.Errorf("作者候选项 = %v, want %v", got, want)
	}
}

func TestResolve_AuthorNarrowsDates(t *testing.T) {
	postRepo, userRepo := newFixture()
	svc := NewService(postRepo, userRepo)

	options, err := svc.Resolve(context.Background(), model.ArchiveSelection{AuthorID: uintPtr(2)})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if got, want := facetValues(options.Year), []string{"2018"}; !equalStrings(got, want) {
		t.Errorf("年份候选项 = %v, want %v", got, want)
	}
	if got, want := facetNames(options.Month), []string{"March"}; !equalStrings(got, want) {
		t.Errorf("月份候选项 = %v, want %v", got, want)
	}
	if got, want := facetNames(options.Author), []string{"Alice", "Bob"}; !equalStrings(got, want) {
		t.Errorf("作者候选项 = %v, want %v", got, want)
	}
}

// 完整组合匹配不到任何文章时，三个候选列表都应为空。
func TestResolve_ImpossibleCombination(t *testing.T) {
	postRepo, userRepo := newFixture()
	svc := NewService(postRepo, userRepo)

	sel := model.ArchiveSelection{
		Year:     intPtr(2017),
		Month:    intPtr(3),
		AuthorID: uintPtr(2),
	}
	options, err := svc.Resolve(context.Background(), sel)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if len(options.Year) != 0 || len(options.Month) != 0 || len(options.Author) != 0 {
		t.Errorf("无结果组合应返回全空候选项, got %+v", options)
	}
}

// 任何返回的候选值代入当前选择后都应至少匹配一篇文章。
func TestResolve_CandidatesAlwaysMatchSomething(t *testing.T) {
	postRepo, userRepo := newFixture()
	svc := NewService(postRepo, userRepo)
	ctx := context.Background()

	selections := []model.ArchiveSelection{
		{},
		{Year: intPtr(2017)},
		{Month: intPtr(3)},
		{AuthorID: uintPtr(1)},
		{Year: intPtr(2018), AuthorID: uintPtr(2)},
	}

	for _, sel := range selections {
		options, err := svc.Resolve(ctx, sel)
		if err != nil {
			t.Fatalf("Resolve(%+v) error = %v", sel, err)
		}

		for _, o := range options.Year {
			candidate := sel
			y := atoiOrFail(t, o.Value)
			candidate.Year = &y
			assertNonEmpty(t, postRepo, candidate, "年份", o.Value)
		}
		for _, o := range options.Month {
			candidate := sel
			m := atoiOrFail(t, o.Value)
			candidate.Month = &m
			assertNonEmpty(t, postRepo, candidate, "月份", o.Value)
		}
		for _, o := range options.Author {
			candidate := sel
			dbID, entityType, err := idgen.DecodePublicID(o.Value)
			if err != nil || entityType != idgen.EntityTypeUser {
				t.Fatalf("作者候选值 %q 不是合法的用户公共ID: %v", o.Value, err)
			}
			candidate.AuthorID = &dbID
			assertNonEmpty(t, postRepo, candidate, "作者", o.Value)
		}
	}
}

func atoiOrFail(t *testing.T, s string) int {
	t.Helper()
	v, err := strconv.Atoi(s)
	if err != nil {
		t.Fatalf("候选值 %q 不是数字: %v", s, err)
	}
	return v
}

func assertNonEmpty(t *testing.T, repo *fakePostRepo, sel model.ArchiveSelection, facet, value string) {
	t.Helper()
	count, _ := repo.Count(context.Background(), sel)
	if count == 0 {
		t.Errorf("%s候选值 %q 代入后匹配 0 篇文章", facet, value)
	}
}

func TestListPosts_FiltersAndPaginates(t *testing.T) {
	postRepo, userRepo := newFixture()
	svc := NewService(postRepo, userRepo)

	page, err := svc.ListPosts(context.Background(), model.ArchiveSelection{Year: intPtr(2017)}, 1)
	if err != nil {
		t.Fatalf("ListPosts() error = %v", err)
	}
	if page.Total != 1 || len(page.Items) != 1 {
		t.Fatalf("Total = %d, len(Items) = %d, want 1 和 1", page.Total, len(page.Items))
	}
	if page.Items[0].Title != "十月的文章" {
		t.Errorf("筛选结果错误: %q", page.Items[0].Title)
	}
	if page.PrevPage != nil || page.NextPage != nil {
		t.Errorf("单页结果不应有前后页游标")
	}
}
