/*
 * @Description: 文章仓储的 Ent 实现，归档筛选的 SQL 都在这里
 * @Author: 安知鱼
 * @Date: 2025-09-05 11:02:36
 * @LastEditTime: 2025-10-02 17:26:13
 * @LastEditors: 安知鱼
 */
package ent

import (
	"context"
	"fmt"

	"github.com/anzhiyu-c/moyu-blog/ent"
	"github.com/anzhiyu-c/moyu-blog/ent/post"
	"github.com/anzhiyu-c/moyu-blog/ent/predicate"
	"github.com/anzhiyu-c/moyu-blog/pkg/domain/model"
	"github.com/anzhiyu-c/moyu-blog/pkg/domain/repository"

	"entgo.io/ent/dialect/sql"
)

type postRepo struct {
	db     *ent.Client
	dbType string
}

// NewPostRepo 是 postRepo 的构造函数。
// dbType 用于在生成年份/月份提取表达式时选择方言。
func NewPostRepo(db *ent.Client, dbType string) repository.PostRepository {
	return &postRepo{db: db, dbType: dbType}
}

// === 私有辅助函数 (Private Helpers) ===

// toModel 负责将 ent.Post 实体转换为 model.Post 领域模型。
func (r *postRepo) toModel(p *ent.Post) *model.Post {
	if p == nil {
		return nil
	}
	m := &model.Post{
		ID:        p.ID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		Title:     p.Title,
		Body:      p.Body,
		BodyHTML:  p.BodyHTML,
		PubDate:   p.PubDate,
		AuthorID:  p.AuthorID,
	}
	if p.Edges.Author != nil {
		m.Author = toDomainUser(p.Edges.Author)
	}
	return m
}

// toModelSlice 将 ent.Post 切片转换为 model.Post 切片，减少代码重复。
func (r *postRepo) toModelSlice(entities []*ent.Post) []*model.Post {
	models := make([]*model.Post, len(entities))
	for i, entity := range entities {
		models[i] = r.toModel(entity)
	}
	return models
}

// dateExprs 返回当前方言下从 pub_date 提取年份/月份的 SQL 表达式。
func (r *postRepo) dateExprs(s *sql.Selector) (yearExpr, monthExpr string) {
	col := s.C(post.FieldPubDate)
	switch r.dbType {
	case "sqlite", "sqlite3":
		// SQLite 使用 strftime 函数
		yearExpr = fmt.Sprintf("CAST(strftime('%%Y', %s) AS INTEGER)", col)
		monthExpr = fmt.Sprintf("CAST(strftime('%%m', %s) AS INTEGER)", col)
	case "mysql", "mariadb":
		// MySQL 使用 YEAR 和 MONTH 函数
		yearExpr = fmt.Sprintf("YEAR(%s)", col)
		monthExpr = fmt.Sprintf("MONTH(%s)", col)
	default:
		// PostgreSQL 使用 EXTRACT 函数
		yearExpr = fmt.Sprintf("EXTRACT(YEAR FROM %s)", col)
		monthExpr = fmt.Sprintf("EXTRACT(MONTH FROM %s)", col)
	}
	return yearExpr, monthExpr
}

// selectionPredicates 把 ArchiveSelection 翻译为查询谓词，AND 语义。
func (r *postRepo) selectionPredicates(sel model.ArchiveSelection) []predicate.Post {
	preds := make([]predicate.Post, 0, 2)
	if sel.AuthorID != nil {
		preds = append(preds, post.AuthorIDEQ(*sel.AuthorID))
	}
	if sel.Year != nil || sel.Month != nil {
		year, month := sel.Year, sel.Month
		preds = append(preds, predicate.Post(func(s *sql.Selector) {
			yearExpr, monthExpr := r.dateExprs(s)
			if year != nil {
				s.Where(sql.ExprP(fmt.Sprintf("%s = %d", yearExpr, *year)))
			}
			if month != nil {
				s.Where(sql.ExprP(fmt.Sprintf("%s = %d", monthExpr, *month)))
			}
		}))
	}
	return preds
}

// === 公开方法实现 (Public Methods Implementation) ===

// Create 创建一篇文章，并重新加载以带出作者信息。
func (r *postRepo) Create(ctx context.Context, params *model.CreatePostParams) (*model.Post, error) {
	created, err := r.db.Post.
		Create().
		SetTitle(params.Title).
		SetBody(params.Body).
		SetBodyHTML(params.BodyHTML).
		SetPubDate(params.PubDate).
		SetAuthorID(params.AuthorID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("创建文章失败: %w", err)
	}
	return r.FindByID(ctx, created.ID)
}

// FindByID 根据数据库 uint ID 查找文章（含作者）。
func (r *postRepo) FindByID(ctx context.Context, id uint) (*model.Post, error) {
	entity, err := r.db.Post.Query().
		Where(post.ID(id)).
		WithAuthor().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return r.toModel(entity), nil
}

// List 按筛选条件分页查询文章，发布时间倒序，ID 倒序作为稳定的次级排序键，
// 保证翻页期间的新插入不会造成重复或遗漏（相对于快照排序键）。
func (r *postRepo) List(ctx context.Context, options *model.ListPostsOptions) ([]*model.Post, int, error) {
	query := r.db.Post.Query().Where(r.selectionPredicates(options.Selection)...)

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	q := query.
		Order(ent.Desc(post.FieldPubDate), ent.Desc(post.FieldID)).
		WithAuthor()

	if options.Page > 0 && options.PageSize > 0 {
		q = q.Offset((options.Page - 1) * options.PageSize).Limit(options.PageSize)
	}

	entities, err := q.All(ctx)
	if err != nil {
		return nil, 0, err
	}
	return r.toModelSlice(entities), total, nil
}

// Count 统计满足筛选条件的文章数量。
func (r *postRepo) Count(ctx context.Context, sel model.ArchiveSelection) (int, error) {
	return r.db.Post.Query().Where(r.selectionPredicates(sel)...).Count(ctx)
}

// DistinctYears 返回满足筛选条件的文章的发布年份去重列表。
func (r *postRepo) DistinctYears(ctx context.Context, sel model.ArchiveSelection) ([]int, error) {
	var rows []struct {
		Year int `json:"year"`
	}
	err := r.db.Post.Query().
		Where(r.selectionPredicates(sel)...).
		Modify(func(s *sql.Selector) {
			yearExpr, _ := r.dateExprs(s)
			s.Select(sql.As(yearExpr, "year")).Distinct()
		}).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("查询归档年份失败: %w", err)
	}

	years := make([]int, len(rows))
	for i, row := range rows {
		years[i] = row.Year
	}
	return years, nil
}

// DistinctMonths 返回满足筛选条件的文章的发布月份去重列表。
func (r *postRepo) DistinctMonths(ctx context.Context, sel model.ArchiveSelection) ([]int, error) {
	var rows []struct {
		Month int `json:"month"`
	}
	err := r.db.Post.Query().
		Where(r.selectionPredicates(sel)...).
		Modify(func(s *sql.Selector) {
			_, monthExpr := r.dateExprs(s)
			s.Select(sql.As(monthExpr, "month")).Distinct()
		}).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("查询归档月份失败: %w", err)
	}

	months := make([]int, len(rows))
	for i, row := range rows {
		months[i] = row.Month
	}
	return months, nil
}

// DistinctAuthorIDs 返回满足筛选条件的文章的作者ID去重列表。
func (r *postRepo) DistinctAuthorIDs(ctx context.Context, sel model.ArchiveSelection) ([]uint, error) {
	var rows []struct {
		AuthorID uint `json:"author_id"`
	}
	err := r.db.Post.Query().
		Where(r.selectionPredicates(sel)...).
		Modify(func(s *sql.Selector) {
			s.Select(s.C(post.FieldAuthorID)).Distinct()
		}).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("查询归档作者失败: %w", err)
	}

	ids := make([]uint, len(rows))
	for i, row := range rows {
		ids[i] = row.AuthorID
	}
	return ids, nil
}

// CountByAuthor 统计某作者已发表的文章数。
func (r *postRepo) CountByAuthor(ctx context.Context, authorID uint) (int, error) {
	return r.db.Post.Query().Where(post.AuthorIDEQ(authorID)).Count(ctx)
}

// ListRecentByAuthor 返回某作者最近发表的 limit 篇文章。
func (r *postRepo) ListRecentByAuthor(ctx context.Context, authorID uint, limit int) ([]*model.Post, error) {
	entities, err := r.db.Post.Query().
		Where(post.AuthorIDEQ(authorID)).
		Order(ent.Desc(post.FieldPubDate), ent.Desc(post.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return r.toModelSlice(entities), nil
}
