/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 14:10:41
 * @LastEditTime: 2025-09-23 18:55:30
 * @LastEditors: 安知鱼
 */
package model

import "time"

// --- 核心领域对象 (Domain Object) ---

// Post 是文章的核心领域模型，业务逻辑（Service层）围绕它进行。
// 文章创建后不可修改，PubDate 在创建时固定。
type Post struct {
	ID        uint
	CreatedAt time.Time
	UpdatedAt time.Time
	Title     string
	Body      string
	BodyHTML  string
	PubDate   time.Time
	AuthorID  uint
	Author    *User
}

// CreatePostParams 是仓储层创建文章所需的全部数据。
type CreatePostParams struct {
	Title    string
	Body     string
	BodyHTML string
	PubDate  time.Time
	AuthorID uint
}

// ListPostsOptions 是文章列表查询的选项。
// Selection 为空时即首页全量信息流。
type ListPostsOptions struct {
	Page      int
	PageSize  int
	Selection ArchiveSelection
}

// CreatePostRequest 定义了创建文章的请求体。
// 标题与正文的校验由业务层完成，以便返回用户可见的表单错误。
type CreatePostRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// PostPage 是一页文章及其前后页游标。
// PrevPage 在第一页时为 nil，NextPage 在最后一页时为 nil。
type PostPage struct {
	Items    []*Post
	Total    int
	Page     int
	PageSize int
	PrevPage *int
	NextPage *int
}

// NewPostPage 根据总数计算前后页游标并组装分页结果。
func NewPostPage(items []*Post, total, page, pageSize int) *PostPage {
	p := &PostPage{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	if page > 1 {
		prev := page - 1
		p.PrevPage = &prev
	}
	if page*pageSize < total {
		next := page + 1
		p.NextPage = &next
	}
	return p
}
