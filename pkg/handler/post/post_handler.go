/*
 * @Description: 文章相关的控制器
 * @Author: 安知鱼
 * @Date: 2025-09-10 14:05:37
 * @LastEditTime: 2025-10-06 15:21:48
 * @LastEditors: 安知鱼
 */
package post_handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	internalauth "github.com/anzhiyu-c/moyu-blog/internal/pkg/auth"
	"github.com/anzhiyu-c/moyu-blog/internal/pkg/parser"
	"github.com/anzhiyu-c/moyu-blog/internal/pkg/strutil"
	"github.com/anzhiyu-c/moyu-blog/pkg/constant"
	"github.com/anzhiyu-c/moyu-blog/pkg/domain/model"
	"github.com/anzhiyu-c/moyu-blog/pkg/idgen"
	"github.com/anzhiyu-c/moyu-blog/pkg/response"
	"github.com/anzhiyu-c/moyu-blog/pkg/service/post"

	"github.com/gin-gonic/gin"
)

// PostHandler 封装了文章相关的控制器方法
type PostHandler struct {
	postSvc post.Service
}

// NewPostHandler 是 PostHandler 的构造函数
func NewPostHandler(postSvc post.Service) *PostHandler {
	return &PostHandler{postSvc: postSvc}
}

// AuthorBrief 是嵌套在文章响应中的作者摘要
type AuthorBrief struct {
	ID       string `json:"id"` // 作者的公共ID
	Nickname string `json:"nickname"`
	Website  string `json:"website"`
	Avatar   string `json:"avatar"`
}

// PostResponse 定义了返回给客户端的文章结构
type PostResponse struct {
	ID        string       `json:"id"` // 文章的公共ID
	Title     string       `json:"title"`
	Body      string       `json:"body"`
	BodyHTML  string       `json:"body_html"`
	Excerpt   string       `json:"excerpt"` // 去除HTML标签后的纯文本摘要
	PubDate   time.Time    `json:"pub_date"`
	CreatedAt time.Time    `json:"created_at"`
	Author    *AuthorBrief `json:"author,omitempty"`
}

// excerptLength 列表页摘要的最大字符数
const excerptLength = 200

// PostPageResponse 是文章列表的分页响应
type PostPageResponse struct {
	List     []*PostResponse `json:"list"`
	Total    int             `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
	PrevPage *int            `json:"prev_page"`
	NextPage *int            `json:"next_page"`
}

// ToPostResponse 将文章领域模型转换为响应 DTO。
func ToPostResponse(p *model.Post) (*PostResponse, error) {
	publicID, err := idgen.GeneratePublicID(p.ID, idgen.EntityTypePost)
	if err != nil {
		return nil, err
	}

	resp := &PostResponse{
		ID:        publicID,
		Title:     p.Title,
		Body:      p.Body,
		BodyHTML:  p.BodyHTML,
		Excerpt:   strutil.Truncate(parser.StripHTML(p.BodyHTML), excerptLength),
		PubDate:   p.PubDate,
		CreatedAt: p.CreatedAt,
	}
	if p.Author != nil {
		authorPublicID, err := idgen.GeneratePublicID(p.Author.ID, idgen.EntityTypeUser)
		if err != nil {
			return nil, err
		}
		resp.Author = &AuthorBrief{
			ID:       authorPublicID,
			Nickname: p.Author.Nickname,
			Website:  p.Author.Website,
			Avatar:   p.Author.Avatar,
		}
	}
	return resp, nil
}

// ToPostPageResponse 将分页结果转换为响应 DTO。
func ToPostPageResponse(page *model.PostPage) (*PostPageResponse, error) {
	list := make([]*PostResponse, 0, len(page.Items))
	for _, p := range page.Items {
		item, err := ToPostResponse(p)
		if err != nil {
			return nil, err
		}
		list = append(list, item)
	}
	return &PostPageResponse{
		List:     list,
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
		PrevPage: page.PrevPage,
		NextPage: page.NextPage,
	}, nil
}

// List 返回首页的文章信息流
// @Summary      首页文章列表
// @Tags         文章
// @Produce      json
// @Param        page  query     int  false  "页码，默认 1"
// @Success      200   {object}  response.Response{data=PostPageResponse}
// @Router       /posts [get]
func (h *PostHandler) List(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		response.Fail(c, http.StatusBadRequest, "无效的页码参数")
		return
	}

	result, err := h.postSvc.ListHome(c.Request.Context(), page)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "查询文章列表失败")
		return
	}

	resp, err := ToPostPageResponse(result)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "构造响应失败")
		return
	}
	response.Success(c, resp, "获取成功")
}

// Get 返回单篇文章详情
func (h *PostHandler) Get(c *gin.Context) {
	found, err := h.postSvc.GetByPublicID(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, constant.ErrInvalidPublicID):
			response.Fail(c, http.StatusBadRequest, "无效的文章ID")
		case errors.Is(err, constant.ErrNotFound):
			response.Fail(c, http.StatusNotFound, "文章不存在")
		default:
			response.Fail(c, http.StatusInternalServerError, "查询文章失败")
		}
		return
	}

	resp, err := ToPostResponse(found)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "构造响应失败")
		return
	}
	response.Success(c, resp, "获取成功")
}

// Create 处理发布新文章的请求，需要登录。
// @Summary      发布文章
// @Tags         文章
// @Accept       json
// @Produce      json
// @Param        body  body      model.CreatePostRequest  true  "文章内容"
// @Success      201   {object}  response.Response{data=PostResponse}  "发布成功"
// @Router       /posts [post]
func (h *PostHandler) Create(c *gin.Context) {
	var req model.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求体格式不正确")
		return
	}

	claimsValue, exists := c.Get(internalauth.ClaimsKey)
	if !exists {
		response.Fail(c, http.StatusUnauthorized, "用户未认证")
		return
	}
	claims, ok := claimsValue.(*internalauth.CustomClaims)
	if !ok {
		response.Fail(c, http.StatusInternalServerError, "用户认证信息异常")
		return
	}

	authorID, entityType, err := idgen.DecodePublicID(claims.UserID)
	if err != nil || entityType != idgen.EntityTypeUser {
		response.Fail(c, http.StatusUnauthorized, "用户认证信息异常")
		return
	}

	created, err := h.postSvc.Create(c.Request.Context(), authorID, req.Title, req.Body)
	if err != nil {
		if errors.Is(err, constant.ErrValidation) {
			response.Fail(c, http.StatusBadRequest, err.Error())
			return
		}
		response.Fail(c, http.StatusInternalServerError, "发布文章失败")
		return
	}

	resp, err := ToPostResponse(created)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "构造响应失败")
		return
	}
	response.SuccessWithStatus(c, http.StatusCreated, resp, "发布成功")
}
