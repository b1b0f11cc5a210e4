package user_handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/anzhiyu-c/moyu-blog/pkg/constant"
	"github.com/anzhiyu-c/moyu-blog/pkg/domain/model"
	"github.com/anzhiyu-c/moyu-blog/pkg/domain/repository"
	post_handler "github.com/anzhiyu-c/moyu-blog/pkg/handler/post"
	"github.com/anzhiyu-c/moyu-blog/pkg/idgen"
	"github.com/anzhiyu-c/moyu-blog/pkg/response"
	"github.com/anzhiyu-c/moyu-blog/pkg/service/user"

	"github.com/gin-gonic/gin"
)

// authorsPerPage 作者目录每页的条目数
const authorsPerPage = 10

// UserHandler 封装了作者目录相关的控制器方法
type UserHandler struct {
	userSvc user.Service
}

// NewUserHandler 是 UserHandler 的构造函数
func NewUserHandler(userSvc user.Service) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// AuthorResponse 是作者目录条目的响应结构
type AuthorResponse struct {
	ID        string    `json:"id"` // 作者的公共ID
	Username  string    `json:"username"`
	Nickname  string    `json:"nickname"`
	Website   string    `json:"website"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
	PostCount int       `json:"post_count"`
}

// AuthorDetailResponse 是作者详情页的响应结构，附带最近发表的文章。
type AuthorDetailResponse struct {
	AuthorResponse
	RecentPosts []*post_handler.PostResponse `json:"recent_posts"`
}

func toAuthorResponse(info *model.AuthorInfo) (*AuthorResponse, error) {
	publicID, err := idgen.GeneratePublicID(info.User.ID, idgen.EntityTypeUser)
	if err != nil {
		return nil, err
	}
	return &AuthorResponse{
		ID:        publicID,
		Username:  info.User.Username,
		Nickname:  info.User.Nickname,
		Website:   info.User.Website,
		Avatar:    info.User.Avatar,
		CreatedAt: info.User.CreatedAt,
		PostCount: info.PostCount,
	}, nil
}

// ListAuthors 返回按昵称排序的作者目录
// @Summary      作者目录
// @Tags         作者
// @Produce      json
// @Success      200  {object}  response.Response{data=object{list=[]AuthorResponse,total=int}}
// @Router       /authors [get]
func (h *UserHandler) ListAuthors(c *gin.Context) {
	var query repository.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Fail(c, http.StatusBadRequest, "无效的分页参数")
		return
	}
	// 未传分页参数时使用默认值，否则仓储层会跳过 Offset/Limit 返回全表
	if query.Page < 1 {
		query.Page = 1
	}
	if query.PageSize < 1 {
		query.PageSize = authorsPerPage
	}

	authors, total, err := h.userSvc.ListAuthors(c.Request.Context(), query.Page, query.PageSize)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "查询作者列表失败")
		return
	}

	list := make([]*AuthorResponse, 0, len(authors))
	for _, info := range authors {
		item, err := toAuthorResponse(info)
		if err != nil {
			response.Fail(c, http.StatusInternalServerError, "构造响应失败")
			return
		}
		list = append(list, item)
	}

	response.Success(c, gin.H{
		"list":      list,
		"total":     total,
		"page":      query.Page,
		"page_size": query.PageSize,
	}, "获取成功")
}

// GetAuthor 返回作者详情：基础信息、发文数与最近发表的文章。
func (h *UserHandler) GetAuthor(c *gin.Context) {
	info, recent, err := h.userSvc.GetAuthor(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, constant.ErrInvalidPublicID):
			response.Fail(c, http.StatusBadRequest, "无效的作者ID")
		case errors.Is(err, constant.ErrNotFound):
			response.Fail(c, http.StatusNotFound, "作者不存在")
		default:
			response.Fail(c, http.StatusInternalServerError, "查询作者失败")
		}
		return
	}

	base, err := toAuthorResponse(info)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "构造响应失败")
		return
	}

	recentPosts := make([]*post_handler.PostResponse, 0, len(recent))
	for _, p := range recent {
		item, err := post_handler.ToPostResponse(p)
		if err != nil {
			response.Fail(c, http.StatusInternalServerError, "构造响应失败")
			return
		}
		recentPosts = append(recentPosts, item)
	}

	response.Success(c, &AuthorDetailResponse{
		AuthorResponse: *base,
		RecentPosts:    recentPosts,
	}, "获取成功")
}
