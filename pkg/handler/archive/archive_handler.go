/*
 * @Description: 归档页的控制器，级联筛选候选项与筛选后的文章列表
 * @Author: 安知鱼
 * @Date: 2025-09-11 10:48:26
 * @LastEditTime: 2025-10-07 09:35:12
 * @LastEditors: 安知鱼
 */
package archive_handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/anzhiyu-c/moyu-blog/pkg/domain/model"
	post_handler "github.com/anzhiyu-c/moyu-blog/pkg/handler/post"
	"github.com/anzhiyu-c/moyu-blog/pkg/idgen"
	"github.com/anzhiyu-c/moyu-blog/pkg/response"
	"github.com/anzhiyu-c/moyu-blog/pkg/service/archive"

	"github.com/gin-gonic/gin"
)

// ArchiveHandler 封装了归档页相关的控制器方法
type ArchiveHandler struct {
	archiveSvc archive.Service
}

// NewArchiveHandler 是 ArchiveHandler 的构造函数
func NewArchiveHandler(archiveSvc archive.Service) *ArchiveHandler {
	return &ArchiveHandler{archiveSvc: archiveSvc}
}

// parseSelection 从查询参数解析筛选条件。
// year/month 为十进制数字，author 为作者的公共ID；任意参数可省略。
func parseSelection(c *gin.Context) (model.ArchiveSelection, error) {
	var sel model.ArchiveSelection

	if raw := c.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return sel, fmt.Errorf("无效的年份参数: %q", raw)
		}
		sel.Year = &year
	}

	if raw := c.Query("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil || month < 1 || month > 12 {
			return sel, fmt.Errorf("无效的月份参数: %q (应为 1-12)", raw)
		}
		sel.Month = &month
	}

	if raw := c.Query("author"); raw != "" {
		dbID, entityType, err := idgen.DecodePublicID(raw)
		if err != nil || entityType != idgen.EntityTypeUser {
			return sel, fmt.Errorf("无效的作者参数: %q", raw)
		}
		sel.AuthorID = &dbID
	}

	return sel, nil
}

// GetOptions 返回当前筛选条件下三个维度各自仍然可选的候选项
// @Summary      归档筛选候选项
// @Tags         归档
// @Produce      json
// @Param        year    query     int     false  "发布年份"
// @Param        month   query     int     false  "发布月份 1-12"
// @Param        author  query     string  false  "作者公共ID"
// @Success      200     {object}  response.Response{data=model.ArchiveOptions}
// @Router       /archive/options [get]
func (h *ArchiveHandler) GetOptions(c *gin.Context) {
	sel, err := parseSelection(c)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	options, err := h.archiveSvc.Resolve(c.Request.Context(), sel)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "计算筛选候选项失败")
		return
	}
	response.Success(c, options, "获取成功")
}

// ListPosts 返回满足筛选条件的文章分页
func (h *ArchiveHandler) ListPosts(c *gin.Context) {
	sel, err := parseSelection(c)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		response.Fail(c, http.StatusBadRequest, "无效的页码参数")
		return
	}

	result, err := h.archiveSvc.ListPosts(c.Request.Context(), sel, page)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "查询归档文章失败")
		return
	}

	resp, err := post_handler.ToPostPageResponse(result)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "构造响应失败")
		return
	}
	response.Success(c, resp, "获取成功")
}
