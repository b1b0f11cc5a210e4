package user_handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anzhiyu-c/moyu-blog/pkg/constant"
	"github.com/anzhiyu-c/moyu-blog/pkg/domain/model"
	"github.com/anzhiyu-c/moyu-blog/pkg/service/user"

	"github.com/gin-gonic/gin"
)

// recordingUserService 记录收到的分页参数，用于验证控制器传参
type recordingUserService struct {
	gotPage     int
	gotPageSize int
}

var _ user.Service = (*recordingUserService)(nil)

func (s *recordingUserService) ListAuthors(ctx context.Context, page, pageSize int) ([]*model.AuthorInfo, int, error) {
	s.gotPage = page
	s.gotPageSize = pageSize
	return nil, 0, nil
}

func (s *recordingUserService) GetAuthor(ctx context.Context, publicID string) (*model.AuthorInfo, []*model.Post, error) {
	return nil, nil, constant.ErrNotFound
}

// 作者目录必须真正分页：不带参数时使用默认每页条数，带 page 参数时
// 每页条数也要有默认值，否则仓储层会跳过 Offset/Limit 返回全表。
func TestListAuthors_PaginationDefaults(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		url          string
		wantPage     int
		wantPageSize int
	}{
		{"不带参数时用默认分页", "/api/authors", 1, authorsPerPage},
		{"只传页码时每页条数取默认值", "/api/authors?page=2", 2, authorsPerPage},
		{"显式指定每页条数", "/api/authors?page=3&pageSize=5", 3, 5},
		{"非法页码回退到第一页", "/api/authors?page=0", 1, authorsPerPage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &recordingUserService{}
			handler := NewUserHandler(svc)

			engine := gin.New()
			engine.GET("/api/authors", handler.ListAuthors)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			engine.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
			}
			if svc.gotPage != tt.wantPage {
				t.Errorf("page = %d, want %d", svc.gotPage, tt.wantPage)
			}
			if svc.gotPageSize != tt.wantPageSize {
				t.Errorf("pageSize = %d, want %d", svc.gotPageSize, tt.wantPageSize)
			}
		})
	}
}
