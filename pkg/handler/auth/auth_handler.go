/*
 * @Description: 认证相关的控制器
 * @Author: 安知鱼
 * @Date: 2025-09-10 09:22:15
 * @LastEditTime: 2025-10-06 11:42:03
 * @LastEditors: 安知鱼
 */
package auth_handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/anzhiyu-c/moyu-blog/pkg/constant"
	"github.com/anzhiyu-c/moyu-blog/pkg/domain/model"
	"github.com/anzhiyu-c/moyu-blog/pkg/idgen"
	"github.com/anzhiyu-c/moyu-blog/pkg/response"
	"github.com/anzhiyu-c/moyu-blog/pkg/service/auth"

	"github.com/gin-gonic/gin"
)

// AuthHandler 封装了所有认证相关的控制器方法
type AuthHandler struct {
	authSvc  auth.AuthService
	tokenSvc auth.TokenService
}

// NewAuthHandler 是 AuthHandler 的构造函数，用于依赖注入
func NewAuthHandler(authSvc auth.AuthService, tokenSvc auth.TokenService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, tokenSvc: tokenSvc}
}

// LoginRequest 定义了登录请求的结构
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest 定义了注册请求的结构
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Nickname string `json:"nickname"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// RefreshTokenRequest 定义了刷新令牌请求的结构
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// UserInfoResponse 定义了返回给客户端的用户信息结构
type UserInfoResponse struct {
	ID        string    `json:"id"` // 用户的公共ID
	CreatedAt time.Time `json:"created_at"`
	Username  string    `json:"username"`
	Nickname  string    `json:"nickname"`
	Email     string    `json:"email"`
	Website   string    `json:"website"`
	Avatar    string    `json:"avatar"`
	Status    int       `json:"status"`
}

func toUserInfoResponse(u *model.User) (*UserInfoResponse, error) {
	publicID, err := idgen.GeneratePublicID(u.ID, idgen.EntityTypeUser)
	if err != nil {
		return nil, err
	}
	return &UserInfoResponse{
		ID:        publicID,
		CreatedAt: u.CreatedAt,
		Username:  u.Username,
		Nickname:  u.Nickname,
		Email:     u.Email,
		Website:   u.Website,
		Avatar:    u.Avatar,
		Status:    u.Status,
	}, nil
}

// Register 处理用户注册请求
// @Summary      用户注册
// @Tags         用户认证
// @Accept       json
// @Produce      json
// @Param        body  body      RegisterRequest  true  "注册信息"
// @Success      201   {object}  response.Response{data=UserInfoResponse}  "注册成功"
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "注册信息格式不正确")
		return
	}

	user, err := h.authSvc.Register(c.Request.Context(), req.Username, req.Nickname, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, constant.ErrConflict) {
			response.Fail(c, http.StatusConflict, err.Error())
			return
		}
		response.Fail(c, http.StatusInternalServerError, "注册失败，请稍后重试")
		return
	}

	info, err := toUserInfoResponse(user)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "生成用户ID失败")
		return
	}
	response.SuccessWithStatus(c, http.StatusCreated, info, "注册成功")
}

// Login 处理用户登录请求
// @Summary      用户登录
// @Description  用户通过邮箱和密码进行登录
// @Tags         用户认证
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "登录信息"
// @Success      200   {object}  response.Response{data=object{userInfo=UserInfoResponse,accessToken=string,refreshToken=string,expires=int64}}  "登录成功"
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "邮箱或密码格式不正确")
		return
	}

	user, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, constant.ErrUnauthorized) {
			response.Fail(c, http.StatusUnauthorized, err.Error())
			return
		}
		response.Fail(c, http.StatusInternalServerError, "登录失败，请稍后重试")
		return
	}

	accessToken, refreshToken, expiresAt, err := h.tokenSvc.GenerateSessionTokens(c.Request.Context(), user)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "生成会话令牌失败")
		return
	}

	info, err := toUserInfoResponse(user)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "生成用户ID失败")
		return
	}

	response.Success(c, gin.H{
		"userInfo":     info,
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
		"expires":      expiresAt,
	}, "登录成功")
}

// RefreshToken 处理刷新访问令牌的请求
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "缺少 refreshToken 参数")
		return
	}

	accessToken, expiresAt, err := h.tokenSvc.RefreshAccessToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, "刷新令牌无效或已过期")
		return
	}

	response.Success(c, gin.H{
		"accessToken": accessToken,
		"expires":     expiresAt,
	}, "令牌刷新成功")
}
