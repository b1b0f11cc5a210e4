/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-06 12:20:41
 * @LastEditTime: 2025-09-27 19:14:06
 * @LastEditors: 安知鱼
 */
package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/anzhiyu-c/moyu-blog/internal/pkg/security"
	"github.com/anzhiyu-c/moyu-blog/pkg/constant"
	"github.com/anzhiyu-c/moyu-blog/pkg/domain/model"
	"github.com/anzhiyu-c/moyu-blog/pkg/domain/repository"
)

// AuthService 定义了所有认证授权相关的业务逻辑接口
type AuthService interface {
	Login(ctx context.Context, email, password string) (*model.User, error)
	Register(ctx context.Context, username, nickname, email, password string) (*model.User, error)
	// GetUserByID 通过内部用户ID获取用户信息
	GetUserByID(ctx context.Context, userID uint) (*model.User, error)
}

// authService 是 AuthService 接口的实现
type authService struct {
	userRepo repository.UserRepository
}

// NewAuthService 是 authService 的构造函数
func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Login 实现了用户登录的完整业务逻辑
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, error) {
	// 统一将email转换为小写
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("数据库查询失败: %w", err)
	}
	if user == nil {
		// 账号不存在与密码错误返回同一提示，避免探测已注册邮箱
		return nil, fmt.Errorf("%w: 账号或密码错误", constant.ErrUnauthorized)
	}

	if user.Status == model.UserStatusBanned {
		return nil, fmt.Errorf("%w: 您的账户已被封禁，请联系管理员", constant.ErrUnauthorized)
	}

	if !security.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: 账号或密码错误", constant.ErrUnauthorized)
	}

	return user, nil
}

// Register 实现了用户注册的完整业务逻辑
func (s *authService) Register(ctx context.Context, username, nickname, email, password string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	username = strings.TrimSpace(username)
	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		nickname = username
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("数据库查询失败: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: 该邮箱已被注册", constant.ErrConflict)
	}

	existing, err = s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("数据库查询失败: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: 该用户名已被占用", constant.ErrConflict)
	}

	passwordHash, err := security.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("密码哈希失败: %w", err)
	}

	user := &model.User{
		Username:     username,
		Nickname:     nickname,
		Email:        email,
		PasswordHash: passwordHash,
		Status:       model.UserStatusActive,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("创建用户失败: %w", err)
	}

	return user, nil
}

// GetUserByID 通过内部用户ID获取用户信息
func (s *authService) GetUserByID(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("数据库查询失败: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: 用户不存在", constant.ErrNotFound)
	}
	return user, nil
}
