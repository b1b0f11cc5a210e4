package auth

import (
	"context"
	"fmt"

	"github.com/anzhiyu-c/moyu-blog/internal/pkg/auth"
	"github.com/anzhiyu-c/moyu-blog/pkg/config"
	"github.com/anzhiyu-c/moyu-blog/pkg/domain/model"
	"github.com/anzhiyu-c/moyu-blog/pkg/domain/repository"
	"github.com/anzhiyu-c/moyu-blog/pkg/idgen"
)

// TokenService 定义了会话令牌相关的业务逻辑接口
type TokenService interface {
	GenerateSessionTokens(ctx context.Context, user *model.User) (accessToken, refreshToken string, expiresAt int64, err error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (accessToken string, expiresAt int64, err error)
	ParseAccessToken(ctx context.Context, accessToken string) (*auth.CustomClaims, error)
}

type tokenService struct {
	userRepo  repository.UserRepository
	jwtSecret []byte
}

// NewTokenService 构造函数，密钥来自配置文件
func NewTokenService(userRepo repository.UserRepository, cfg *config.Config) TokenService {
	return &tokenService{
		userRepo:  userRepo,
		jwtSecret: []byte(cfg.GetString(config.KeyJWTSecret)),
	}
}

func (s *tokenService) GenerateSessionTokens(ctx context.Context, user *model.User) (string, string, int64, error) {
	if len(s.jwtSecret) == 0 {
		return "", "", 0, fmt.Errorf("JWT Secret 未配置, 无法生成令牌")
	}

	accessToken, err := auth.GenerateToken(user.ID, s.jwtSecret)
	if err != nil {
		return "", "", 0, err
	}
	refreshToken, err := auth.GenerateRefreshToken(user.ID, s.jwtSecret)
	if err != nil {
		return "", "", 0, err
	}

	claims, err := auth.ParseToken(accessToken, s.jwtSecret)
	if err != nil {
		return "", "", 0, err
	}
	expiresAt := claims.ExpiresAt.Time.UnixMilli()

	return accessToken, refreshToken, expiresAt, nil
}

func (s *tokenService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, int64, error) {
	claims, err := auth.ParseToken(refreshToken, s.jwtSecret)
	if err != nil {
		return "", 0, fmt.Errorf("无效或过期的刷新令牌: %w", err)
	}

	// claims.UserID 是公共用户 ID，需要解码为内部数据库 ID 并验证类型
	internalUserID, entityType, err := idgen.DecodePublicID(claims.UserID)
	if err != nil {
		return "", 0, fmt.Errorf("解码公共用户ID失败: %w", err)
	}
	if entityType != idgen.EntityTypeUser {
		return "", 0, fmt.Errorf("令牌中的用户ID类型不匹配")
	}

	user, err := s.userRepo.FindByID(ctx, internalUserID)
	if err != nil || user == nil || user.Status != model.UserStatusActive {
		return "", 0, fmt.Errorf("用户不存在或状态异常, 无法刷新令牌")
	}

	accessToken, err := auth.GenerateToken(user.ID, s.jwtSecret)
	if err != nil {
		return "", 0, err
	}

	newClaims, err := auth.ParseToken(accessToken, s.jwtSecret)
	if err != nil {
		return "", 0, err
	}
	return accessToken, newClaims.ExpiresAt.Time.UnixMilli(), nil
}

func (s *tokenService) ParseAccessToken(ctx context.Context, accessToken string) (*auth.CustomClaims, error) {
	return auth.ParseToken(accessToken, s.jwtSecret)
}
