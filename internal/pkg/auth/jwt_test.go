package auth

import (
	"strings"
	"testing"

	"github.com/anzhiyu-c/moyu-blog/pkg/idgen"
)

func TestGenerateAndParseToken(t *testing.T) {
	if err := idgen.InitSqidsEncoder(); err != nil {
		t.Fatalf("初始化 Sqids 编码器失败: %v", err)
	}
	secret := []byte("test-secret")

	tokenStr, err := GenerateToken(42, secret)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := ParseToken(tokenStr, secret)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}

	dbID, entityType, err := idgen.DecodePublicID(claims.UserID)
	if err != nil {
		t.Fatalf("解码公共ID失败: %v", err)
	}
	if dbID != 42 || entityType != idgen.EntityTypeUser {
		t.Errorf("解码结果 = (%d, %d), want (42, %d)", dbID, entityType, idgen.EntityTypeUser)
	}
	if claims.Issuer != "moyu-blog" {
		t.Errorf("Issuer = %q, want moyu-blog", claims.Issuer)
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(claims.IssuedAt.Time) {
		t.Error("过期时间应晚于签发时间")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	if err := idgen.InitSqidsEncoder(); err != nil {
		t.Fatalf("初始化 Sqids 编码器失败: %v", err)
	}

	tokenStr, err := GenerateToken(7, []byte("secret-a"))
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := ParseToken(tokenStr, []byte("secret-b")); err == nil {
		t.Error("使用错误密钥解析应失败")
	}
}

func TestParseToken_Garbage(t *testing.T) {
	if _, err := ParseToken("not.a.token", []byte("secret")); err == nil {
		t.Error("非法Token应解析失败")
	}
	if _, err := ParseToken(strings.Repeat("x", 100), []byte("secret")); err == nil {
		t.Error("非法Token应解析失败")
	}
}
