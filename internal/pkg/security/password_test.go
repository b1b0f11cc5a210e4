package security

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "password123" {
		t.Fatal("哈希结果不应等于明文")
	}

	if !CheckPasswordHash("password123", hash) {
		t.Error("正确密码校验应通过")
	}
	if CheckPasswordHash("wrong-password", hash) {
		t.Error("错误密码校验应失败")
	}
}

func TestHashPassword_DifferentSalts(t *testing.T) {
	h1, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	h2, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if h1 == h2 {
		t.Error("相同密码的两次哈希应因随机盐而不同")
	}
}
