package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestGetClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		realIP       string
		forwardedFor string
		remoteAddr   string
		want         string
	}{
		{"X-Real-IP优先", "7.7.7.7", "1.2.3.4", "9.9.9.9:1234", "7.7.7.7"},
		{"XFF单个IP", "", "1.2.3.4", "9.9.9.9:1234", "1.2.3.4"},
		{"XFF多级代理取第一个IP", "", "1.2.3.4, 5.6.7.8, 6.6.6.6", "9.9.9.9:1234", "1.2.3.4"},
		{"XFF带端口", "", "1.2.3.4:5678", "9.9.9.9:1234", "1.2.3.4"},
		{"回退到RemoteAddr", "", "", "9.9.9.9:1234", "9.9.9.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.RemoteAddr = tt.remoteAddr
			if tt.realIP != "" {
				c.Request.Header.Set("X-Real-IP", tt.realIP)
			}
			if tt.forwardedFor != "" {
				c.Request.Header.Set("X-Forwarded-For", tt.forwardedFor)
			}

			if got := getClientIP(c); got != tt.want {
				t.Errorf("getClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

// 同一代理链后的不同客户端不应共用一个限流桶
func TestIPRateLimiter_DistinctClientsBehindProxy(t *testing.T) {
	limiter := newIPRateLimiter(1, 1)

	a := limiter.getLimiter("1.2.3.4")
	b := limiter.getLimiter("5.6.7.8")
	if a == b {
		t.Fatal("不同IP应获得各自独立的限流器")
	}

	// 耗尽 a 的突发额度不应影响 b
	if !a.Allow() {
		t.Fatal("a 的首个请求应被放行")
	}
	if a.Allow() {
		t.Error("a 的突发额度应已耗尽")
	}
	if !b.Allow() {
		t.Error("b 不应受 a 的限流影响")
	}
}
