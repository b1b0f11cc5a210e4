package strutil

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		maxLength int
		want      string
	}{
		{"不超长时原样返回", "hello", 10, "hello"},
		{"恰好等于上限", "hello", 5, "hello"},
		{"超长时截断并加省略号", "hello world", 5, "hello..."},
		{"中文按字符截断", "你好世界朋友", 4, "你好世界..."},
		{"空字符串", "", 3, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxLength); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxLength, got, tt.want)
			}
		})
	}
}
