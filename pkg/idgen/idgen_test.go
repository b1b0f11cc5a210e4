package idgen

import "testing"

func TestPublicIDRoundTrip(t *testing.T) {
	if err := InitSqidsEncoder(); err != nil {
		t.Fatalf("InitSqidsEncoder() error = %v", err)
	}

	tests := []struct {
		name       string
		dbID       uint
		entityType uint64
	}{
		{"用户ID", 1, EntityTypeUser},
		{"文章ID", 42, EntityTypePost},
		{"大数值ID", 1<<31 - 1, EntityTypePost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publicID, err := GeneratePublicID(tt.dbID, tt.entityType)
			if err != nil {
				t.Fatalf("GeneratePublicID() error = %v", err)
			}
			if len(publicID) < 4 {
				t.Errorf("公共ID长度 %d 小于最小长度 4", len(publicID))
			}

			dbID, entityType, err := DecodePublicID(publicID)
			if err != nil {
				t.Fatalf("DecodePublicID() error = %v", err)
			}
			if dbID != tt.dbID || entityType != tt.entityType {
				t.Errorf("解码结果 = (%d, %d), want (%d, %d)", dbID, entityType, tt.dbID, tt.entityType)
			}
		})
	}
}

func TestDecodePublicID_Invalid(t *testing.T) {
	if err := InitSqidsEncoder(); err != nil {
		t.Fatalf("InitSqidsEncoder() error = %v", err)
	}

	if _, _, err := DecodePublicID(""); err == nil {
		t.Error("空字符串应解码失败")
	}
}

func TestEntityTypesDistinguishIDs(t *testing.T) {
	if err := InitSqidsEncoder(); err != nil {
		t.Fatalf("InitSqidsEncoder() error = %v", err)
	}

	userID, err := GeneratePublicID(1, EntityTypeUser)
	if err != nil {
		t.Fatalf("GeneratePublicID() error = %v", err)
	}
	postID, err := GeneratePublicID(1, EntityTypePost)
	if err != nil {
		t.Fatalf("GeneratePublicID() error = %v", err)
	}
	if userID == postID {
		t.Error("相同数据库ID的不同实体类型应生成不同的公共ID")
	}
}
