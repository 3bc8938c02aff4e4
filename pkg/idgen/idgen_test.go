package idgen

import "testing"

func TestMain(m *testing.M) {
	if err := InitSqidsEncoder(); err != nil {
		panic(err)
	}
	m.Run()
}

func TestGeneratePublicID_编码解码往返(t *testing.T) {
	tests := []struct {
		name       string
		dbID       uint
		entityType uint64
	}{
		{"用户ID", 1, EntityTypeUser},
		{"角色ID", 2, EntityTypeRole},
		{"大主键", 4294967295, EntityTypeUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publicID, err := GeneratePublicID(tt.dbID, tt.entityType)
			if err != nil {
				t.Fatalf("编码失败: %v", err)
			}
			if len(publicID) < 4 {
				t.Errorf("公共ID %q 长度不足 4", publicID)
			}

			dbID, entityType, err := DecodePublicID(publicID)
			if err != nil {
				t.Fatalf("解码失败: %v", err)
			}
			if dbID != tt.dbID || entityType != tt.entityType {
				t.Errorf("解码结果 = (%d, %d), 期望 (%d, %d)", dbID, entityType, tt.dbID, tt.entityType)
			}
		})
	}
}

func TestDecodeUserPublicID_类型不匹配时报错(t *testing.T) {
	roleID, err := GeneratePublicID(7, EntityTypeRole)
	if err != nil {
		t.Fatalf("编码失败: %v", err)
	}

	if _, err := DecodeUserPublicID(roleID); err == nil {
		t.Error("用角色ID解码用户ID应返回错误")
	}
}

func TestDecodePublicID_非法输入报错(t *testing.T) {
	if _, _, err := DecodePublicID("!!!"); err == nil {
		t.Error("非法公共ID应返回错误")
	}
}
