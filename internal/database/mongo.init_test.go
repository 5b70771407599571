// Package database - Test phân tích tag index của model.
package database

import "testing"

func TestParseOrder(t *testing.T) {
	if parseOrder("single,order:-1") != -1 {
		t.Error("tag chứa order:-1 phải trả về -1")
	}
	if parseOrder("single,order:1") != 1 {
		t.Error("tag chứa order:1 phải trả về 1")
	}
	if parseOrder("single") != 1 {
		t.Error("không có order thì mặc định tăng dần (1)")
	}
}

func TestParseIndexTag_SingleConfig(t *testing.T) {
	configs := parseIndexTag("unique,sparse")
	if len(configs) != 1 {
		t.Fatalf("một cấu hình phải trả về 1 entry, nhận %d", len(configs))
	}
	if _, ok := configs[0]["unique"]; !ok {
		t.Error("thiếu key unique")
	}
	if _, ok := configs[0]["sparse"]; !ok {
		t.Error("thiếu key sparse")
	}
}

func TestParseIndexTag_MultipleConfigs(t *testing.T) {
	configs := parseIndexTag("single:1;compound:review_target_user_unique,order:1")
	if len(configs) != 2 {
		t.Fatalf("hai cấu hình tách bởi ';' phải trả về 2 entry, nhận %d", len(configs))
	}
	if configs[0]["single"] != "1" {
		t.Errorf("cấu hình đầu phải là single:1, nhận %v", configs[0])
	}
	if configs[1]["compound"] != "review_target_user_unique" {
		t.Errorf("cấu hình hai phải giữ tên nhóm compound, nhận %v", configs[1])
	}
	if configs[1]["order"] != "1" {
		t.Errorf("order của cấu hình compound phải được giữ, nhận %v", configs[1])
	}
}

func TestParseIndexTag_ValuelessKeys(t *testing.T) {
	configs := parseIndexTag("geo2dsphere")
	if len(configs) != 1 {
		t.Fatalf("nhận %d entry", len(configs))
	}
	if v, ok := configs[0]["geo2dsphere"]; !ok || v != "" {
		t.Errorf("key không có value phải map về chuỗi rỗng, nhận %v", configs[0])
	}
}
