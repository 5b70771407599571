// Package global - Test các custom validator đăng ký qua InitValidator.
package global

import "testing"

func validateVar(t *testing.T, value, tag string) error {
	t.Helper()
	if Validate == nil {
		InitValidator()
	}
	return Validate.Var(value, tag)
}

func TestValidateNoXSS(t *testing.T) {
	if err := validateVar(t, "Gạo ST25 túi 5kg", "no_xss"); err != nil {
		t.Errorf("text thường phải qua no_xss: %v", err)
	}
	if err := validateVar(t, "hello <script>alert(1)</script>", "no_xss"); err == nil {
		t.Error("chuỗi chứa <script phải bị chặn")
	}
	if err := validateVar(t, "a href=JAVASCRIPT:x", "no_xss"); err == nil {
		t.Error("pattern nguy hiểm phải bị chặn không phân biệt hoa thường")
	}
}

func TestValidateNoSQLInjection(t *testing.T) {
	if err := validateVar(t, "Balogun Market", "no_sql_injection"); err != nil {
		t.Errorf("text thường phải qua no_sql_injection: %v", err)
	}
	if err := validateVar(t, "x'; DROP TABLE users; --", "no_sql_injection"); err == nil {
		t.Error("chuỗi chứa pattern SQL injection phải bị chặn")
	}
}

func TestValidateStrongPassword(t *testing.T) {
	strong := []string{
		"Abcdef12",   // hoa + thường + số
		"abcdef1!",   // thường + số + đặc biệt
		"ABCDEF1!",   // hoa + số + đặc biệt
	}
	for _, p := range strong {
		if err := validateVar(t, p, "strong_password"); err != nil {
			t.Errorf("mật khẩu %q thỏa 3/4 điều kiện phải hợp lệ: %v", p, err)
		}
	}

	weak := []string{
		"Ab1!",       // quá ngắn
		"abcdefgh",   // chỉ 1 điều kiện
		"abcdefg1",   // chỉ 2 điều kiện
		"ABCDEFGH1",  // chỉ 2 điều kiện
	}
	for _, p := range weak {
		if err := validateVar(t, p, "strong_password"); err == nil {
			t.Errorf("mật khẩu yếu %q phải bị từ chối", p)
		}
	}
}
