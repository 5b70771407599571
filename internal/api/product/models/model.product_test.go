// Package models - Test đồ thị chuyển trạng thái vòng đời sản phẩm.
package models

import "testing"

func TestCanTransitionStatus_AllowedSteps(t *testing.T) {
	allowed := [][2]string{
		{StatusDraft, StatusPending},
		{StatusPending, StatusApproved},
		{StatusPending, StatusRejected},
		{StatusApproved, StatusOutOfStock},
		{StatusApproved, StatusDiscontinued},
		{StatusRejected, StatusPending},
		{StatusRejected, StatusDiscontinued},
		{StatusOutOfStock, StatusApproved},
		{StatusOutOfStock, StatusDiscontinued},
	}

	for _, step := range allowed {
		if !CanTransitionStatus(step[0], step[1]) {
			t.Errorf("chuyển %s -> %s phải hợp lệ", step[0], step[1])
		}
	}
}

func TestCanTransitionStatus_BlockedSteps(t *testing.T) {
	blocked := [][2]string{
		{StatusDraft, StatusApproved},      // không được bỏ qua bước duyệt
		{StatusDraft, StatusDiscontinued},  // nháp không ngừng kinh doanh trực tiếp
		{StatusApproved, StatusPending},    // đã duyệt không quay lại hàng chờ
		{StatusDiscontinued, StatusPending}, // discontinued là trạng thái cuối
		{StatusDiscontinued, StatusApproved},
		{StatusApproved, StatusApproved}, // không có self-transition
	}

	for _, step := range blocked {
		if CanTransitionStatus(step[0], step[1]) {
			t.Errorf("chuyển %s -> %s phải bị chặn", step[0], step[1])
		}
	}
}

func TestCanTransitionStatus_UnknownStatus(t *testing.T) {
	if CanTransitionStatus("khong_ton_tai", StatusPending) {
		t.Error("trạng thái nguồn không tồn tại thì không có bước chuyển hợp lệ")
	}
	if CanTransitionStatus(StatusPending, "khong_ton_tai") {
		t.Error("trạng thái đích không tồn tại thì không có bước chuyển hợp lệ")
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []string{StatusDraft, StatusPending, StatusApproved, StatusRejected, StatusOutOfStock, StatusDiscontinued} {
		if !IsValidStatus(s) {
			t.Errorf("%q phải là trạng thái hợp lệ", s)
		}
	}
	if IsValidStatus("deleted") {
		t.Error("trạng thái ngoài vòng đời phải không hợp lệ")
	}
}
