// Package catalogsvc - Test tính thống kê giá của catalog item.
package catalogsvc

import "testing"

func TestComputePriceStats_Empty(t *testing.T) {
	lowest, highest, average, total := ComputePriceStats(nil)
	if lowest != 0 || highest != 0 || average != 0 || total != 0 {
		t.Errorf("danh sách rỗng phải trả về toàn zero, nhận %v/%v/%v/%d", lowest, highest, average, total)
	}
}

func TestComputePriceStats_SinglePrice(t *testing.T) {
	lowest, highest, average, total := ComputePriceStats([]float64{2500})
	if lowest != 2500 || highest != 2500 || average != 2500 || total != 1 {
		t.Errorf("một giá duy nhất: min=max=avg, nhận %v/%v/%v/%d", lowest, highest, average, total)
	}
}

func TestComputePriceStats_RoundsAverage(t *testing.T) {
	lowest, highest, average, total := ComputePriceStats([]float64{1000, 1500, 2001})
	if lowest != 1000 {
		t.Errorf("lowest sai: %v", lowest)
	}
	if highest != 2001 {
		t.Errorf("highest sai: %v", highest)
	}
	// (1000+1500+2001)/3 = 1500.333... -> 1500.33
	if average != 1500.33 {
		t.Errorf("average phải làm tròn 2 chữ số (1500.33), nhận %v", average)
	}
	if total != 3 {
		t.Errorf("total sai: %d", total)
	}
}

func TestComputePriceStats_UnorderedInput(t *testing.T) {
	lowest, highest, _, _ := ComputePriceStats([]float64{500, 100, 900, 300})
	if lowest != 100 || highest != 900 {
		t.Errorf("min/max không phụ thuộc thứ tự input, nhận %v/%v", lowest, highest)
	}
}
