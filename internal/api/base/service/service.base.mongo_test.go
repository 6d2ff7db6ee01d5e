// Package basesvc - Test các helper phân trang thuần.
package basesvc

import "testing"

func TestNormalizePagination(t *testing.T) {
	cases := []struct {
		page, limit         int64
		wantPage, wantLimit int64
	}{
		{1, 10, 1, 10},
		{0, 10, 1, 10},
		{-5, 10, 1, 10},
		{3, 0, 3, 10},
		{3, -1, 3, 10},
		{2, 50, 2, 50},
	}
	for _, c := range cases {
		page, limit := NormalizePagination(c.page, c.limit)
		if page != c.wantPage || limit != c.wantLimit {
			t.Errorf("NormalizePagination(%d, %d) = (%d, %d), muốn (%d, %d)",
				c.page, c.limit, page, limit, c.wantPage, c.wantLimit)
		}
	}
}

func TestComputeSkip(t *testing.T) {
	cases := []struct {
		page, limit int64
		want        int64
	}{
		{1, 5, 0},
		{1, 10, 0},
		{1, 20, 0},
		{2, 5, 5},
		{2, 10, 10},
		{2, 20, 20},
		{3, 5, 10},
		{3, 10, 20},
		{3, 20, 40},
	}
	for _, c := range cases {
		if got := ComputeSkip(c.page, c.limit); got != c.want {
			t.Errorf("ComputeSkip(%d, %d) = %d, muốn %d", c.page, c.limit, got, c.want)
		}
	}
}

func TestComputeTotalPage(t *testing.T) {
	cases := []struct {
		total, limit int64
		want         int64
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{100, 7, 15},
	}
	for _, c := range cases {
		if got := ComputeTotalPage(c.total, c.limit); got != c.want {
			t.Errorf("ComputeTotalPage(%d, %d) = %d, muốn %d", c.total, c.limit, got, c.want)
		}
	}
}
