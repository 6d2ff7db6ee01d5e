// Package bugsvc - Test diễn giải dateRange và filter bug history.
package bugsvc

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// now cố định để test: 2024-06-15 10:30 UTC
var fixedNow = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

func TestParseDateRange_NamedBuckets(t *testing.T) {
	cases := []struct {
		in        string
		wantStart time.Time
	}{
		{"today", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"week", fixedNow.AddDate(0, 0, -7)},
		{"month", fixedNow.AddDate(0, -1, 0)},
		{"year", fixedNow.AddDate(-1, 0, 0)},
	}
	for _, c := range cases {
		window, ok := ParseDateRange(c.in, fixedNow)
		if !ok {
			t.Fatalf("ParseDateRange(%q) không parse được", c.in)
		}
		if !window.Start.Equal(c.wantStart) {
			t.Errorf("ParseDateRange(%q).Start = %v, muốn %v", c.in, window.Start, c.wantStart)
		}
		if window.End != nil {
			t.Errorf("ParseDateRange(%q) bucket đặt tên không được có cận trên", c.in)
		}
	}
}

func TestParseDateRange_CustomInclusive(t *testing.T) {
	window, ok := ParseDateRange("2024-01-01,2024-01-31", fixedNow)
	if !ok {
		t.Fatal("custom range hợp lệ nhưng không parse được")
	}
	if !window.Start.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Start = %v, muốn 2024-01-01", window.Start)
	}
	if window.End == nil || !window.End.Equal(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("End = %v, muốn 2024-01-31 (inclusive)", window.End)
	}
}

func TestParseDateRange_Invalid(t *testing.T) {
	for _, in := range []string{"yesterday", "2024-01-01", "2024-01-01,bad", "a,b,c", ""} {
		if _, ok := ParseDateRange(in, fixedNow); ok {
			t.Errorf("ParseDateRange(%q) phải fail", in)
		}
	}
}

func TestBuildHistoryFilter(t *testing.T) {
	filter := BuildHistoryFilter("demo-user", "Logic Error", "2024-01-01,2024-01-31", fixedNow)

	if filter["userId"] != "demo-user" {
		t.Errorf("filter thiếu userId: %v", filter)
	}
	if filter["bugType"] != "Logic Error" {
		t.Errorf("filter thiếu bugType: %v", filter)
	}
	timeFilter, ok := filter["timestamp"].(bson.M)
	if !ok {
		t.Fatalf("filter thiếu timestamp: %v", filter)
	}
	if _, ok := timeFilter["$gte"]; !ok {
		t.Error("timestamp filter thiếu $gte")
	}
	if _, ok := timeFilter["$lte"]; !ok {
		t.Error("custom range phải có $lte (inclusive)")
	}
}

func TestBuildHistoryFilter_OptionalParams(t *testing.T) {
	filter := BuildHistoryFilter("demo-user", "", "", fixedNow)
	if len(filter) != 1 {
		t.Errorf("không có bugType/dateRange thì filter chỉ có userId, got: %v", filter)
	}

	// dateRange không hợp lệ: bỏ qua, không lọc thời gian
	filter = BuildHistoryFilter("demo-user", "", "garbage", fixedNow)
	if _, ok := filter["timestamp"]; ok {
		t.Errorf("dateRange không hợp lệ nhưng vẫn có timestamp filter: %v", filter)
	}

	// Bucket đặt tên: chỉ có $gte
	filter = BuildHistoryFilter("demo-user", "", "week", fixedNow)
	timeFilter := filter["timestamp"].(bson.M)
	if _, ok := timeFilter["$lte"]; ok {
		t.Error("bucket 'week' không được có $lte")
	}
}
