// Package bugsvc - Test rollup thuần: most-common tie-break và improvement score.
package bugsvc

import "testing"

func TestMostCommonBugType(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want string
	}{
		{"rỗng", nil, "N/A"},
		{"một loại", []string{"Null Pointer"}, "Null Pointer"},
		{"đa số rõ ràng", []string{"A", "B", "A"}, "A"},
		// Hòa số lượng: loại đạt count sau cùng thắng
		{"hòa last-wins", []string{"A", "A", "A", "B", "B", "B"}, "B"},
		{"hòa đảo thứ tự", []string{"B", "B", "B", "A", "A", "A"}, "A"},
	}
	for _, c := range cases {
		if got := MostCommonBugType(c.in); got != c.want {
			t.Errorf("%s: MostCommonBugType(%v) = %q, muốn %q", c.name, c.in, got, c.want)
		}
	}
}

func TestImprovementScore(t *testing.T) {
	cases := []struct {
		total int64
		want  int64
	}{
		{0, 100},
		{1, 98},
		{10, 80},
		{50, 0},
		{51, 0},
		{1000, 0},
	}
	for _, c := range cases {
		if got := ImprovementScore(c.total); got != c.want {
			t.Errorf("ImprovementScore(%d) = %d, muốn %d", c.total, got, c.want)
		}
	}
}

func TestBuildNarratives(t *testing.T) {
	pattern, rootCause, insights, recommendation := buildNarratives(3, "Off-by-one")
	for name, s := range map[string]string{
		"pattern":        pattern,
		"rootCause":      rootCause,
		"insights":       insights,
		"recommendation": recommendation,
	} {
		if s == "" {
			t.Errorf("narrative %s rỗng", name)
		}
	}
	if pattern != "You have logged 3 bugs so far. The pattern that stands out most is Off-by-one." {
		t.Errorf("pattern không đúng template: %q", pattern)
	}
}
