// Package bugsvc - Test phân loại project/language từ filePath.
package bugsvc

import "testing"

func TestProjectFromPath(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"shopcart/src/app.ts", "shopcart"},
		{"/shopcart/src/app.ts", "shopcart"},
		{"single.py", "single.py"},
		{"", "Unknown"},
		{"///", "Unknown"},
	}
	for _, c := range cases {
		if got := ProjectFromPath(c.path); got != c.want {
			t.Errorf("ProjectFromPath(%q) = %q, muốn %q", c.path, got, c.want)
		}
	}
}

func TestLanguageFromPath(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"shopcart/src/app.ts", "TypeScript"},
		{"web/App.TSX", "TypeScript"},
		{"lib/index.js", "JavaScript"},
		{"components/Nav.jsx", "JavaScript"},
		{"scripts/train.py", "Python"},
		{"src/Main.java", "Java"},
		{"main.go", "Other"},
		{"README", "Other"},
		{"", "Other"},
	}
	for _, c := range cases {
		if got := LanguageFromPath(c.path); got != c.want {
			t.Errorf("LanguageFromPath(%q) = %q, muốn %q", c.path, got, c.want)
		}
	}
}
