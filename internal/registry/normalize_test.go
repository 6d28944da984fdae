package registry

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/x.js", "x.js"},
		{"/dir/x.js", "/dir/x.js"},
		{"dir/x.js", "/dir/x.js"},
		{"a/b/c.js", "/a/b/c.js"},
		{"/a/b/c.js", "/a/b/c.js"},
		{"a.js", ".js"},
		{"x", ""},
		{"/", ""},
		{"//x.js", "//x.js"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizePath(tt.in); got != tt.want {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
