package middleware

import "testing"

func TestMergeAllowedOrigins(t *testing.T) {
	cases := []struct {
		extra string
		want  string
	}{
		{"", "http://localhost:3000,http://localhost:3001"},
		{"https://apply.example.com", "http://localhost:3000,http://localhost:3001,https://apply.example.com"},
		{" https://a.example.com , https://b.example.com ", "http://localhost:3000,http://localhost:3001,https://a.example.com,https://b.example.com"},
		// Duplicates of the defaults are not repeated
		{"http://localhost:3000", "http://localhost:3000,http://localhost:3001"},
	}

	for _, tc := range cases {
		if got := MergeAllowedOrigins(tc.extra); got != tc.want {
			t.Errorf("MergeAllowedOrigins(%q) = %q, want %q", tc.extra, got, tc.want)
		}
	}
}
