package utils

import "testing"

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"wrapped epoch millis", "/Date(1700000000000)/", "2023-11-14T22:13:20Z"},
		{"wrapped epoch zero", "/Date(0)/", "1970-01-01T00:00:00Z"},
		{"negative millis before epoch", "/Date(-86400000)/", "1969-12-31T00:00:00Z"},
		{"iso passthrough", "2024-01-01T00:00:00Z", "2024-01-01T00:00:00Z"},
		{"plain date passthrough", "14-11-2023", "14-11-2023"},
		{"empty passthrough", "", ""},
		{"markers but unparseable timestamp", "/Date(not-a-number)/", "/Date(not-a-number)/"},
		{"offset suffix passthrough", "/Date(1700000000000+1300)/", "/Date(1700000000000+1300)/"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeDate(tc.in); got != tc.want {
				t.Errorf("NormalizeDate(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
