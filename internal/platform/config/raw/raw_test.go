package raw

import "testing"

func TestConfGet(t *testing.T) {
	t.Setenv("LOG_SERVICE", " patchgate-api ")
	t.Setenv("LOG_FORMAT", "json")

	log := New().Prefix("LOG_")

	tests := []struct {
		name string
		key  string
		def  string
		want string
	}{
		{name: "trimmed hit", key: "SERVICE", def: "x", want: "patchgate-api"},
		{name: "plain hit", key: "FORMAT", def: "console", want: "json"},
		{name: "missing uses default", key: "LEVEL", def: "info", want: "info"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := log.Get(tt.key, tt.def); got != tt.want {
				t.Fatalf("Get(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestConfGetBool(t *testing.T) {
	c := New().Prefix("RAWB_")
	t.Setenv("RAWB_ONE", "1")
	t.Setenv("RAWB_YES", "YES")
	t.Setenv("RAWB_OFF", "false")
	t.Setenv("RAWB_WS", "  true ")

	tests := []struct {
		key  string
		def  bool
		want bool
	}{
		{"ONE", false, true},
		{"YES", false, true},
		{"OFF", true, false},
		{"WS", false, true},
		{"MISSING", true, true},
	}
	for _, tt := range tests {
		if got := c.GetBool(tt.key, tt.def); got != tt.want {
			t.Fatalf("GetBool(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestConfGetInt(t *testing.T) {
	c := New().Prefix("RAWI_")
	t.Setenv("RAWI_OK", " 42 ")
	t.Setenv("RAWI_NEG", "-1")
	t.Setenv("RAWI_BAD", "4x")

	if c.GetInt("OK", 0) != 42 {
		t.Fatalf("GetInt OK mismatch")
	}
	if c.GetInt("NEG", 3) != 3 || c.GetInt("BAD", 9) != 9 || c.GetInt("MISSING", 1) != 1 {
		t.Fatalf("GetInt fallbacks mismatch")
	}
}
