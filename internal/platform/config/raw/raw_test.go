package raw

import "testing"

func TestConf(t *testing.T) {
	t.Setenv("LOG_LEVEL", " info ")
	t.Setenv("LOG_CALLER", "YES")
	t.Setenv("LOG_PRETTY", "no")
	t.Setenv("LOG_SAMPLE_EVERY", "5")
	t.Setenv("LOG_BAD", "-3")

	c := New().Prefix("LOG_")
	if got := c.Get("LEVEL", "debug"); got != "info" {
		t.Fatalf("Get(LEVEL) = %q, want info", got)
	}
	if got := c.Get("FORMAT", "console"); got != "console" {
		t.Fatalf("Get(FORMAT) = %q, want console", got)
	}

	bools := []struct {
		key  string
		def  bool
		want bool
	}{
		{"CALLER", false, true},
		{"PRETTY", true, false},
		{"MISSING", true, true},
	}
	for _, b := range bools {
		if got := c.GetBool(b.key, b.def); got != b.want {
			t.Fatalf("GetBool(%s, %v) = %v, want %v", b.key, b.def, got, b.want)
		}
	}

	ints := []struct {
		key  string
		want int
	}{
		{"SAMPLE_EVERY", 5},
		{"BAD", 1},
		{"LEVEL", 1},
		{"MISSING", 1},
	}
	for _, n := range ints {
		if got := c.GetInt(n.key, 1); got != n.want {
			t.Fatalf("GetInt(%s) = %d, want %d", n.key, got, n.want)
		}
	}
}
