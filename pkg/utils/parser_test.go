package utils

import (
	"testing"
	"time"
)

func TestOptionalString(t *testing.T) {
	if got := OptionalString("  "); got != nil {
		t.Errorf("OptionalString(blank) = %v, want nil", *got)
	}
	if got := OptionalString(" FRA "); got == nil || *got != "FRA" {
		t.Errorf("OptionalString(\" FRA \") = %v, want FRA", got)
	}
}

func TestOptionalFloat(t *testing.T) {
	if got := OptionalFloat(""); got != nil {
		t.Errorf("OptionalFloat(\"\") = %v, want nil", *got)
	}
	if got := OptionalFloat("-3.5"); got == nil || *got != -3.5 {
		t.Errorf("OptionalFloat(\"-3.5\") = %v, want -3.5", got)
	}
	if got := OptionalFloat("abc"); got != nil {
		t.Errorf("OptionalFloat(\"abc\") = %v, want nil", *got)
	}
}

func TestOptionalInt(t *testing.T) {
	cases := []struct {
		in   string
		want *int
	}{
		{"", nil},
		{"14", intPtr(14)},
		{"14.0", intPtr(14)},
		{"junk", nil},
	}
	for _, c := range cases {
		got := OptionalInt(c.in)
		switch {
		case c.want == nil && got != nil:
			t.Errorf("OptionalInt(%q) = %d, want nil", c.in, *got)
		case c.want != nil && (got == nil || *got != *c.want):
			t.Errorf("OptionalInt(%q) = %v, want %d", c.in, got, *c.want)
		}
	}
}

func TestOptionalBool(t *testing.T) {
	if got := OptionalBool("True"); got == nil || !*got {
		t.Errorf("OptionalBool(\"True\") = %v, want true", got)
	}
	if got := OptionalBool("false"); got == nil || *got {
		t.Errorf("OptionalBool(\"false\") = %v, want false", got)
	}
	if got := OptionalBool(""); got != nil {
		t.Errorf("OptionalBool(\"\") = %v, want nil", *got)
	}
	if got := OptionalBool("maybe"); got != nil {
		t.Errorf("OptionalBool(\"maybe\") = %v, want nil", *got)
	}
}

func TestOptionalTime(t *testing.T) {
	got := OptionalTime("2015-01-01 05:15:00")
	if got == nil {
		t.Fatal("OptionalTime() = nil, want a timestamp")
	}
	want := time.Date(2015, 1, 1, 5, 15, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("OptionalTime() = %v, want %v", got, want)
	}

	if got := OptionalTime(""); got != nil {
		t.Errorf("OptionalTime(\"\") = %v, want nil", *got)
	}
	if got := OptionalTime("not a time"); got != nil {
		t.Errorf("OptionalTime(garbage) = %v, want nil", *got)
	}
}

func intPtr(n int) *int { return &n }
