package utils

import "testing"

func TestNormalizeID(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want string
	}{
		{"plain string", "abc123", "abc123"},
		{"trims whitespace", "  abc123\n", "abc123"},
		{"empty string", "   ", ""},
		{"mongo _id wrapper", map[string]interface{}{"_id": "abc123"}, "abc123"},
		{"extended json oid", map[string]interface{}{"$oid": "650f1a2b"}, "650f1a2b"},
		{"generic id key", map[string]interface{}{"id": "esc-9"}, "esc-9"},
		{"escenarioId key", map[string]interface{}{"escenarioId": "esc-9"}, "esc-9"},
		{"nested wrapper", map[string]interface{}{"_id": map[string]interface{}{"$oid": "650f1a2b"}}, "650f1a2b"},
		{"skips empty candidate keys", map[string]interface{}{"_id": "", "id": "esc-9"}, "esc-9"},
		{"number is unusable", 42.0, ""},
		{"nil is unusable", nil, ""},
		{"unknown keys are unusable", map[string]interface{}{"uuid": "x"}, ""},
	}
	for _, c := range cases {
		if got := NormalizeID(c.in); got != c.want {
			t.Errorf("%s: NormalizeID(%v) = %q, want %q", c.name, c.in, got, c.want)
		}
	}
}

func TestToNumber(t *testing.T) {
	cases := []struct {
		in       interface{}
		fallback float64
		want     float64
	}{
		{42.5, 0, 42.5},
		{int(7), 0, 7},
		{int64(7), 0, 7},
		{float32(1.5), 0, 1.5},
		{"40000", 0, 40000},
		{" 12.5 ", 0, 12.5},
		{"abc", 99, 99},
		{nil, 99, 99},
		{true, 99, 99},
		{"", 99, 99},
	}
	for _, c := range cases {
		if got := ToNumber(c.in, c.fallback); got != c.want {
			t.Errorf("ToNumber(%v, %v) = %v, want %v", c.in, c.fallback, got, c.want)
		}
	}
}

func TestSplitCSV(t *testing.T) {
	if got := SplitCSV(""); got != nil {
		t.Errorf("empty input should yield nil, got %v", got)
	}

	got := SplitCSV(" wifi, duchas ,,parqueadero ")
	want := []string{"wifi", "duchas", "parqueadero"}
	if len(got) != len(want) {
		t.Fatalf("SplitCSV = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("part %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGenerateRandomString(t *testing.T) {
	s := GenerateRandomString(14)
	if len(s) != 14 {
		t.Errorf("length = %d, want 14", len(s))
	}
	if GenerateRandomString(14) == s && GenerateRandomString(14) == s {
		t.Error("consecutive values should differ")
	}
}
