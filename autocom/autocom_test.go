package autocom

import "testing"

func TestStaleMembers(t *testing.T) {
	members := []string{
		"sede-1|Complejo La 70",
		"sede-1|Complejo La 70 Renovado",
		"sede-2|Canchas del Norte",
		"sede-10|Otra Sede",
	}

	stale := staleMembers(members, "sede-1")
	if len(stale) != 2 {
		t.Fatalf("got %d stale members, want 2", len(stale))
	}
	for _, m := range stale {
		s, ok := m.(string)
		if !ok || s[:7] != "sede-1|" {
			t.Errorf("unexpected stale member %v", m)
		}
	}

	// prefix match must not bleed into longer ids
	if got := staleMembers(members, "sede-"); len(got) != 0 {
		t.Errorf("partial id matched %d members, want 0", len(got))
	}
}
