package utils

import (
	"encoding/base64"
	"testing"
)

func TestNewUID(t *testing.T) {
	id := NewUID()
	if len(id) != 22 {
		t.Fatalf("expected 22 characters, got %d (%q)", len(id), id)
	}
	raw, err := base64.RawURLEncoding.DecodeString(id)
	if err != nil {
		t.Fatalf("id is not url-safe base64: %v", err)
	}
	if len(raw) != 16 {
		t.Fatalf("expected 16 raw bytes, got %d", len(raw))
	}
}

func TestNewUIDUniqueness(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := NewUID()
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate id after %d generations: %s", i, id)
		}
		seen[id] = struct{}{}
	}
}
