package storage_test

import (
	"strings"
	"testing"

	"github.com/cliphaven/backend/pkg/storage"
)

func TestUniqueName_PreservesExtension(t *testing.T) {
	name := storage.UniqueName("avatar.PNG")
	if !strings.HasSuffix(name, ".png") {
		t.Fatalf("expected lowercase .png suffix, got %q", name)
	}
}

func TestUniqueName_NoExtension(t *testing.T) {
	name := storage.UniqueName("avatar")
	if strings.Contains(name, ".") {
		t.Fatalf("expected no extension, got %q", name)
	}
	if name == "" {
		t.Fatal("expected non-empty name")
	}
}

func TestUniqueName_CollisionResistant(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		name := storage.UniqueName("clip.mp4")
		if seen[name] {
			t.Fatalf("duplicate name generated: %q", name)
		}
		seen[name] = true
	}
}

func TestUniqueName_IgnoresOriginalBase(t *testing.T) {
	name := storage.UniqueName("../../etc/passwd.jpg")
	if strings.Contains(name, "/") || strings.Contains(name, "..") {
		t.Fatalf("original path leaked into object name: %q", name)
	}
}
