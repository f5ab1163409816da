package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalStore_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store, err := NewLocalStore(dir)
	if err != nil {
		t.Fatalf("NewLocalStore returned error: %v", err)
	}

	rel, err := store.Save("u1-1700000000000.png", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if rel != "/uploads/u1-1700000000000.png" {
		t.Fatalf("unexpected relative path %q", rel)
	}

	data, err := os.ReadFile(filepath.Join(dir, "u1-1700000000000.png"))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Fatalf("unexpected content %q", data)
	}
}

func TestLocalStore_Save_Overwrites(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store, err := NewLocalStore(dir)
	if err != nil {
		t.Fatalf("NewLocalStore returned error: %v", err)
	}

	if _, err := store.Save("a.png", strings.NewReader("first")); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if _, err := store.Save("a.png", strings.NewReader("second")); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "a.png"))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "second" {
		t.Fatalf("expected last write to win, got %q", data)
	}
}
