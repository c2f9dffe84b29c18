package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDiskStore_Save(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskStore(dir, "http://localhost:8080/uploads/", zerolog.Nop())

	url, err := store.Save(context.Background(), "photo.JPG", strings.NewReader("imagedata"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if !strings.HasPrefix(url, "http://localhost:8080/uploads/") {
		t.Errorf("URL %q not under base URL", url)
	}
	if !strings.HasSuffix(url, ".jpg") {
		t.Errorf("URL %q should carry the lowercased extension", url)
	}

	filename := url[strings.LastIndex(url, "/")+1:]
	data, err := os.ReadFile(filepath.Join(dir, filename))
	if err != nil {
		t.Fatalf("Stored file missing: %v", err)
	}
	if string(data) != "imagedata" {
		t.Errorf("Stored content = %q, want imagedata", data)
	}
}

func TestDiskStore_CollisionFreeNames(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskStore(dir, "http://localhost:8080/uploads", zerolog.Nop())

	first, err := store.Save(context.Background(), "photo.jpg", strings.NewReader("a"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	second, err := store.Save(context.Background(), "photo.jpg", strings.NewReader("b"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if first == second {
		t.Errorf("Same client filename produced the same URL twice: %q", first)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 2 {
		t.Errorf("Expected 2 stored files, got %d", len(entries))
	}
}

func TestDiskStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	store := NewDiskStore(dir, "http://localhost:8080/uploads", zerolog.Nop())

	if _, err := store.Save(context.Background(), "photo.png", strings.NewReader("x")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("Upload directory not created: %v", err)
	}
}
