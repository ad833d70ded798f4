package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestNewLocal(t *testing.T) {
	t.Run("Directory", func(t *testing.T) {
		dir := t.TempDir()
		backend, err := NewLocal(dir)
		if err != nil {
			t.Fatalf("NewLocal() error = %v", err)
		}
		defer backend.Close()

		if !filepath.IsAbs(backend.Root()) {
			t.Errorf("Root() = %s, want absolute path", backend.Root())
		}
	})

	t.Run("MissingPath", func(t *testing.T) {
		if _, err := NewLocal(filepath.Join(t.TempDir(), "missing")); err == nil {
			t.Error("NewLocal() succeeded for a missing path")
		}
	})

	t.Run("NotADirectory", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, "file.txt")
		if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
			t.Fatalf("failed to create file: %v", err)
		}

		if _, err := NewLocal(file); err == nil {
			t.Error("NewLocal() succeeded for a regular file")
		}
	})
}

func TestLocal_List(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "b.txt"), []byte("bb"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sub", "nested.txt"), []byte("n"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	backend, err := NewLocal(dir)
	if err != nil {
		t.Fatalf("NewLocal() error = %v", err)
	}
	defer backend.Close()

	infos, err := backend.List(context.Background(), ".")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	// Single level only, in name order
	wantNames := []string{"a.txt", "b.txt", "sub"}
	if len(infos) != len(wantNames) {
		t.Fatalf("List() returned %d entries, want %d", len(infos), len(wantNames))
	}
	for i, want := range wantNames {
		if infos[i].Name != want {
			t.Errorf("entry[%d] = %s, want %s", i, infos[i].Name, want)
		}
	}
	if !infos[2].IsDir {
		t.Error("sub is not reported as a directory")
	}
	if infos[1].Size != 2 {
		t.Errorf("b.txt size = %d, want 2", infos[1].Size)
	}

	entries := Entries(infos)
	if len(entries) != len(infos) {
		t.Fatalf("Entries() returned %d, want %d", len(entries), len(infos))
	}
	if entries[0].Name != "a.txt" || entries[0].IsDir {
		t.Errorf("entries[0] = %+v, want a.txt file", entries[0])
	}
}

func TestLocal_Stat(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("abc"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	backend, err := NewLocal(dir)
	if err != nil {
		t.Fatalf("NewLocal() error = %v", err)
	}
	defer backend.Close()

	info, err := backend.Stat(context.Background(), "a.txt")
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Name != "a.txt" || info.Size != 3 || info.IsDir {
		t.Errorf("Stat() = %+v, want a.txt size 3", info)
	}

	if _, err := backend.Stat(context.Background(), "missing.txt"); err == nil {
		t.Error("Stat() succeeded for a missing file")
	}
}

func TestLocal_Exists(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	backend, err := NewLocal(dir)
	if err != nil {
		t.Fatalf("NewLocal() error = %v", err)
	}
	defer backend.Close()

	exists, err := backend.Exists(context.Background(), "a.txt")
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if !exists {
		t.Error("Exists() = false for an existing file")
	}

	exists, err = backend.Exists(context.Background(), "missing.txt")
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if exists {
		t.Error("Exists() = true for a missing file")
	}
}
