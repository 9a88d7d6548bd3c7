package state

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStore_WriteAndRead(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewStore(filepath.Join(tmpDir, ".aws", "current-profile"))

	if err := store.Write("dev"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	name, err := store.Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if name != "dev" {
		t.Errorf("Expected 'dev', got %q", name)
	}
}

func TestStore_WriteCreatesParentDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "deeply", "nested", "current-profile")
	store := NewStore(path)

	if err := store.Write("prod"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected state file to exist: %v", err)
	}
}

func TestStore_WriteOverwrites(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewStore(filepath.Join(tmpDir, "current-profile"))

	if err := store.Write("dev"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := store.Write("prod"); err != nil {
		t.Fatalf("Second Write failed: %v", err)
	}

	name, err := store.Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if name != "prod" {
		t.Errorf("Expected 'prod', got %q", name)
	}
}

func TestStore_ReadTrimsWhitespace(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "current-profile")
	if err := os.WriteFile(path, []byte("dev\n"), 0644); err != nil {
		t.Fatalf("Failed to seed state file: %v", err)
	}

	store := NewStore(path)
	name, err := store.Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if name != "dev" {
		t.Errorf("Expected trimmed 'dev', got %q", name)
	}
}

func TestStore_Remove(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewStore(filepath.Join(tmpDir, "current-profile"))

	// Removing a missing file is a normal outcome
	existed, err := store.Remove()
	if err != nil {
		t.Fatalf("Remove on missing file failed: %v", err)
	}
	if existed {
		t.Error("Expected existed=false for missing state file")
	}

	if err := store.Write("dev"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	existed, err = store.Remove()
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if !existed {
		t.Error("Expected existed=true after writing state")
	}

	if _, err := os.Stat(store.Path()); !os.IsNotExist(err) {
		t.Error("Expected state file to be gone after Remove")
	}
}
