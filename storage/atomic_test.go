package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAtomicWriter_Commit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.json")

	w, err := NewAtomicWriter(path)
	if err != nil {
		t.Fatalf("NewAtomicWriter() error = %v", err)
	}
	if _, err := w.Write([]byte(`{"ok":true}`)); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := w.Commit(); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read committed file: %v", err)
	}
	if string(data) != `{"ok":true}` {
		t.Errorf("committed content = %q", data)
	}
}

func TestAtomicWriter_Abort(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	w, err := NewAtomicWriter(path)
	if err != nil {
		t.Fatalf("NewAtomicWriter() error = %v", err)
	}
	w.Write([]byte("partial"))
	if err := w.Abort(); err != nil {
		t.Fatalf("Abort() error = %v", err)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("target file exists after Abort()")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("temp files left behind after Abort(): %v", entries)
	}
}

func TestAtomicWriter_NoPartialState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := NewAtomicWriter(path)
	if err != nil {
		t.Fatalf("NewAtomicWriter() error = %v", err)
	}
	w.Write([]byte("half-writ"))

	// Until Commit, the target keeps its old content.
	data, _ := os.ReadFile(path)
	if string(data) != "old" {
		t.Errorf("target changed before Commit(): %q", data)
	}

	if err := w.Commit(); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "half-writ" {
		t.Errorf("target after Commit() = %q", data)
	}
}
