package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"catconf/internal/filestorage"
)

func TestReadOrCreateMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "settings.ini")
	s := New()

	data, err := s.ReadOrCreate(path)
	if err != nil {
		t.Fatalf("ReadOrCreate: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("ReadOrCreate() = %q, want empty", data)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("file was not created: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("created file size = %d, want 0", info.Size())
	}
}

func TestReadOrCreateExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.ini")
	if err := os.WriteFile(path, []byte("[c]\nk=v\n"), 0644); err != nil {
		t.Fatal(err)
	}

	data, err := New().ReadOrCreate(path)
	if err != nil {
		t.Fatalf("ReadOrCreate: %v", err)
	}
	if string(data) != "[c]\nk=v\n" {
		t.Errorf("ReadOrCreate() = %q, want file contents", data)
	}
}

func TestReadOrCreateDirectory(t *testing.T) {
	_, err := New().ReadOrCreate(t.TempDir())
	if !errors.Is(err, filestorage.ErrIsDirectory) {
		t.Errorf("ReadOrCreate(dir) err = %v, want ErrIsDirectory", err)
	}
}

func TestEmptyPath(t *testing.T) {
	s := New()
	if _, err := s.ReadOrCreate(""); !errors.Is(err, filestorage.ErrEmptyPath) {
		t.Errorf("ReadOrCreate(\"\") err = %v, want ErrEmptyPath", err)
	}
	if err := s.Write("", nil); !errors.Is(err, filestorage.ErrEmptyPath) {
		t.Errorf("Write(\"\") err = %v, want ErrEmptyPath", err)
	}
}

func TestWriteTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.ini")
	s := New()

	if err := s.Write(path, []byte("a much longer first version\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := s.Write(path, []byte("short\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "short\n" {
		t.Errorf("file = %q, want %q", got, "short\n")
	}
}

func TestWriteCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "settings.ini")
	if err := New().Write(path, []byte("x")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file not written: %v", err)
	}
}

func TestWriteDirectory(t *testing.T) {
	err := New().Write(t.TempDir(), []byte("x"))
	if !errors.Is(err, filestorage.ErrIsDirectory) {
		t.Errorf("Write(dir) err = %v, want ErrIsDirectory", err)
	}
}
