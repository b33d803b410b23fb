package mountdir

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestPath(t *testing.T) {
	m := New("/home/me")

	if got, want := m.Root(), "/home/me/.sftp-mounts"; got != want {
		t.Errorf("Root() = %q, want %q", got, want)
	}
	if got, want := m.Path("web"), "/home/me/.sftp-mounts/web"; got != want {
		t.Errorf("Path(web) = %q, want %q", got, want)
	}
}

func TestEnsure(t *testing.T) {
	home := t.TempDir()
	m := New(home)

	if m.Exists("web") {
		t.Fatal("Exists() = true before Ensure")
	}

	path, created, err := m.Ensure("web")
	if err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}
	if !created {
		t.Error("first Ensure() created = false, want true")
	}
	if path != filepath.Join(home, RootName, "web") {
		t.Errorf("Ensure() path = %q", path)
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		t.Fatalf("mount directory missing after Ensure: %v", err)
	}

	_, created, err = m.Ensure("web")
	if err != nil {
		t.Fatalf("second Ensure() error = %v", err)
	}
	if created {
		t.Error("second Ensure() created = true, want false")
	}
	if !m.Exists("web") {
		t.Error("Exists() = false after Ensure")
	}
}

func TestEnsureFailure(t *testing.T) {
	home := t.TempDir()
	// A regular file where the mount root should be.
	if err := os.WriteFile(filepath.Join(home, RootName), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := New(home).Ensure("web")
	if !errors.Is(err, ErrCreate) {
		t.Errorf("Ensure() error = %v, want ErrCreate", err)
	}
}

func TestEnsureRejectsFile(t *testing.T) {
	home := t.TempDir()
	m := New(home)
	if err := os.MkdirAll(m.Root(), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(m.Path("web"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, created, err := m.Ensure("web")
	if !errors.Is(err, ErrCreate) {
		t.Errorf("Ensure() error = %v, want ErrCreate", err)
	}
	if created {
		t.Error("Ensure() created = true for a regular file")
	}
}
