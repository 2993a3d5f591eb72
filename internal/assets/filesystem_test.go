package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewFilesystemLoader(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, []byte("test"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := NewFilesystemLoader(dir); err != nil {
		t.Errorf("NewFilesystemLoader(dir) error = %v", err)
	}

	for name, path := range map[string]string{
		"empty":   "",
		"missing": filepath.Join(dir, "missing"),
		"file":    file,
	} {
		if _, err := NewFilesystemLoader(path); !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("%s: NewFilesystemLoader(%q) error = %v, want ErrInvalidBasePath", name, path, err)
		}
	}
}

func TestFilesystemLoader_LoadTemplate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := `<div class="my-block">{{.Content}}</div>`
	writeComponent(t, dir, "mine", content)

	loader, err := NewFilesystemLoader(dir)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}

	got, err := loader.LoadTemplate("mine")
	if err != nil {
		t.Fatalf("LoadTemplate() error = %v", err)
	}
	if got != content {
		t.Errorf("LoadTemplate() = %q, want %q", got, content)
	}

	if _, err := loader.LoadTemplate("alert"); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("LoadTemplate(alert) error = %v, want ErrTemplateNotFound", err)
	}
	for _, name := range []string{"", "../secret", `..\secret`, "template.evil"} {
		if _, err := loader.LoadTemplate(name); !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("LoadTemplate(%q) error = %v, want ErrInvalidAssetName", name, err)
		}
	}
}

func TestFilesystemLoader_MissingComponentsDir(t *testing.T) {
	t.Parallel()

	loader, err := NewFilesystemLoader(t.TempDir())
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}
	if _, err := loader.LoadTemplate("card"); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("LoadTemplate() error = %v, want ErrTemplateNotFound", err)
	}
}

func TestFilesystemLoader_SymlinkEscape(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	componentsDir := filepath.Join(dir, ComponentsDir)
	if err := os.MkdirAll(componentsDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	secret := filepath.Join(t.TempDir(), "secret.html")
	if err := os.WriteFile(secret, []byte("secret content"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.Symlink(secret, filepath.Join(componentsDir, "evil.html")); err != nil {
		t.Skipf("symlink creation not supported: %v", err)
	}

	loader, err := NewFilesystemLoader(dir)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}

	got, err := loader.LoadTemplate("evil")
	if !errors.Is(err, ErrPathTraversal) {
		t.Errorf("LoadTemplate(evil) error = %v, want ErrPathTraversal", err)
	}
	if got != "" {
		t.Errorf("LoadTemplate(evil) leaked %q", got)
	}
}

func TestFilesystemLoader_SymlinkInside(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeComponent(t, dir, "card", "<div class=\"x\">{{.Content}}</div>")
	if err := os.Symlink("card.html", filepath.Join(dir, ComponentsDir, "panel.html")); err != nil {
		t.Skipf("symlink creation not supported: %v", err)
	}

	loader, err := NewFilesystemLoader(dir)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}
	if _, err := loader.LoadTemplate("panel"); err != nil {
		t.Errorf("LoadTemplate(panel) error = %v, links inside the directory are allowed", err)
	}
}
