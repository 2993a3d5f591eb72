package fileutil_test

// Notes:
// - The CreateTemp, Write and Close error branches in WriteFileAtomic are
//   covered only through the missing-directory case: triggering disk write
//   failures is platform-specific.

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-spellbook/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestValidateExtension - Extension validation
// ---------------------------------------------------------------------------

func TestValidateExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		extension string
		wantErr   error
	}{
		{
			name:      "valid extension html",
			extension: "html",
			wantErr:   nil,
		},
		{
			name:      "valid extension json",
			extension: "json",
			wantErr:   nil,
		},
		{
			name:      "empty extension",
			extension: "",
			wantErr:   fileutil.ErrExtensionEmpty,
		},
		{
			name:      "forward slash path traversal",
			extension: "../etc/passwd",
			wantErr:   fileutil.ErrExtensionPathTraversal,
		},
		{
			name:      "backslash path traversal",
			extension: "..\\windows\\system32",
			wantErr:   fileutil.ErrExtensionPathTraversal,
		},
		{
			name:      "null byte injection",
			extension: "html\x00exe",
			wantErr:   fileutil.ErrExtensionPathTraversal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fileutil.ValidateExtension(tt.extension)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateExtension(%q) error = %v, want %v", tt.extension, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestReplaceExt - Extension swapping
// ---------------------------------------------------------------------------

func TestReplaceExt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		path      string
		extension string
		want      string
		wantErr   error
	}{
		{
			name:      "markdown to html",
			path:      "guide/intro.md",
			extension: "html",
			want:      "guide/intro.html",
		},
		{
			name:      "long extension",
			path:      "notes.markdown",
			extension: "html",
			want:      "notes.html",
		},
		{
			name:      "no extension",
			path:      "README",
			extension: "html",
			want:      "README.html",
		},
		{
			name:      "dots in directory kept",
			path:      "v1.2/page.md",
			extension: "html",
			want:      "v1.2/page.html",
		},
		{
			name:      "invalid extension",
			path:      "page.md",
			extension: "",
			wantErr:   fileutil.ErrExtensionEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fileutil.ReplaceExt(tt.path, tt.extension)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ReplaceExt() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ReplaceExt(%q, %q) = %q, want %q", tt.path, tt.extension, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWriteFileAtomic - Atomic file replacement
// ---------------------------------------------------------------------------

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "page.html")

	if err := fileutil.WriteFileAtomic(path, []byte("<p>one</p>"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic() error = %v", err)
	}
	if err := fileutil.WriteFileAtomic(path, []byte("<p>two</p>"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic() overwrite error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	if string(data) != "<p>two</p>" {
		t.Errorf("file content = %q, want %q", data, "<p>two</p>")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("dir has %d entries, want 1 (no temp files left behind)", len(entries))
	}
}

func TestWriteFileAtomic_MissingDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "page.html")

	if err := fileutil.WriteFileAtomic(path, []byte("x"), 0o644); err == nil {
		t.Fatal("expected error for missing parent directory")
	}
	if fileutil.FileExists(path) {
		t.Error("file should not exist after failed write")
	}
}

// ---------------------------------------------------------------------------
// TestIsMarkdown - Markdown source detection
// ---------------------------------------------------------------------------

func TestIsMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"doc.md", true},
		{"doc.markdown", true},
		{"DOC.MD", true},
		{"dir/sub/doc.md", true},
		{"doc.txt", false},
		{"doc.md.bak", false},
		{"md", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.IsMarkdown(tt.path); got != tt.want {
				t.Errorf("IsMarkdown(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestFileExists - File existence check
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()

	testFile := filepath.Join(tempDir, "test.txt")
	if err := os.WriteFile(testFile, []byte("content"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	testDir := filepath.Join(tempDir, "testdir")
	if err := os.Mkdir(testDir, 0755); err != nil {
		t.Fatalf("failed to create test dir: %v", err)
	}

	tests := []struct {
		name     string
		path     string
		wantFile bool
		wantDir  bool
	}{
		{
			name:     "existing file",
			path:     testFile,
			wantFile: true,
		},
		{
			name:    "directory",
			path:    testDir,
			wantDir: true,
		},
		{
			name: "nonexistent path",
			path: filepath.Join(tempDir, "nonexistent"),
		},
		{
			name: "empty path",
			path: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.FileExists(tt.path); got != tt.wantFile {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.wantFile)
			}
			if got := fileutil.DirExists(tt.path); got != tt.wantDir {
				t.Errorf("DirExists(%q) = %v, want %v", tt.path, got, tt.wantDir)
			}
		})
	}
}
