package assets

import (
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestValidateAssetName
// ---------------------------------------------------------------------------

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	valid := []string{"alert", "my-component", "my_component", "block123", "MyComponent", "_private"}
	for _, name := range valid {
		if err := ValidateAssetName(name); err != nil {
			t.Errorf("ValidateAssetName(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{
		"", ".", "..", ".hidden", "style.css", "alert.html.bak",
		"path/to/block", `path\to\block`, "../secret", `..\secret`,
		"/etc/passwd", `C:\Windows`, "1card", "my card",
	}
	for _, name := range invalid {
		if err := ValidateAssetName(name); !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("ValidateAssetName(%q) = %v, want ErrInvalidAssetName", name, err)
		}
	}
}

// ---------------------------------------------------------------------------
// TestLoadTemplate - Embedded built-ins
// ---------------------------------------------------------------------------

func TestLoadTemplate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		template    string
		wantErr     error
		wantContain string
	}{
		{"card body", "card", nil, "sb-card-body"},
		{"accordion uses details", "accordion", nil, "<details"},
		{"alert has role", "alert", nil, `role="alert"`},
		{"hero media", "hero", nil, "sb-hero-media"},
		{"practice meta list", "practice", nil, `<dl class="sb-practice-meta">`},
		{"unknown", "nonexistent", ErrTemplateNotFound, ""},
		{"empty", "", ErrInvalidAssetName, ""},
		{"traversal", "../secret", ErrInvalidAssetName, ""},
		{"extension", "alert.html", ErrInvalidAssetName, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := LoadTemplate(tt.template)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadTemplate(%q) error = %v, want %v", tt.template, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadTemplate(%q) unexpected error: %v", tt.template, err)
			}
			if !strings.Contains(got, tt.wantContain) {
				t.Errorf("LoadTemplate(%q) should contain %q", tt.template, tt.wantContain)
			}
		})
	}
}

func TestLoadTemplate_BuiltinsRenderContent(t *testing.T) {
	t.Parallel()

	for _, name := range BuiltinComponents {
		content, err := LoadTemplate(name)
		if err != nil {
			t.Fatalf("LoadTemplate(%q) error: %v", name, err)
		}

		// Every built-in wraps the rendered block content
		if !strings.Contains(content, ".Content") {
			t.Errorf("template %q should reference .Content", name)
		}
		if !strings.Contains(content, "sb-"+name) {
			t.Errorf("template %q should carry the sb-%s class", name, name)
		}
	}
}
