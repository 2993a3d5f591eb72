package registry

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/alnah/go-spellbook/internal/attrs"
)

func upper(_ attrs.Set, content string) (string, error) {
	return strings.ToUpper(content), nil
}

func TestRegisterAndLookup(t *testing.T) {
	t.Parallel()

	r := New()
	if err := r.Register("shout", ComponentFunc(upper), ModeRaw); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	e, err := r.Lookup("shout")
	if err != nil {
		t.Fatalf("Lookup() unexpected error: %v", err)
	}
	if e.Mode != ModeRaw {
		t.Errorf("Mode = %v, want %v", e.Mode, ModeRaw)
	}
	got, _ := e.Component.Render(attrs.Set{}, "hi")
	if got != "HI" {
		t.Errorf("Render() = %q, want %q", got, "HI")
	}
}

func TestLookupUnknown(t *testing.T) {
	t.Parallel()

	r := New()
	_ = r.Register("card", ComponentFunc(upper), ModeMarkdown)

	tests := []string{"missing", "Card", "CARD", ""}
	for _, name := range tests {
		if _, err := r.Lookup(name); !errors.Is(err, ErrUnknownComponent) {
			t.Errorf("Lookup(%q) error = %v, want ErrUnknownComponent", name, err)
		}
	}
}

func TestRegisterOverwrites(t *testing.T) {
	t.Parallel()

	r := New()
	_ = r.Register("x", ComponentFunc(upper), ModeMarkdown)
	_ = r.Register("x", ComponentFunc(func(attrs.Set, string) (string, error) { return "second", nil }), ModeRaw)

	e, _ := r.Lookup("x")
	got, _ := e.Component.Render(attrs.Set{}, "")
	if got != "second" || e.Mode != ModeRaw {
		t.Errorf("re-registration should overwrite, got %q mode %v", got, e.Mode)
	}
}

func TestRegisterErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		key     string
		comp    Component
		wantErr error
	}{
		{name: "empty name", key: "", comp: ComponentFunc(upper), wantErr: ErrInvalidName},
		{name: "space in name", key: "my card", comp: ComponentFunc(upper), wantErr: ErrInvalidName},
		{name: "leading digit", key: "1card", comp: ComponentFunc(upper), wantErr: ErrInvalidName},
		{name: "nil component", key: "card", comp: nil, wantErr: ErrNilComponent},
		{name: "dash and underscore", key: "my_card-2", comp: ComponentFunc(upper)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := New().Register(tt.key, tt.comp, ModeMarkdown)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Register(%q) error = %v, want %v", tt.key, err, tt.wantErr)
			}
		})
	}
}

func TestNamesAndClone(t *testing.T) {
	t.Parallel()

	r := New()
	_ = r.Register("b", ComponentFunc(upper), ModeMarkdown)
	_ = r.Register("a", ComponentFunc(upper), ModeMarkdown)

	c := r.Clone()
	_ = c.Register("c", ComponentFunc(upper), ModeMarkdown)

	if got, want := r.Names(), []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	if !c.Has("c") || r.Has("c") {
		t.Error("Clone() should be independent of the original")
	}
}

func TestZeroValueRegistry(t *testing.T) {
	t.Parallel()

	var r Registry
	if r.Has("shout") || len(r.Names()) != 0 {
		t.Fatal("zero Registry should be empty")
	}
	if _, err := r.Lookup("shout"); !errors.Is(err, ErrUnknownComponent) {
		t.Errorf("Lookup() error = %v, want ErrUnknownComponent", err)
	}
	if got := r.Clone(); len(got.Names()) != 0 {
		t.Errorf("Clone() of zero Registry = %v, want empty", got.Names())
	}

	if err := r.Register("shout", ComponentFunc(upper), ModeRaw); err != nil {
		t.Fatalf("Register() on zero Registry: %v", err)
	}
	if !r.Has("shout") {
		t.Error("registered component missing")
	}
}
