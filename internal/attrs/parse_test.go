package attrs

import (
	"reflect"
	"testing"

	"github.com/alnah/go-spellbook/internal/diag"
)

// ---------------------------------------------------------------------------
// TestParse - Attribute grammar
// ---------------------------------------------------------------------------

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		expected  []Attr
		wantCodes []diag.Code
	}{
		{
			name:     "empty",
			input:    "",
			expected: []Attr{},
		},
		{
			name:  "double quoted",
			input: `title="Hello World"`,
			expected: []Attr{
				{Name: "title", Value: "Hello World"},
			},
		},
		{
			name:  "single quoted keeps double quotes",
			input: `title='say "hi"'`,
			expected: []Attr{
				{Name: "title", Value: `say "hi"`},
			},
		},
		{
			name:  "unquoted",
			input: "type=warning",
			expected: []Attr{
				{Name: "type", Value: "warning"},
			},
		},
		{
			name:  "bare flag",
			input: "open",
			expected: []Attr{
				{Name: "open", Value: "true", Flag: true},
			},
		},
		{
			name:  "class shorthand accumulates",
			input: ".a .b",
			expected: []Attr{
				{Name: "class", Value: "a b"},
			},
		},
		{
			name:  "class shorthand merges explicit class",
			input: `.a class="b a" .c`,
			expected: []Attr{
				{Name: "class", Value: "a b c"},
			},
		},
		{
			name:  "id shorthand",
			input: "#main",
			expected: []Attr{
				{Name: "id", Value: "main"},
			},
		},
		{
			name:  "second id wins with warning",
			input: "#a #b",
			expected: []Attr{
				{Name: "id", Value: "b"},
			},
			wantCodes: []diag.Code{diag.CodeDuplicateID},
		},
		{
			name:  "explicit id after shorthand wins",
			input: "#a id=c",
			expected: []Attr{
				{Name: "id", Value: "c"},
			},
			wantCodes: []diag.Code{diag.CodeDuplicateID},
		},
		{
			name:  "framework-style names",
			input: `@click="go()" :x=1 hx-get="/a"`,
			expected: []Attr{
				{Name: "@click", Value: "go()"},
				{Name: ":x", Value: "1"},
				{Name: "hx-get", Value: "/a"},
			},
		},
		{
			name:  "duplicate last wins keeps position",
			input: "a=1 b=2 a=3",
			expected: []Attr{
				{Name: "a", Value: "3"},
				{Name: "b", Value: "2"},
			},
		},
		{
			name:  "case sensitive names",
			input: "Title=a title=b",
			expected: []Attr{
				{Name: "Title", Value: "a"},
				{Name: "title", Value: "b"},
			},
		},
		{
			name:  "unterminated quote takes rest",
			input: `title="oops rest of line`,
			expected: []Attr{
				{Name: "title", Value: "oops rest of line"},
			},
			wantCodes: []diag.Code{diag.CodeUnterminatedQuote},
		},
		{
			name:  "empty name skipped",
			input: `="x" ok`,
			expected: []Attr{
				{Name: "ok", Value: "true", Flag: true},
			},
			wantCodes: []diag.Code{diag.CodeEmptyAttrName},
		},
		{
			name:  "empty unquoted value",
			input: "a= b",
			expected: []Attr{
				{Name: "a", Value: ""},
				{Name: "b", Value: "true", Flag: true},
			},
		},
		{
			name:  "mixed forms",
			input: `.card #intro title="Hi" open data-x=1`,
			expected: []Attr{
				{Name: "class", Value: "card"},
				{Name: "id", Value: "intro"},
				{Name: "title", Value: "Hi"},
				{Name: "open", Value: "true", Flag: true},
				{Name: "data-x", Value: "1"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			set, diags := Parse(tt.input)
			if got := set.All(); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.expected)
			}

			var codes []diag.Code
			for _, d := range diags {
				codes = append(codes, d.Code)
				if d.Severity != diag.SeverityWarning {
					t.Errorf("diagnostic %v should be a warning", d)
				}
			}
			if !reflect.DeepEqual(codes, tt.wantCodes) {
				t.Errorf("Parse(%q) codes = %v, want %v", tt.input, codes, tt.wantCodes)
			}
		})
	}
}

func TestParseNeverEmptyName(t *testing.T) {
	t.Parallel()

	inputs := []string{"=", "==", `""`, `= = =`, `'a`, "#", ".", "=x y=", `"`}
	for _, in := range inputs {
		set, _ := Parse(in)
		for _, name := range set.Names() {
			if name == "" {
				t.Errorf("Parse(%q) produced an empty attribute name", in)
			}
		}
	}
}

func TestParseColumn(t *testing.T) {
	t.Parallel()

	_, diags := Parse(`a=1 title="x`)
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	if diags[0].Column != 5 {
		t.Errorf("Column = %d, want 5", diags[0].Column)
	}
}

// ---------------------------------------------------------------------------
// TestSet - Accessors and rendering
// ---------------------------------------------------------------------------

func TestSetBool(t *testing.T) {
	t.Parallel()

	set, _ := Parse(`open striped=false rounded="yes" animated=animated`)
	tests := []struct {
		name     string
		expected bool
	}{
		{"open", true},
		{"striped", false},
		{"rounded", true},
		{"animated", true},
		{"missing", false},
	}
	for _, tt := range tests {
		if got := set.Bool(tt.name); got != tt.expected {
			t.Errorf("Bool(%q) = %v, want %v", tt.name, got, tt.expected)
		}
	}
}

func TestSetHTML(t *testing.T) {
	t.Parallel()

	set, _ := Parse(`.x title="a<b" hidden`)
	want := ` class="x" title="a&lt;b" hidden`
	if got := set.HTML(); got != want {
		t.Errorf("HTML() = %q, want %q", got, want)
	}
}

func TestSetString(t *testing.T) {
	t.Parallel()

	set, _ := Parse(`title='say "hi"' open n=1`)
	want := `title='say "hi"' open n="1"`
	if got := set.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSetMutation(t *testing.T) {
	t.Parallel()

	var s Set
	s.Set("", "ignored")
	s.Set("a", "1")
	s.Set("b", "2")
	s.Set("a", "3")
	s.Delete("b")

	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	if v := s.Value("a", "def"); v != "3" {
		t.Errorf("Value(a) = %q, want %q", v, "3")
	}
	if v := s.Value("b", "def"); v != "def" {
		t.Errorf("Value(b) = %q, want %q", v, "def")
	}

	w := s.Without("a")
	if w.Len() != 0 || s.Len() != 1 {
		t.Errorf("Without should not modify the receiver: got %d/%d", w.Len(), s.Len())
	}
}
