// Package frontmatter splits a leading YAML block from a markdown document
// and decodes the metadata fields the compiler understands.
//
// A block starts with a "---" first line and ends with the next line holding
// only "---" (or "..."). A block without its closing line is not frontmatter:
// the text stays part of the body and a warning is reported.
package frontmatter

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-spellbook/internal/dateutil"
	"github.com/alnah/go-spellbook/internal/diag"
	"github.com/alnah/go-spellbook/internal/yamlutil"
)

// ErrInvalid is returned when a delimited block is not a YAML mapping.
var ErrInvalid = errors.New("invalid frontmatter")

// Keys checked in order for the publication and modification dates.
var (
	publishedKeys = []string{"published", "published_at", "date", "created", "created_at"}
	modifiedKeys  = []string{"modified", "modified_at", "updated", "updated_at"}
)

var changeFreqs = map[string]bool{
	"always": true, "hourly": true, "daily": true, "weekly": true,
	"monthly": true, "yearly": true, "never": true,
}

// Sitemap holds the sitemap hints carried by a document.
type Sitemap struct {
	Priority   float64 `json:"priority,omitempty"`
	ChangeFreq string  `json:"changefreq,omitempty"`
	Exclude    bool    `json:"exclude,omitempty"`
}

// Frontmatter is the decoded metadata of one document.
type Frontmatter struct {
	Title     string         `json:"title,omitempty"`
	Author    string         `json:"author,omitempty"`
	Tags      []string       `json:"tags,omitempty"`
	IsPublic  bool           `json:"is_public"`
	Published time.Time      `json:"published,omitzero"`
	Modified  time.Time      `json:"modified,omitzero"`
	Prev      string         `json:"prev,omitempty"`
	Next      string         `json:"next,omitempty"`
	Sitemap   Sitemap        `json:"sitemap,omitzero"`
	Custom    map[string]any `json:"custom,omitempty"`

	// Present reports whether the document had a frontmatter block.
	Present bool `json:"-"`
}

// Options tunes decoding.
type Options struct {
	// DateLayouts are extra Go time layouts tried after the ISO forms.
	DateLayouts []string
}

// Result is a document split into metadata and body.
type Result struct {
	Meta        Frontmatter
	Body        string
	BodyLine    int // line number of the first body line in the source
	Diagnostics []diag.Diagnostic
}

// Parse splits and decodes src. The only error is ErrInvalid.
func Parse(src string, opts Options) (*Result, error) {
	res := &Result{Meta: Frontmatter{IsPublic: true}, Body: src, BodyLine: 1}

	block, body, bodyLine, status := split(src)
	switch status {
	case splitNone:
		return res, nil
	case splitUnterminated:
		res.Diagnostics = append(res.Diagnostics, diag.Warnf(diag.CodeMalformedFront, 1,
			"frontmatter has no closing \"---\" line; treating it as body text"))
		return res, nil
	}

	res.Body = body
	res.BodyLine = bodyLine
	res.Meta.Present = true
	if strings.TrimSpace(block) == "" {
		return res, nil
	}

	m, err := yamlutil.UnmarshalMapping([]byte(block))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	d := decoder{opts: opts, meta: &res.Meta}
	d.decode(m)
	res.Diagnostics = append(res.Diagnostics, d.diags...)
	return res, nil
}

type splitStatus int

const (
	splitNone splitStatus = iota
	splitFound
	splitUnterminated
)

func split(src string) (block, body string, bodyLine int, status splitStatus) {
	first, _, hasNewline := strings.Cut(src, "\n")
	if strings.TrimRight(first, " \t\r") != "---" {
		return "", "", 0, splitNone
	}
	if !hasNewline {
		return "", "", 0, splitUnterminated
	}

	offset := len(first) + 1
	line := 2
	for offset <= len(src) {
		text, _, found := strings.Cut(src[offset:], "\n")
		delim := strings.TrimRight(text, " \t\r")
		if delim == "---" || delim == "..." {
			end := offset + len(text)
			if found {
				end++
			}
			return src[len(first)+1 : offset], src[end:], line + 1, splitFound
		}
		if !found {
			break
		}
		offset += len(text) + 1
		line++
	}
	return "", "", 0, splitUnterminated
}

type decoder struct {
	opts  Options
	meta  *Frontmatter
	diags []diag.Diagnostic
}

func (d *decoder) decode(m map[string]any) {
	reserved := map[string]bool{}
	take := func(key string) (any, bool) {
		reserved[key] = true
		v, ok := m[key]
		return v, ok && v != nil
	}

	if v, ok := take("title"); ok {
		d.meta.Title, _ = asString(v)
	}
	if v, ok := take("author"); ok {
		d.meta.Author, _ = asString(v)
	}
	if v, ok := take("tags"); ok {
		d.meta.Tags = asTags(v)
	}
	if v, ok := take("is_public"); ok {
		if b, valid := asBool(v); valid {
			d.meta.IsPublic = b
		} else {
			d.invalid("is_public", v, "expected a boolean")
		}
	}
	if v, ok := take("prev"); ok {
		d.meta.Prev, _ = asString(v)
	}
	if v, ok := take("next"); ok {
		d.meta.Next, _ = asString(v)
	}

	d.meta.Published = d.firstDate(take, publishedKeys)
	d.meta.Modified = d.firstDate(take, modifiedKeys)

	if v, ok := take("sitemap_priority"); ok {
		if p, valid := asFloat(v); valid && p >= 0 && p <= 1 {
			d.meta.Sitemap.Priority = p
		} else {
			d.invalid("sitemap_priority", v, "expected a number between 0 and 1")
		}
	}
	if v, ok := take("sitemap_changefreq"); ok {
		s, _ := asString(v)
		s = strings.ToLower(s)
		if changeFreqs[s] {
			d.meta.Sitemap.ChangeFreq = s
		} else {
			d.invalid("sitemap_changefreq", v, "expected always, hourly, daily, weekly, monthly, yearly or never")
		}
	}
	if v, ok := take("sitemap_exclude"); ok {
		if b, valid := asBool(v); valid {
			d.meta.Sitemap.Exclude = b
		} else {
			d.invalid("sitemap_exclude", v, "expected a boolean")
		}
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if reserved[k] {
			continue
		}
		if d.meta.Custom == nil {
			d.meta.Custom = make(map[string]any)
		}
		d.meta.Custom[k] = m[k]
	}
}

func (d *decoder) firstDate(take func(string) (any, bool), keys []string) time.Time {
	var result time.Time
	for _, k := range keys {
		v, ok := take(k)
		if !ok || !result.IsZero() {
			continue
		}
		switch t := v.(type) {
		case time.Time:
			result = t
		default:
			s, _ := asString(v)
			parsed, err := dateutil.ParseDate(s, d.opts.DateLayouts...)
			if err != nil {
				d.invalid(k, v, "expected a date such as 2024-03-15")
				continue
			}
			result = parsed
		}
	}
	return result
}

func (d *decoder) invalid(key string, v any, hint string) {
	d.diags = append(d.diags, diag.Warnf(diag.CodeInvalidFrontField, 1,
		"frontmatter field %q has invalid value %v: %s", key, v, hint))
}

func asString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case time.Time:
		return t.Format("2006-01-02"), true
	case nil:
		return "", false
	default:
		return fmt.Sprint(t), true
	}
}

func asBool(v any) (bool, bool) {
	switch t := v.(type) {
	case bool:
		return t, true
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "yes", "on", "1":
			return true, true
		case "false", "no", "off", "0":
			return false, true
		}
	case int, int64, uint64:
		s := fmt.Sprint(t)
		if s == "1" || s == "0" {
			return s == "1", true
		}
	}
	return false, false
}

func asFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int, int64, uint64:
		f, err := strconv.ParseFloat(fmt.Sprint(t), 64)
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	}
	return 0, false
}

func asTags(v any) []string {
	var tags []string
	switch t := v.(type) {
	case []any:
		for _, item := range t {
			if s, ok := asString(item); ok && strings.TrimSpace(s) != "" {
				tags = append(tags, strings.TrimSpace(s))
			}
		}
	default:
		s, _ := asString(v)
		for _, part := range strings.Split(s, ",") {
			if p := strings.TrimSpace(part); p != "" {
				tags = append(tags, p)
			}
		}
	}
	return tags
}
