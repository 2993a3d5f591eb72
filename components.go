package spellbook

import (
	"fmt"
	"html/template"
	"math"
	"strconv"
	"strings"

	"github.com/alnah/go-spellbook/internal/attrs"
	"github.com/alnah/go-spellbook/internal/registry"
)

// Alert types accepted by the alert component.
const (
	AlertInfo      = "info"
	AlertWarning   = "warning"
	AlertSuccess   = "success"
	AlertDanger    = "danger"
	AlertPrimary   = "primary"
	AlertSecondary = "secondary"
)

// Hero layouts. Unknown layouts fall back to HeroTextLeftImageRight.
const (
	HeroTextLeftImageRight    = "text_left_image_right"
	HeroTextCenterImageBehind = "text_center_image_background"
	HeroTextOnlyCentered      = "text_only_centered"
	HeroTextRightImageLeft    = "text_right_image_left"
	HeroImageTopTextBottom    = "image_top_text_bottom"
	HeroImageOnlyFull         = "image_only_full"
)

// Progress defaults.
const (
	defaultProgressMax   = 100.0
	defaultProgressColor = "primary"
)

// componentData builds the template data of a built-in component from its
// attributes and rendered content.
type componentData func(a attrs.Set, content template.HTML) any

// builtins maps each built-in component to its data builder. Templates are
// loaded by name from a TemplateLoader.
var builtins = map[string]componentData{
	"alert":     alertData,
	"card":      cardData,
	"quote":     quoteData,
	"accordion": accordionData,
	"progress":  progressData,
	"button":    buttonData,
	"practice":  practiceData,
	"hero":      heroData,
}

// templateComponent renders an html/template with data built from the block.
type templateComponent struct {
	tmpl *template.Template
	data componentData
}

var _ Component = (*templateComponent)(nil)

func (c *templateComponent) Render(a attrs.Set, content string) (string, error) {
	var buf strings.Builder
	if err := c.tmpl.Execute(&buf, c.data(a, template.HTML(content))); err != nil { // #nosec G203 -- rendered markdown
		return "", err
	}
	return buf.String(), nil
}

// registerBuiltins parses every built-in template from loader and registers
// the components into reg, replacing existing entries of the same name.
func registerBuiltins(reg *registry.Registry, loader TemplateLoader) error {
	for _, name := range BuiltinComponents() {
		data, ok := builtins[name]
		if !ok {
			return fmt.Errorf("%w: no data builder for %q", ErrInternal, name)
		}
		src, err := loader.LoadTemplate(name)
		if err != nil {
			return fmt.Errorf("loading %s template: %w", name, err)
		}
		tmpl, err := template.New(name).Parse(src)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrTemplateParse, name, err)
		}
		if err := reg.Register(name, &templateComponent{tmpl: tmpl, data: data}, registry.ModeMarkdown); err != nil {
			return err
		}
	}
	return nil
}

// common holds the fields every built-in template accepts.
type common struct {
	Class   string
	ID      string
	Content template.HTML
}

func commonData(a attrs.Set, content template.HTML) common {
	return common{
		Class:   a.Value("class", ""),
		ID:      a.Value("id", ""),
		Content: content,
	}
}

type alertView struct {
	common
	Type string
}

// alertData falls back to "info" for unknown types.
func alertData(a attrs.Set, content template.HTML) any {
	t := strings.ToLower(a.Value("type", AlertInfo))
	switch t {
	case AlertInfo, AlertWarning, AlertSuccess, AlertDanger, AlertPrimary, AlertSecondary:
	default:
		t = AlertInfo
	}
	return alertView{common: commonData(a, content), Type: t}
}

type cardView struct {
	common
	Title  string
	Footer string
}

func cardData(a attrs.Set, content template.HTML) any {
	return cardView{
		common: commonData(a, content),
		Title:  a.Value("title", ""),
		Footer: a.Value("footer", ""),
	}
}

type quoteView struct {
	common
	Author string
	Source string
	Image  string
}

func quoteData(a attrs.Set, content template.HTML) any {
	return quoteView{
		common: commonData(a, content),
		Author: a.Value("author", ""),
		Source: a.Value("source", ""),
		Image:  a.Value("image", ""),
	}
}

type accordionView struct {
	common
	Title string
	Open  bool
}

func accordionData(a attrs.Set, content template.HTML) any {
	return accordionView{
		common: commonData(a, content),
		Title:  a.Value("title", ""),
		Open:   a.Bool("open"),
	}
}

type progressView struct {
	common
	Value          float64
	Max            float64
	Percentage     float64
	Label          string
	ShowPercentage bool
	Color          string
	Striped        bool
	Animated       bool
}

// progressData clamps the value into [0, max_value]. Invalid numbers fall
// back to 0 and 100; the label may reference {{value}}, {{max_value}} and
// {{percentage}}.
func progressData(a attrs.Set, content template.HTML) any {
	value, err := strconv.ParseFloat(a.Value("value", "0"), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		value = 0
	}
	maxValue, err := strconv.ParseFloat(a.Value("max_value", "100"), 64)
	if err != nil || maxValue <= 0 || math.IsNaN(maxValue) || math.IsInf(maxValue, 0) {
		maxValue = defaultProgressMax
	}

	clamped := math.Max(0, math.Min(value, maxValue))
	percentage := math.Round(clamped/maxValue*100*100) / 100

	label, hasLabel := a.Get("label")
	showPercentage := !hasLabel
	if a.Has("show_percentage") {
		showPercentage = a.Bool("show_percentage")
	}
	if hasLabel {
		label = strings.NewReplacer(
			"{{value}}", formatNumber(value),
			"{{max_value}}", formatNumber(maxValue),
			"{{percentage}}", formatNumber(percentage),
		).Replace(label)
	}

	return progressView{
		common:         commonData(a, content),
		Value:          value,
		Max:            maxValue,
		Percentage:     percentage,
		Label:          label,
		ShowPercentage: showPercentage,
		Color:          a.Value("color", defaultProgressColor),
		Striped:        a.Bool("striped"),
		Animated:       a.Bool("animated"),
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

type buttonView struct {
	common
	Type   string
	Href   string
	Target string
}

// buttonData renders inline: a lone paragraph around the label is dropped.
func buttonData(a attrs.Set, content template.HTML) any {
	v := buttonView{
		common: commonData(a, content),
		Type:   a.Value("type", "primary"),
		Href:   a.Value("href", "#"),
		Target: a.Value("target", ""),
	}
	v.Content = template.HTML(inlineContent(string(content))) // #nosec G203 -- rendered markdown
	return v
}

// inlineContent strips a single <p> wrapper from converted markdown.
func inlineContent(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "<p>") && strings.HasSuffix(s, "</p>") && strings.Count(s, "<p>") == 1 {
		return s[len("<p>") : len(s)-len("</p>")]
	}
	return s
}

type practiceView struct {
	common
	Difficulty string
	Timeframe  string
	Impact     string
	Focus      string
}

func practiceData(a attrs.Set, content template.HTML) any {
	return practiceView{
		common:     commonData(a, content),
		Difficulty: a.Value("difficulty", "Moderate"),
		Timeframe:  a.Value("timeframe", "Varies"),
		Impact:     a.Value("impact", "Medium"),
		Focus:      a.Value("focus", "General"),
	}
}

type heroView struct {
	common
	Layout      string
	LayoutClass string
	AlignClass  string
	ImageSrc    string
	ImageAlt    string
	BgColor     string
	TextColor   string
	TextBgColor string
	MinHeight   string
	ShowImage   bool
	ShowText    bool
}

// heroAlign maps content_align_vertical to its flex alignment class.
var heroAlign = map[string]string{
	"top":    "sb-items-start",
	"center": "sb-items-center",
	"bottom": "sb-items-end",
}

// heroData resolves the layout and alignment classes of a hero block. An
// image is shown only when image_src is set and the layout has room for it.
func heroData(a attrs.Set, content template.HTML) any {
	layout := strings.ToLower(a.Value("layout", HeroTextLeftImageRight))
	switch layout {
	case HeroTextLeftImageRight, HeroTextCenterImageBehind, HeroTextOnlyCentered,
		HeroTextRightImageLeft, HeroImageTopTextBottom, HeroImageOnlyFull:
	default:
		layout = HeroTextLeftImageRight
	}

	align, ok := heroAlign[strings.ToLower(a.Value("content_align_vertical", "center"))]
	if !ok {
		align = heroAlign["center"]
	}

	src := a.Value("image_src", "")
	return heroView{
		common:      commonData(a, content),
		Layout:      layout,
		LayoutClass: "sb-hero-layout--" + strings.ReplaceAll(layout, "_", "-"),
		AlignClass:  align,
		ImageSrc:    src,
		ImageAlt:    a.Value("image_alt", ""),
		BgColor:     a.Value("bg_color", ""),
		TextColor:   a.Value("text_color", "white"),
		TextBgColor: a.Value("text_bg_color", "black-25"),
		MinHeight:   a.Value("min_height", "auto"),
		ShowImage:   src != "" && layout != HeroTextOnlyCentered,
		ShowText:    layout != HeroImageOnlyFull,
	}
}
