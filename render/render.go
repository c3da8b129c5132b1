package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/arrowpoly/ring"
)

// Palette.
var (
	ColorClassical = lipgloss.Color("#2CD7C7")
	ColorVirtual   = lipgloss.Color("#F4D03F")
	ColorMuted     = lipgloss.Color("#2C4A54")
)

// Styles are the lipgloss styles used when colouring is enabled.
var Styles = struct {
	Classical lipgloss.Style
	Virtual   lipgloss.Style
	Muted     lipgloss.Style
}{
	Classical: lipgloss.NewStyle().Bold(true).Foreground(ColorClassical),
	Virtual:   lipgloss.NewStyle().Bold(true).Foreground(ColorVirtual),
	Muted:     lipgloss.NewStyle().Foreground(ColorMuted),
}

// Plain renders p in ASCII notation.
func Plain(p ring.Poly) string { return p.Format(ring.PlainNotation) }

// Pretty renders p with superscript exponents and subscript indices.
func Pretty(p ring.Poly) string { return p.Format(ring.UnicodeNotation) }

// Options configures a Renderer.
type Options struct {
	Unicode bool
	Color   bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Unicode notation without colour.
func DefaultOptions() Options {
	return Options{Unicode: true}
}

// WithUnicode selects Pretty (true) or Plain (false) notation.
func WithUnicode(on bool) Option {
	return func(o *Options) { o.Unicode = on }
}

// WithColor enables lipgloss styling.
func WithColor(on bool) Option {
	return func(o *Options) { o.Color = on }
}

// Renderer formats polynomials according to its Options.
type Renderer struct {
	opts Options
}

// NewRenderer applies opts over DefaultOptions.
func NewRenderer(opts ...Option) *Renderer {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Renderer{opts: o}
}

// Render formats p.
func (r *Renderer) Render(p ring.Poly) string {
	s := Plain(p)
	if r.opts.Unicode {
		s = Pretty(p)
	}
	if !r.opts.Color {
		return s
	}
	if p.HasK() {
		return Styles.Virtual.Render(s)
	}

	return Styles.Classical.Render(s)
}

// Hint formats secondary text such as prompts, muted when colouring.
func (r *Renderer) Hint(s string) string {
	if !r.opts.Color {
		return s
	}

	return Styles.Muted.Render(s)
}
