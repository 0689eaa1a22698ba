package components

import (
	"github.com/charmbracelet/x/ansi"
)

// Tone picks how a Text line reads against the frame.
type Tone int

const (
	TonePlain Tone = iota
	// ToneTitle is the bold primary heading.
	ToneTitle
	// ToneMuted is secondary information such as file paths and hints.
	ToneMuted
	// ToneError is a failure banner.
	ToneError
)

// Text is a single styled line. It never wraps: when the render context has
// a MaxWidth the line is cut short with an ellipsis so it stays on its row.
type Text struct {
	BaseComponent
	content string
	tone    Tone
}

// NewText creates plain text.
func NewText(content string) *Text {
	return &Text{BaseComponent: NewBaseComponent(), content: content}
}

// Title creates a ToneTitle line.
func Title(content string) *Text { return NewText(content).WithTone(ToneTitle) }

// Muted creates a ToneMuted line.
func Muted(content string) *Text { return NewText(content).WithTone(ToneMuted) }

// ErrorText creates a ToneError line.
func ErrorText(content string) *Text { return NewText(content).WithTone(ToneError) }

// WithTone sets the tone.
func (t *Text) WithTone(tone Tone) *Text {
	t.tone = tone
	t.SetAppliers(toneAppliers(tone)...)
	return t
}

// View renders with the default theme.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the line, truncated to ctx.MaxWidth.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	content := t.content
	if ctx.MaxWidth > 0 && ansi.StringWidth(content) > ctx.MaxWidth {
		content = ansi.Truncate(content, ctx.MaxWidth, "…")
	}
	return t.ComputeStyle(ctx.Theme).Render(content)
}

// Content returns the untruncated text.
func (t *Text) Content() string {
	return t.content
}

func toneAppliers(tone Tone) []StyleFunc {
	switch tone {
	case ToneTitle:
		return []StyleFunc{Foreground(PalettePrimary), Bold()}
	case ToneMuted:
		return []StyleFunc{Foreground(PaletteNeutral), Faint()}
	case ToneError:
		return []StyleFunc{Foreground(PaletteDanger), Bold()}
	default:
		return nil
	}
}
