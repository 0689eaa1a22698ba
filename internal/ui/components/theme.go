package components

import (
	"fmt"
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

// ColourSet is a semantic colour group:
//
//   - Base: the background or brand colour
//   - OnBase: content colour legible on Base
//   - Muted: subdued accents
//   - Contrast: an accent that stands out against Base
//
// All colours adapt to light and dark terminals.
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette describes the semantic colour slots used by components.
type Palette struct {
	Primary ColourSet
	Surface ColourSet
	Info    ColourSet
	Warning ColourSet
	Danger  ColourSet
	Neutral ColourSet
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
}

// TooltipVars are the tooltip's overridable design tokens.
type TooltipVars struct {
	Background lipgloss.AdaptiveColor
	Foreground lipgloss.AdaptiveColor
	Border     lipgloss.AdaptiveColor
	// BorderStyle frames the tooltip box. An empty border draws none.
	BorderStyle lipgloss.Border
	PaddingX    int
}

// ButtonVariant selects a button style from the theme registry.
type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantSecondary
	ButtonVariantMuted
)

// VariantRegistry maps component variants to their styling strategies.
type VariantRegistry struct {
	strategies map[any]StyleStrategy
}

// NewVariantRegistry creates an empty registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{strategies: make(map[any]StyleStrategy)}
}

// Register adds a variant-to-strategy mapping.
func (vr *VariantRegistry) Register(variant any, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get retrieves the strategy for a variant, or nil if not found.
func (vr *VariantRegistry) Get(variant any) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme is an immutable styling theme. Modifiers return new themes.
type Theme struct {
	Palette  Palette
	Borders  BorderSet
	Tooltip  TooltipVars
	Variants *VariantRegistry
}

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// DefaultTheme returns the default theme.
func DefaultTheme() Theme {
	palette := Palette{
		Primary: ColourSet{
			Base:     ac("#3b82f6", "#60a5fa"),
			OnBase:   ac("#f8fafc", "#0b1120"),
			Muted:    ac("#2563eb", "#1d4ed8"),
			Contrast: ac("#facc15", "#ca8a04"),
		},
		Surface: ColourSet{
			Base:     ac("#f9fafb", "#111827"),
			OnBase:   ac("#111827", "#f9fafb"),
			Muted:    ac("#e2e8f0", "#1f2937"),
			Contrast: ac("#3b82f6", "#60a5fa"),
		},
		Info: ColourSet{
			Base:     ac("#06b6d4", "#22d3ee"),
			OnBase:   ac("#083344", "#04121a"),
			Muted:    ac("#0891b2", "#0e7490"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Warning: ColourSet{
			Base:     ac("#eab308", "#facc15"),
			OnBase:   ac("#422006", "#422006"),
			Muted:    ac("#ca8a04", "#a16207"),
			Contrast: ac("#111827", "#111827"),
		},
		Danger: ColourSet{
			Base:     ac("#ef4444", "#f87171"),
			OnBase:   ac("#7f1d1d", "#450a0a"),
			Muted:    ac("#dc2626", "#b91c1c"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Neutral: ColourSet{
			Base:     ac("#64748b", "#94a3b8"),
			OnBase:   ac("#f1f5f9", "#0f172a"),
			Muted:    ac("#475569", "#334155"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
	}

	borders := BorderSet{
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
	}

	theme := Theme{
		Palette: palette,
		Borders: borders,
		Tooltip: TooltipVars{
			Background:  palette.Neutral.Muted,
			Foreground:  palette.Neutral.OnBase,
			Border:      palette.Neutral.Base,
			BorderStyle: borders.Rounded,
			PaddingX:    1,
		},
	}
	theme.Variants = defaultVariants()
	return theme
}

// DarkTheme returns the default theme with darker surfaces.
func DarkTheme() Theme {
	theme := DefaultTheme()
	theme.Palette.Surface = ColourSet{
		Base:     ac("#111827", "#0b1120"),
		OnBase:   ac("#f9fafb", "#e5e7eb"),
		Muted:    ac("#1f2937", "#111827"),
		Contrast: ac("#3b82f6", "#60a5fa"),
	}
	theme.Tooltip.Background = ac("#1f2937", "#0f172a")
	theme.Tooltip.Foreground = ac("#f9fafb", "#e5e7eb")
	theme.Variants = defaultVariants()
	return theme
}

// WithTooltip returns a copy of the theme with tooltip tokens replaced.
func (t Theme) WithTooltip(vars TooltipVars) Theme {
	t.Tooltip = vars
	return t
}

var hexColour = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// IsHexColour reports whether s is a #rgb or #rrggbb colour.
func IsHexColour(s string) bool { return hexColour.MatchString(s) }

// WithTooltipColours overrides tooltip colours with hex values. Empty
// values keep the current colour; the same value is used on light and dark
// terminals.
func (t Theme) WithTooltipColours(background, foreground, border string) (Theme, error) {
	set := func(dst *lipgloss.AdaptiveColor, value, name string) error {
		if value == "" {
			return nil
		}
		if !IsHexColour(value) {
			return fmt.Errorf("tooltip %s: %q is not a hex colour", name, value)
		}
		*dst = ac(value, value)
		return nil
	}
	vars := t.Tooltip
	if err := set(&vars.Background, background, "background"); err != nil {
		return t, err
	}
	if err := set(&vars.Foreground, foreground, "foreground"); err != nil {
		return t, err
	}
	if err := set(&vars.Border, border, "border"); err != nil {
		return t, err
	}
	return t.WithTooltip(vars), nil
}

// BorderStyle resolves a configured border name.
func (t Theme) BorderStyle(name string) (lipgloss.Border, bool) {
	switch name {
	case "", "rounded":
		return t.Borders.Rounded, true
	case "normal":
		return t.Borders.Normal, true
	case "thick":
		return t.Borders.Thick, true
	case "none":
		return lipgloss.Border{}, true
	default:
		return lipgloss.Border{}, false
	}
}

func defaultVariants() *VariantRegistry {
	registry := NewVariantRegistry()
	registerButtonVariants(registry)
	registerBadgeVariants(registry)
	return registry
}

func registerBadgeVariants(registry *VariantRegistry) {
	registry.Register(BadgeClosed, NewCompositeStrategy(Foreground(PaletteNeutral)))
	registry.Register(BadgePending, NewCompositeStrategy(Foreground(PaletteWarning), Bold()))
	registry.Register(BadgeOpen, NewCompositeStrategy(Foreground(PaletteInfo), Bold()))
	registry.Register(BadgeViewport, NewCompositeStrategy(Foreground(PalettePrimary)))
}

func registerButtonVariants(registry *VariantRegistry) {
	registry.Register(ButtonVariantPrimary, NewCompositeStrategy(Background(PalettePrimary), PaddingX(1)))
	registry.Register(ButtonVariantSecondary, NewCompositeStrategy(Background(PaletteInfo), PaddingX(1)))
	registry.Register(ButtonVariantMuted, NewCompositeStrategy(Background(PaletteNeutral), PaddingX(1)))
}

// PaletteSlot selects a semantic colour slot from a Palette.
type PaletteSlot func(Palette) ColourSet

// Predefined palette slots for use with Background and Foreground.
var (
	PalettePrimary PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSurface PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteInfo    PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteWarning PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger  PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteNeutral PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// Background applies a slot's base colour with its matching foreground.
//
// Example:
//
//	style := Background(PalettePrimary)(lipgloss.NewStyle(), theme)
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a slot's base colour as the text colour.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// Bold makes text bold.
func Bold() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style { return base.Bold(true) }
}

// Faint dims text.
func Faint() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style { return base.Faint(true) }
}

// PaddingX pads left and right by n cells.
func PaddingX(n int) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.PaddingLeft(n).PaddingRight(n)
	}
}

// TooltipSurface applies the tooltip tokens: colours, border and padding.
func TooltipSurface() StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		vars := theme.Tooltip
		style := base.
			Background(vars.Background).
			Foreground(vars.Foreground).
			PaddingLeft(vars.PaddingX).
			PaddingRight(vars.PaddingX)
		if vars.BorderStyle != (lipgloss.Border{}) {
			style = style.
				Border(vars.BorderStyle).
				BorderForeground(vars.Border).
				BorderBackground(vars.Background)
		}
		return style
	}
}
