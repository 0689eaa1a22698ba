// Package components is the theme-aware lipgloss component set the overlay
// engine renders with.
//
// Themes are immutable and passed explicitly through RenderContext:
//
//	theme := components.DarkTheme()
//	ctx := components.DefaultContext().WithTheme(theme).WithMaxWidth(40)
//	box := components.NewTooltipBox("Save\n\nctrl+s").WithArrow(arrow)
//	out := box.ViewWithContext(ctx)
//
// View() renders with the default theme.
//
// Styling is layered: a Theme holds palette ColourSets, borders and the
// TooltipVars tokens; StyleFuncs read the theme and modify a lipgloss
// style; components combine StyleFuncs through a StyleStrategy. Variants
// (buttons, badges) are looked up in the theme's VariantRegistry, so a
// theme can restyle them without touching components.
//
// Components:
//   - Text: styled text, truncated to MaxWidth
//   - Button: an anchor label with focused and hovered states
//   - Badge: a short status label
//   - Divider: a horizontal rule
//   - TooltipBox: the tooltip surface, optionally with an arrow attached
//     by AttachArrow on the edge facing the anchor
package components
