package playground

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/overlay/internal/canvas"
	"github.com/alexisbeaulieu97/overlay/internal/controller"
	"github.com/alexisbeaulieu97/overlay/internal/ui/components"
)

// View renders the buttons and paints the visible tooltips over them.
func (m Model) View() string {
	w, h := m.Size()
	if w == 0 || h == 0 {
		return "Initializing..."
	}

	c := canvas.New(w, h)
	c.Draw(1, 0, m.renderHeader(w-2))
	line := m.ctx.WithMaxWidth(max(0, w-2))
	if m.errorMsg != "" {
		c.Draw(1, 1, components.ErrorText(m.errorMsg).ViewWithContext(line))
	} else if m.status != "" {
		c.Draw(1, 1, components.Muted(m.status).ViewWithContext(line))
	}

	for _, a := range m.anchors {
		x, y := a.el.Bounds().Origin().Round()
		c.Draw(x, y, m.renderButton(a))
	}

	footer := m.renderFooter()
	c.Draw(1, h-lipgloss.Height(footer), footer)

	return m.mounts.Compose(c.String(), m.screen.size())
}

func (m Model) renderHeader(width int) string {
	const title = "overlay playground"
	header := components.Title(title).ViewWithContext(m.ctx)
	if m.configPath != "" {
		rest := m.ctx.WithMaxWidth(max(1, width-len(title)-2))
		header += "  " + components.Muted(m.configPath).ViewWithContext(rest)
	}
	return header
}

func (m Model) renderButton(a *anchor) string {
	pointer, inside := m.doc.Pointer()
	hovered := inside && a.el.Bounds().Contains(pointer)
	return a.button.
		WithFocused(m.doc.Focused() == a.el).
		WithHovered(hovered).
		ViewWithContext(m.ctx)
}

func (m Model) renderFooter() string {
	parts := []string{components.NewViewportBadge(m.screen.width).ViewWithContext(m.ctx)}
	if a := m.focused(); a != nil {
		state := a.tip.State()
		badge := components.NewStateBadge(a.cfg.ID, state)
		if state == controller.Open && a.tip.Visible() {
			badge.Append(a.tip.Placement().String())
		}
		parts = append(parts, badge.ViewWithContext(m.ctx))
	}

	rule := components.NewDivider().WithAppliers(components.Faint()).ViewWithContext(m.ctx.WithMaxWidth(max(0, m.screen.width-2)))
	line := strings.Join(parts, "  ")
	return lipgloss.JoinVertical(lipgloss.Left, rule, line, m.help.View(m.keys))
}
