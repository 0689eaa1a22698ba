package playground

import (
	"github.com/alexisbeaulieu97/overlay/internal/geometry"
	"github.com/alexisbeaulieu97/overlay/internal/host"
)

const (
	headerRows = 2
	footerRows = 4
	buttonGap  = 6
	rowGap     = 5
)

type buttonRow struct {
	items []*anchor
	width int
}

// layout flows the buttons into centered rows, leaving room between rows
// for tooltips.
func (m *Model) layout() {
	w, h := m.screen.width, m.screen.height

	var rows []buttonRow
	var cur buttonRow
	for _, a := range m.anchors {
		bw := a.button.Width(m.ctx)
		need := bw
		if len(cur.items) > 0 {
			need += buttonGap
			if cur.width+need > w-2 {
				rows = append(rows, cur)
				cur = buttonRow{}
				need = bw
			}
		}
		cur.items = append(cur.items, a)
		cur.width += need
	}
	if len(cur.items) > 0 {
		rows = append(rows, cur)
	}

	area := h - headerRows - footerRows
	if area < 1 {
		area = 1
	}
	m.bar.SetBounds(geometry.R(0, headerRows, float64(w), float64(area)))
	if len(rows) == 0 {
		return
	}

	span := len(rows) + (len(rows)-1)*rowGap
	top := headerRows + max(0, (area-span)/2)
	for i, row := range rows {
		y := top + i*(rowGap+1)
		x := max(0, (w-row.width)/2)
		for _, a := range row.items {
			bw := a.button.Width(m.ctx)
			a.el.SetBounds(geometry.R(float64(x), float64(y), float64(bw), 1))
			x += bw + buttonGap
		}
	}
}

// broadcast records ev on the document and hands it to every tooltip.
func (m *Model) broadcast(ev host.Event) {
	ev = m.doc.Dispatch(ev)
	for _, a := range m.anchors {
		a.tip.HandleEvent(ev)
	}
}

func (m *Model) focused() *anchor {
	el := m.doc.Focused()
	if el == nil {
		return nil
	}
	for _, a := range m.anchors {
		if a.el == el {
			return a
		}
	}
	return nil
}
