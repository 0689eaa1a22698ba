package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/overlay/internal/geometry"
)

func newToolbarDoc() (*Document, *Element, *Element, *Element) {
	doc := NewDocument()
	toolbar := NewElement("div", "toolbar", "bar")
	save := NewElement("button", "save", "primary").SetBounds(geometry.R(2, 1, 6, 1)).SetFocusable(true)
	open := NewElement("button", "open").SetBounds(geometry.R(10, 1, 6, 1)).SetFocusable(true)
	toolbar.AddChild(save, open)
	toolbar.SetBounds(geometry.R(0, 0, 40, 3))
	doc.Append(toolbar)
	return doc, toolbar, save, open
}

func TestTreeAttachmentFollowsParent(t *testing.T) {
	doc, toolbar, save, _ := newToolbarDoc()

	assert.True(t, save.Attached())
	assert.Same(t, doc, save.Document())
	assert.Equal(t, "body/toolbar/save", save.Path())

	require.True(t, toolbar.RemoveChild(save))
	assert.False(t, save.Attached())
	assert.Nil(t, save.Parent())
	assert.False(t, toolbar.RemoveChild(save))
}

func TestPreviousSibling(t *testing.T) {
	_, toolbar, save, open := newToolbarDoc()

	assert.Same(t, save, open.PreviousSibling())
	assert.Nil(t, save.PreviousSibling())
	assert.Nil(t, toolbar.Parent().PreviousSibling())
}

func TestElementAtPrefersDeepestLastPainted(t *testing.T) {
	doc, toolbar, save, _ := newToolbarDoc()

	assert.Same(t, save, doc.ElementAt(geometry.Pt(3, 1)))
	assert.Same(t, toolbar, doc.ElementAt(geometry.Pt(30, 2)))
	assert.Nil(t, doc.ElementAt(geometry.Pt(50, 50)))
}

func TestDispatchTracksPointerAndFocus(t *testing.T) {
	doc, _, save, open := newToolbarDoc()

	_, inside := doc.Pointer()
	assert.False(t, inside)

	ev := doc.Dispatch(PointerMove(11, 1))
	assert.Same(t, open, ev.Target)
	p, inside := doc.Pointer()
	assert.True(t, inside)
	assert.Equal(t, geometry.Pt(11, 1), p)

	doc.Dispatch(PointerLeave())
	_, inside = doc.Pointer()
	assert.False(t, inside)

	doc.Dispatch(FocusOn(save))
	assert.Same(t, save, doc.Focused())
	doc.Dispatch(FocusOn(nil))
	assert.Nil(t, doc.Focused())
}

func TestRemovingFocusedElementBlurs(t *testing.T) {
	doc, toolbar, save, _ := newToolbarDoc()
	doc.Focus(save)

	toolbar.RemoveChild(save)
	assert.Nil(t, doc.Focused())
}

func TestFocusNextWraps(t *testing.T) {
	doc, _, save, open := newToolbarDoc()

	assert.Same(t, save, doc.FocusNext(1))
	assert.Same(t, open, doc.FocusNext(1))
	assert.Same(t, save, doc.FocusNext(1))
	assert.Same(t, open, doc.FocusNext(-1))
	assert.Same(t, save, doc.FocusNext(-1))
}

func TestSelectors(t *testing.T) {
	doc, toolbar, save, open := newToolbarDoc()

	tests := []struct {
		selector string
		want     *Element
	}{
		{"#save", save},
		{"button", save},
		{"button#open", open},
		{".bar", toolbar},
		{"button.primary", save},
		{"div.primary", nil},
		{"path:toolbar/open", open},
		{"path:**/save", save},
		{"path:toolbar/*", save},
		{"#missing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			assert.Same(t, tt.want, doc.Query(tt.selector))
		})
	}

	assert.Len(t, doc.QueryAll("button"), 2)
}

func TestInvalidSelectors(t *testing.T) {
	for _, raw := range []string{"", "#", "a#b#c", "div > span", "path:", "path:[", "*"} {
		_, err := ParseSelector(raw)
		assert.Error(t, err, raw)
	}

	doc, _, _, _ := newToolbarDoc()
	assert.Nil(t, doc.Query("div > span"))
}

func TestRegions(t *testing.T) {
	doc, toolbar, save, open := newToolbarDoc()

	anchor := ElementRegion(func() *Element { return toolbar })
	assert.True(t, anchor.ContainsPoint(geometry.Pt(1, 1)))
	assert.True(t, anchor.ContainsElement(save))
	assert.False(t, ElementRegion(func() *Element { return save }).ContainsElement(open))
	assert.False(t, ElementRegion(func() *Element { return nil }).ContainsPoint(geometry.Pt(0, 0)))

	box := RectRegion(func() (geometry.Rect, bool) { return geometry.R(20, 5, 4, 2), true })
	assert.True(t, box.ContainsPoint(geometry.Pt(21, 6)))
	assert.False(t, box.ContainsElement(save))

	hidden := RectRegion(func() (geometry.Rect, bool) { return geometry.R(20, 5, 4, 2), false })
	assert.False(t, hidden.ContainsPoint(geometry.Pt(21, 6)))

	toolbar.RemoveChild(save)
	assert.False(t, ElementRegion(func() *Element { return save }).ContainsPoint(geometry.Pt(3, 1)), "detached elements have no area")
	_ = doc
}

func TestRef(t *testing.T) {
	el := NewElement("span", "a")
	ref := NewRef(nil)
	assert.Nil(t, ref.El())
	ref.Set(el)
	assert.Same(t, el, ref.El())
}
