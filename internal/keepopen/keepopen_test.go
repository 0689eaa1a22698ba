package keepopen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/overlay/internal/geometry"
	"github.com/alexisbeaulieu97/overlay/internal/host"
)

type fixture struct {
	doc      *host.Document
	anchor   *host.Element
	other    *host.Element
	surfaces Surfaces
}

func newFixture() fixture {
	doc := host.NewDocument()
	anchor := host.NewElement("button", "anchor").SetBounds(geometry.R(0, 0, 10, 1)).SetFocusable(true)
	other := host.NewElement("button", "other").SetBounds(geometry.R(0, 10, 10, 1)).SetFocusable(true)
	doc.Append(anchor, other)

	box := host.RectRegion(func() (geometry.Rect, bool) { return geometry.R(0, 2, 20, 4), true })
	return fixture{
		doc:    doc,
		anchor: anchor,
		other:  other,
		surfaces: Surfaces{
			Anchor:   host.ElementRegion(func() *host.Element { return anchor }),
			Floating: box,
			Tracker:  doc,
		},
	}
}

func TestNeverAndManual(t *testing.T) {
	assert.False(t, Never().ShouldStayOpen())

	vote := true
	p := Manual(func() bool { return vote })
	assert.True(t, p.ShouldStayOpen())
	vote = false
	assert.False(t, p.ShouldStayOpen())
	assert.False(t, Manual(nil).ShouldStayOpen())
}

func TestHoverStrategy(t *testing.T) {
	f := newFixture()
	p := HoverStrategy()(f.surfaces)

	assert.False(t, p.ShouldStayOpen(), "no pointer yet")

	f.doc.Dispatch(host.PointerMove(3, 0))
	assert.True(t, p.ShouldStayOpen(), "over anchor")

	f.doc.Dispatch(host.PointerMove(15, 4))
	assert.True(t, p.ShouldStayOpen(), "over floating box")

	f.doc.Dispatch(host.PointerMove(15, 8))
	assert.False(t, p.ShouldStayOpen())

	f.doc.Dispatch(host.PointerMove(3, 0))
	f.doc.Dispatch(host.PointerLeave())
	assert.False(t, p.ShouldStayOpen())
}

func TestFocusStrategy(t *testing.T) {
	f := newFixture()
	p := FocusStrategy()(f.surfaces)

	assert.False(t, p.ShouldStayOpen())
	f.doc.Focus(f.anchor)
	assert.True(t, p.ShouldStayOpen())
	f.doc.Focus(f.other)
	assert.False(t, p.ShouldStayOpen())
}

func TestExtraRegionsAndAny(t *testing.T) {
	f := newFixture()
	f.surfaces.Extra = []host.Region{host.ElementRegion(func() *host.Element { return f.other })}

	p := HoverOrFocusStrategy()(f.surfaces)
	f.doc.Focus(f.other)
	assert.True(t, p.ShouldStayOpen())

	f.doc.Focus(nil)
	f.doc.Dispatch(host.PointerMove(2, 10))
	assert.True(t, p.ShouldStayOpen())

	assert.True(t, Any(Never(), nil, Manual(func() bool { return true })).ShouldStayOpen())
	assert.False(t, Any().ShouldStayOpen())
}

func TestKinds(t *testing.T) {
	k, err := ParseKind(" Hover-Or-Focus ")
	require.NoError(t, err)
	assert.Equal(t, KindHoverOrFocus, k)

	k, err = ParseKind("")
	require.NoError(t, err)
	assert.Equal(t, KindNever, k)

	_, err = ParseKind("sometimes")
	assert.Error(t, err)

	f := newFixture()
	f.doc.Focus(f.anchor)
	assert.True(t, KindFocus.Strategy()(f.surfaces).ShouldStayOpen())
	assert.False(t, Kind("bogus").Strategy()(f.surfaces).ShouldStayOpen())
}

func TestNilTrackerNeverVotes(t *testing.T) {
	assert.False(t, OnHover(nil).ShouldStayOpen())
	assert.False(t, OnFocus(nil).ShouldStayOpen())
}
