package placement

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/overlay/internal/geometry"
)

func TestComputeBottomScenario(t *testing.T) {
	anchor := geometry.R(100, 100, 50, 20)
	res := Compute(anchor, geometry.Sz(80, 30), Bottom, 8)

	assert.Equal(t, geometry.Pt(85, 128), res.Origin)
	assert.Equal(t, Bottom, res.Placement)
	assert.Equal(t, Arrow{Edge: SideTop, Align: AlignCentered, Direction: DirectionUp}, res.Arrow)
}

func TestComputeEveryPlacement(t *testing.T) {
	anchor := geometry.R(100, 100, 50, 20)
	floating := geometry.Sz(80, 30)

	tests := []struct {
		placement Placement
		want      geometry.Point
	}{
		{TopLeft, geometry.Pt(100, 62)},
		{Top, geometry.Pt(85, 62)},
		{TopRight, geometry.Pt(70, 62)},
		{BottomLeft, geometry.Pt(100, 128)},
		{Bottom, geometry.Pt(85, 128)},
		{BottomRight, geometry.Pt(70, 128)},
		{LeftTop, geometry.Pt(12, 100)},
		{Left, geometry.Pt(12, 95)},
		{LeftBottom, geometry.Pt(12, 90)},
		{RightTop, geometry.Pt(158, 100)},
		{Right, geometry.Pt(158, 95)},
		{RightBottom, geometry.Pt(158, 90)},
	}

	for _, tt := range tests {
		t.Run(tt.placement.String(), func(t *testing.T) {
			res := Compute(anchor, floating, tt.placement, 8)
			assert.Equal(t, tt.want, res.Origin)
		})
	}
}

func TestPrimaryAxisMovesAwayAsOffsetGrows(t *testing.T) {
	anchor := geometry.R(40, 20, 10, 3)
	floating := geometry.Sz(12, 4)

	for _, p := range All {
		t.Run(p.String(), func(t *testing.T) {
			prevGap := -1e9
			for _, offset := range []float64{-2, 0, 1, 4, 9} {
				box := Compute(anchor, floating, p, offset).Bounds(floating)

				var gap float64
				switch p.Side() {
				case SideTop:
					gap = anchor.Y - box.Bottom()
				case SideBottom:
					gap = box.Y - anchor.Bottom()
				case SideLeft:
					gap = anchor.X - box.Right()
				case SideRight:
					gap = box.X - anchor.Right()
				}

				assert.Equal(t, offset, gap)
				assert.Greater(t, gap, prevGap)
				prevGap = gap
			}
		})
	}
}

func TestArrowPointsTowardAnchor(t *testing.T) {
	want := map[Placement]string{
		TopLeft:     "bottom-leading",
		Top:         "bottom-centered",
		TopRight:    "bottom-trailing",
		LeftTop:     "right-leading",
		Left:        "right-centered",
		LeftBottom:  "right-trailing",
		RightTop:    "left-leading",
		Right:       "left-centered",
		RightBottom: "left-trailing",
		BottomLeft:  "top-leading",
		Bottom:      "top-centered",
		BottomRight: "top-trailing",
	}

	for _, p := range All {
		arrow := Compute(geometry.R(0, 0, 4, 1), geometry.Sz(6, 2), p, 1).Arrow
		assert.Equal(t, want[p], arrow.String(), p.String())
		assert.Equal(t, p.Side().Opposite(), arrow.Edge, "arrow sits on the edge facing the anchor")
		assert.Equal(t, p.Alignment(), arrow.Align)
	}
}

func TestCenteredAlignmentIgnoresFloatingSize(t *testing.T) {
	anchor := geometry.R(31, 7, 13, 5)

	for _, p := range []Placement{Top, Bottom, Left, Right} {
		for _, size := range []geometry.Size{geometry.Sz(3, 1), geometry.Sz(20, 9), geometry.Sz(7.5, 2.5)} {
			box := Compute(anchor, size, p, 2).Bounds(size)
			if p.Side().Vertical() {
				assert.InDelta(t, anchor.Center().X, box.Center().X, 1e-9, p.String())
			} else {
				assert.InDelta(t, anchor.Center().Y, box.Center().Y, 1e-9, p.String())
			}
		}
	}
}

func TestLeadingAndTrailingPinEdges(t *testing.T) {
	anchor := geometry.R(10, 10, 8, 2)
	size := geometry.Sz(20, 3)

	assert.Equal(t, anchor.X, Compute(anchor, size, BottomLeft, 1).Origin.X)
	assert.Equal(t, anchor.Right(), Compute(anchor, size, BottomRight, 1).Bounds(size).Right())
	assert.Equal(t, anchor.Y, Compute(anchor, size, RightTop, 1).Origin.Y)
	assert.Equal(t, anchor.Bottom(), Compute(anchor, size, RightBottom, 1).Bounds(size).Bottom())
}

func TestDegenerateGeometryStillProducesResult(t *testing.T) {
	res := Compute(geometry.R(5, 5, 0, 0), geometry.Sz(-4, 0), Top, 1)
	assert.Equal(t, geometry.Pt(5, 4), res.Origin)
}

func TestInvalidPlacementFallsBackToBottom(t *testing.T) {
	res := Compute(geometry.R(0, 0, 2, 2), geometry.Sz(2, 2), Placement(42), 0)
	assert.Equal(t, Bottom, res.Placement)
}

func TestParseAndText(t *testing.T) {
	for _, p := range All {
		parsed, err := Parse(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}

	p, err := Parse("TopLeft")
	require.NoError(t, err)
	assert.Equal(t, TopLeft, p)

	p, err = Parse(" right_bottom ")
	require.NoError(t, err)
	assert.Equal(t, RightBottom, p)

	_, err = Parse("north")
	require.Error(t, err)

	type doc struct {
		Placement Placement `json:"placement"`
	}
	out, err := json.Marshal(doc{Placement: LeftTop})
	require.NoError(t, err)
	assert.JSONEq(t, `{"placement":"left-top"}`, string(out))

	var in doc
	require.NoError(t, json.Unmarshal([]byte(`{"placement":"bottom-right"}`), &in))
	assert.Equal(t, BottomRight, in.Placement)
}

func TestFlipKeepsAlignment(t *testing.T) {
	assert.Equal(t, BottomLeft, TopLeft.Flip())
	assert.Equal(t, RightBottom, LeftBottom.Flip())
	assert.Equal(t, Top, Bottom.Flip())
	assert.Len(t, Names(), 12)
}

func TestWithoutArrow(t *testing.T) {
	res := WithoutArrow(New(Top, 1)).Compute(geometry.R(0, 10, 4, 1), geometry.Sz(4, 2))
	assert.False(t, res.Arrow.Present())
	assert.Equal(t, geometry.Pt(0, 7), res.Origin)
}
