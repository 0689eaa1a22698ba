package popup

import (
	"github.com/alexisbeaulieu97/overlay/internal/geometry"
	"github.com/alexisbeaulieu97/overlay/internal/mount"
	"github.com/alexisbeaulieu97/overlay/internal/placement"
)

// NodeView reads a popover's mounted node through its slot. Every accessor
// returns the zero value once the slot is no longer reserved.
type NodeView struct {
	host *mount.Host
	slot mount.Slot
}

func (v *NodeView) node() *mount.Node {
	if v == nil {
		return nil
	}
	n, ok := v.host.Lookup(v.slot)
	if !ok {
		return nil
	}
	return n
}

// Live reports whether the slot is still reserved.
func (v *NodeView) Live() bool { return v.node() != nil }

func (v *NodeView) Content() string {
	if n := v.node(); n != nil {
		return n.Content()
	}
	return ""
}

func (v *NodeView) Origin() geometry.Point {
	if n := v.node(); n != nil {
		return n.Origin()
	}
	return geometry.Point{}
}

func (v *NodeView) Arrow() placement.Arrow {
	if n := v.node(); n != nil {
		return n.Arrow()
	}
	return placement.NoArrow
}

func (v *NodeView) Visible() bool {
	n := v.node()
	return n != nil && n.Visible()
}

func (v *NodeView) Z() uint64 {
	if n := v.node(); n != nil {
		return n.Z()
	}
	return 0
}

func (v *NodeView) Bounds() geometry.Rect {
	if n := v.node(); n != nil {
		return n.Bounds()
	}
	return geometry.Rect{}
}
