// Package mount is the shared layer overlays are painted into. Nodes live
// outside the host's layout, so an overlay is never clipped by the element
// it is anchored to, and later reservations always paint above earlier ones.
package mount

import (
	"math"
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/overlay/internal/canvas"
	"github.com/alexisbeaulieu97/overlay/internal/geometry"
	"github.com/alexisbeaulieu97/overlay/internal/placement"
	overlayerrors "github.com/alexisbeaulieu97/overlay/pkg/errors"
)

// Slot is an opaque reservation handle. The zero Slot is never issued.
type Slot struct {
	id uint64
}

// Valid reports whether the slot was issued by a Host.
func (s Slot) Valid() bool { return s.id != 0 }

// Node is the mountable element behind a slot. Its methods are safe for
// concurrent use.
type Node struct {
	mu      sync.RWMutex
	z       uint64
	origin  geometry.Point
	arrow   placement.Arrow
	content string
	visible bool
}

func (n *Node) reset(z uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.z = z
	n.origin = geometry.Point{}
	n.arrow = placement.NoArrow
	n.content = ""
	n.visible = false
}

// SetContent replaces the rendered content.
func (n *Node) SetContent(s string) {
	n.mu.Lock()
	n.content = s
	n.mu.Unlock()
}

// Content returns the rendered content.
func (n *Node) Content() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.content
}

// SetOrigin moves the node. Fractional origins are rounded when painting.
func (n *Node) SetOrigin(p geometry.Point) {
	n.mu.Lock()
	n.origin = p
	n.mu.Unlock()
}

// Origin returns the node position.
func (n *Node) Origin() geometry.Point {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.origin
}

// SetArrow records the arrow variant the content was rendered with.
func (n *Node) SetArrow(a placement.Arrow) {
	n.mu.Lock()
	n.arrow = a
	n.mu.Unlock()
}

// Arrow returns the current arrow variant.
func (n *Node) Arrow() placement.Arrow {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.arrow
}

// SetVisible toggles painting.
func (n *Node) SetVisible(v bool) {
	n.mu.Lock()
	n.visible = v
	n.mu.Unlock()
}

// Visible reports whether the node paints.
func (n *Node) Visible() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.visible
}

// Z returns the stacking order; larger values paint on top.
func (n *Node) Z() uint64 {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.z
}

// Bounds returns the rectangle the content occupies at its origin.
func (n *Node) Bounds() geometry.Rect {
	n.mu.RLock()
	defer n.mu.RUnlock()
	w, h := measure(n.content)
	return geometry.FromOrigin(n.origin, geometry.Sz(float64(w), float64(h)))
}

// Host owns the shared overlay layer.
type Host struct {
	mu    sync.Mutex
	next  uint64
	live  map[uint64]*Node
	spare []*Node
}

// NewHost creates an empty host.
func NewHost() *Host {
	return &Host{live: make(map[uint64]*Node)}
}

var (
	defaultOnce sync.Once
	defaultHost *Host
)

// Default returns the process-wide host, creating it on first use. Facades
// built without an explicit Host share it.
func Default() *Host {
	defaultOnce.Do(func() { defaultHost = NewHost() })
	return defaultHost
}

// Reserve allocates a slot stacked above every slot reserved before it.
// Released nodes are recycled with all of their state cleared.
func (h *Host) Reserve() Slot {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.next++
	id := h.next

	var n *Node
	if last := len(h.spare) - 1; last >= 0 {
		n = h.spare[last]
		h.spare = h.spare[:last]
	} else {
		n = &Node{}
	}
	n.reset(id)
	h.live[id] = n
	return Slot{id: id}
}

// Release returns the slot's node to the host. Unknown and already released
// slots are ignored.
func (h *Host) Release(s Slot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	n, ok := h.live[s.id]
	if !ok {
		return
	}
	delete(h.live, s.id)
	n.SetVisible(false)
	h.spare = append(h.spare, n)
}

// Holds reports whether s is currently reserved.
func (h *Host) Holds(s Slot) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.live[s.id]
	return ok
}

// Lookup returns the node behind s and whether s is still reserved.
func (h *Host) Lookup(s Slot) (*Node, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	n, ok := h.live[s.id]
	return n, ok
}

// ContentsOf returns the node behind s. It panics with a DestroyedError when
// s is not reserved.
func (h *Host) ContentsOf(s Slot) *Node {
	n, ok := h.Lookup(s)
	if !ok {
		panic(overlayerrors.NewDestroyedError("mount", "ContentsOf"))
	}
	return n
}

// Len counts reserved slots.
func (h *Host) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.live)
}

// Nodes returns the reserved nodes in paint order, bottom first.
func (h *Host) Nodes() []*Node {
	h.mu.Lock()
	nodes := make([]*Node, 0, len(h.live))
	for _, n := range h.live {
		nodes = append(nodes, n)
	}
	h.mu.Unlock()
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Z() < nodes[j].Z() })
	return nodes
}

// Compose paints every visible node over base, a frame of the given size.
func (h *Host) Compose(base string, viewport geometry.Size) string {
	c := canvas.FromString(base, int(math.Round(viewport.Width)), int(math.Round(viewport.Height)))
	for _, n := range h.Nodes() {
		n.mu.RLock()
		visible, content := n.visible, n.content
		x, y := n.origin.Round()
		n.mu.RUnlock()
		if !visible || content == "" {
			continue
		}
		c.Draw(x, y, content)
	}
	return c.String()
}

func measure(content string) (int, int) {
	if content == "" {
		return 0, 0
	}
	return lipgloss.Size(content)
}
