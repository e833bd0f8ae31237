package scene

import (
	"slices"

	"github.com/grindlemire/go-anchor/pkg/geom"
	"github.com/grindlemire/go-anchor/pkg/host"
	"github.com/mattn/go-runewidth"
)

// Node is a box in the scene tree.
type Node struct {
	name     string
	parent   *Node
	children []*Node

	bounds  geom.Rect // Relative to the parent's scrolled content origin
	scrollX float64
	scrollY float64
	clip    bool
	root    bool

	listeners map[uint64]func()
	nextID    uint64
}

// Option configures a Node at construction.
type Option func(*Node)

// WithName sets a name used in debug output.
func WithName(name string) Option {
	return func(n *Node) {
		n.name = name
	}
}

// WithRect sets the node's bounds relative to its parent.
func WithRect(x, y, width, height float64) Option {
	return func(n *Node) {
		n.bounds = geom.NewRect(x, y, width, height)
	}
}

// WithClip makes the node clip its descendants, like overflow: hidden or a
// scroll container.
func WithClip() Option {
	return func(n *Node) {
		n.clip = true
	}
}

// New creates a detached node.
func New(opts ...Option) *Node {
	n := &Node{}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// NewRoot creates the root of a scene. The root is always connected, clips
// its content, and doubles as the viewport.
func NewRoot(width, height float64) *Node {
	return &Node{
		name:   "root",
		bounds: geom.NewRect(0, 0, width, height),
		clip:   true,
		root:   true,
	}
}

// Label creates a one-row node sized to the display width of text in
// terminal cells.
func Label(text string, opts ...Option) *Node {
	n := New(append([]Option{WithName(text)}, opts...)...)
	n.bounds.Width = float64(runewidth.StringWidth(text))
	n.bounds.Height = 1
	return n
}

// Name returns the node's name.
func (n *Node) Name() string {
	return n.name
}

// AddChild appends children to this node and notifies the moved subtrees.
func (n *Node) AddChild(children ...*Node) {
	for _, child := range children {
		if child.parent != nil {
			child.parent.RemoveChild(child)
		}
		child.parent = n
		n.children = append(n.children, child)
		child.notifyTree()
	}
}

// RemoveChild detaches a child. Returns true if the child was found.
func (n *Node) RemoveChild(child *Node) bool {
	i := slices.Index(n.children, child)
	if i < 0 {
		return false
	}
	n.children = slices.Delete(n.children, i, i+1)
	child.parent = nil
	child.notifyTree()
	return true
}

// Children returns the child nodes.
func (n *Node) Children() []*Node {
	return n.children
}

// Parent returns the parent node, or nil if this is a root or detached.
func (n *Node) Parent() *Node {
	return n.parent
}

// Rect returns the node's bounds relative to its parent. For the root this
// is the viewport.
func (n *Node) Rect() geom.Rect {
	return n.bounds
}

// SetRect replaces the node's bounds.
func (n *Node) SetRect(r geom.Rect) {
	if n.bounds == r {
		return
	}
	n.bounds = r
	n.notifyTree()
}

// MoveTo sets the node's position relative to its parent.
func (n *Node) MoveTo(x, y float64) {
	n.SetRect(n.bounds.MoveTo(geom.Point{X: x, Y: y}))
}

// MoveBy shifts the node by (dx, dy).
func (n *Node) MoveBy(dx, dy float64) {
	n.SetRect(n.bounds.Translate(dx, dy))
}

// Resize sets the node's size.
func (n *Node) Resize(width, height float64) {
	n.SetRect(geom.NewRect(n.bounds.X, n.bounds.Y, width, height))
}

// Scroll returns the node's scroll offset.
func (n *Node) Scroll() (x, y float64) {
	return n.scrollX, n.scrollY
}

// ScrollTo sets the scroll offset. Offsets are not clamped to the content.
func (n *Node) ScrollTo(x, y float64) {
	if n.scrollX == x && n.scrollY == y {
		return
	}
	n.scrollX, n.scrollY = x, y
	n.notifyTree()
}

// ScrollBy adjusts the scroll offset by (dx, dy).
func (n *Node) ScrollBy(dx, dy float64) {
	n.ScrollTo(n.scrollX+dx, n.scrollY+dy)
}

// BoundingRect returns the node's rect in viewport coordinates.
func (n *Node) BoundingRect() geom.Rect {
	if n == nil {
		return geom.Rect{}
	}
	r := n.bounds
	for p := n.parent; p != nil; p = p.parent {
		r = r.Translate(p.bounds.X-p.scrollX, p.bounds.Y-p.scrollY)
	}
	return r
}

// IsConnected reports whether the node is attached to a root.
func (n *Node) IsConnected() bool {
	if n == nil {
		return false
	}
	p := n
	for p.parent != nil {
		p = p.parent
	}
	return p.root
}

// ClippingAncestors returns the ancestors that clip this node, nearest first.
func (n *Node) ClippingAncestors() []host.Element {
	var out []host.Element
	for p := n.parent; p != nil; p = p.parent {
		if p.clip {
			out = append(out, p)
		}
	}
	return out
}

// Observe registers fn to run whenever this node moves, resizes, scrolls,
// or is attached or detached, including through an ancestor.
func (n *Node) Observe(fn func()) (cancel func()) {
	if n.listeners == nil {
		n.listeners = make(map[uint64]func())
	}
	id := n.nextID
	n.nextID++
	n.listeners[id] = fn
	return func() {
		delete(n.listeners, id)
	}
}

// Observers returns the number of registered observers.
func (n *Node) Observers() int {
	return len(n.listeners)
}

// notifyTree notifies this node and every descendant.
func (n *Node) notifyTree() {
	n.notify()
	for _, child := range n.children {
		child.notifyTree()
	}
}

func (n *Node) notify() {
	if len(n.listeners) == 0 {
		return
	}
	ids := make([]uint64, 0, len(n.listeners))
	for id := range n.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if fn, ok := n.listeners[id]; ok {
			fn()
		}
	}
}
