package bubble

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no visual output
	NodeTypeShape                     // fills a closed Path
	NodeTypeText                      // draws a single line of TTF text
)

// nodeIDCounter is a plain counter; bubble is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the fundamental scene graph element. A single flat struct is used for
// all node types to avoid interface dispatch on the hot path.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64 // radians, clockwise on screen
	PivotX   float64
	PivotY   float64

	// Computed during updateWorldTransform
	worldTransform [6]float64
	worldAlpha     float64
	transformDirty bool

	Alpha   float64
	Visible bool

	// Paint. Color tints solid fills and text; Gradient, when set, replaces
	// the fill color and is sampled in Frame's unit space.
	Color    Color
	Gradient *LinearGradient

	// Shape fields (NodeTypeShape)
	Shape Path
	Frame Rect

	// Text fields (NodeTypeText). X is the horizontal center of the line.
	Text string
	Font *Font

	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Alpha = 1
	n.worldAlpha = 1
	n.worldTransform = identityTransform
	n.Color = ColorWhite
	n.Visible = true
	n.transformDirty = true
}

// NewContainer creates a container node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewShape creates a node that fills path. frame is the rect gradients are
// laid out against, usually the rect the path was generated for.
func NewShape(name string, path Path, frame Rect) *Node {
	n := &Node{Name: name, Type: NodeTypeShape, Shape: path, Frame: frame}
	nodeDefaults(n)
	return n
}

// NewText creates a text node centered on its X position.
func NewText(name, content string, font *Font) *Node {
	n := &Node{Name: name, Type: NodeTypeText, Text: content, Font: font}
	nodeDefaults(n)
	return n
}

// AddChild appends child to this node's children. If child already has a
// parent it is removed from that parent first.
func (n *Node) AddChild(child *Node) {
	if child == nil || child == n {
		return
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	markSubtreeDirty(child)
}

// RemoveChild detaches child from this node. It is a no-op if child is not
// a direct child.
func (n *Node) RemoveChild(child *Node) {
	if child == nil || child.Parent != n {
		return
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
func (n *Node) RemoveFromParent() {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// RemoveChildren detaches all children.
func (n *Node) RemoveChildren() {
	for _, c := range n.children {
		c.Parent = nil
		markSubtreeDirty(c)
	}
	n.children = n.children[:0]
}

// Children returns the node's children. The returned slice MUST NOT be mutated.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of direct children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// Dispose detaches the node and marks it and its subtree as disposed.
// Tweens targeting a disposed node stop on their next update.
func (n *Node) Dispose() {
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	for _, c := range n.children {
		c.Parent = nil
		c.dispose()
	}
	n.children = nil
}

// IsDisposed reports whether Dispose has been called on this node or an
// ancestor.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// WorldAlpha returns the product of this node's alpha and its ancestors',
// as of the last transform update.
func (n *Node) WorldAlpha() float64 {
	return n.worldAlpha
}

func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, c := range node.children {
		markSubtreeDirty(c)
	}
}
