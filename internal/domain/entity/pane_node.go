package entity

// SplitDirection indicates how a split node divides its rectangle.
type SplitDirection int

const (
	SplitHorizontal SplitDirection = iota // Children laid out left to right
	SplitVertical                         // Children laid out top to bottom
)

func (d SplitDirection) String() string {
	if d == SplitVertical {
		return "vertical"
	}
	return "horizontal"
}

// PaneNode is a node of the pane tree. It is either:
//   - Leaf node: Pane is non-nil and Children is empty
//   - Split node: Pane is nil and Children holds at least two nodes
//
// Nodes carry no parent pointers; paths are recomputed on each walk.
type PaneNode struct {
	Pane      *Pane
	Direction SplitDirection
	Children  []*PaneNode
}

// NewLeaf wraps a pane in a leaf node.
func NewLeaf(p *Pane) *PaneNode {
	return &PaneNode{Pane: p}
}

// NewSplit creates a split node over the given children.
func NewSplit(dir SplitDirection, children ...*PaneNode) *PaneNode {
	return &PaneNode{Direction: dir, Children: children}
}

// IsLeaf returns true if this node holds a pane.
func (n *PaneNode) IsLeaf() bool {
	return n.Pane != nil
}

// IsSplit returns true if this node divides its area among children.
func (n *PaneNode) IsSplit() bool {
	return n.Pane == nil && len(n.Children) > 0
}

// Walk traverses the tree depth-first in pre-order. Returns early if fn returns false.
func (n *PaneNode) Walk(fn func(*PaneNode) bool) bool {
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// Leaves returns every pane in depth-first order.
func (n *PaneNode) Leaves() []*Pane {
	var panes []*Pane
	n.Walk(func(node *PaneNode) bool {
		if node.IsLeaf() {
			panes = append(panes, node.Pane)
		}
		return true
	})
	return panes
}

// CollectIDs returns leaf ids in depth-first order (left/top first). This
// order matches on-screen order because layout follows the same traversal.
func (n *PaneNode) CollectIDs() []PaneID {
	leaves := n.Leaves()
	ids := make([]PaneID, len(leaves))
	for i, p := range leaves {
		ids[i] = p.ID
	}
	return ids
}

// FindPane searches the tree for a pane with the given ID.
func (n *PaneNode) FindPane(id PaneID) *Pane {
	var found *Pane
	n.Walk(func(node *PaneNode) bool {
		if node.IsLeaf() && node.Pane.ID == id {
			found = node.Pane
			return false
		}
		return true
	})
	return found
}

// FindPaneAt returns the first leaf, in depth-first order, whose last
// rendered rectangle contains the cell.
func (n *PaneNode) FindPaneAt(col, row int) *Pane {
	var found *Pane
	n.Walk(func(node *PaneNode) bool {
		if node.IsLeaf() && node.Pane.Area.Contains(col, row) {
			found = node.Pane
			return false
		}
		return true
	})
	return found
}

// LeafCount returns the number of leaf nodes (panes) in the tree.
func (n *PaneNode) LeafCount() int {
	count := 0
	n.Walk(func(node *PaneNode) bool {
		if node.IsLeaf() {
			count++
		}
		return true
	})
	return count
}

// Arrange assigns each leaf its rectangle. Children of a split share the
// parent's rectangle in equal percentages along the split axis.
func (n *PaneNode) Arrange(area Rect) {
	if n.IsLeaf() {
		n.Pane.Area = area
		return
	}
	rects := SplitRect(area, n.Direction, len(n.Children))
	for i, child := range n.Children {
		child.Arrange(rects[i])
	}
}

// SplitRect divides area into count slices along dir. Each slice gets an
// integer percentage share of 100/count; the last slice absorbs the remainder.
func SplitRect(area Rect, dir SplitDirection, count int) []Rect {
	if count <= 0 {
		return nil
	}
	total := area.W
	if dir == SplitVertical {
		total = area.H
	}
	percent := 100 / count
	size := total * percent / 100

	rects := make([]Rect, count)
	offset := 0
	for i := range rects {
		length := size
		if i == count-1 {
			length = total - offset
		}
		if dir == SplitVertical {
			rects[i] = Rect{X: area.X, Y: area.Y + offset, W: area.W, H: length}
		} else {
			rects[i] = Rect{X: area.X + offset, Y: area.Y, W: length, H: area.H}
		}
		offset += length
	}
	return rects
}
