package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/fractui/internal/domain/entity"
	"github.com/bnema/fractui/internal/logging"
)

// SplitDirection indicates the side of the active pane the new pane appears on.
type SplitDirection string

const (
	SplitLeft  SplitDirection = "left"
	SplitRight SplitDirection = "right"
	SplitUp    SplitDirection = "up"
	SplitDown  SplitDirection = "down"
)

// Layout returns the split orientation and whether the new pane goes first.
func (d SplitDirection) Layout() (dir entity.SplitDirection, prepend bool) {
	switch d {
	case SplitLeft:
		return entity.SplitHorizontal, true
	case SplitUp:
		return entity.SplitVertical, true
	case SplitDown:
		return entity.SplitVertical, false
	default:
		return entity.SplitHorizontal, false
	}
}

// ManagePanesUseCase handles pane tree operations.
type ManagePanesUseCase struct{}

// NewManagePanesUseCase creates a new pane management use case.
func NewManagePanesUseCase() *ManagePanesUseCase {
	return &ManagePanesUseCase{}
}

// SplitPaneInput contains parameters for splitting the active pane.
type SplitPaneInput struct {
	Session   *entity.Session
	Direction SplitDirection
}

// SplitPaneOutput contains the result of a split operation.
type SplitPaneOutput struct {
	NewPane    *entity.Pane
	ParentNode *entity.PaneNode // Split node that replaced the active leaf
}

// Split replaces the active leaf with a split holding the original pane and
// a fresh default pane. The new pane becomes active.
func (uc *ManagePanesUseCase) Split(ctx context.Context, input SplitPaneInput) (*SplitPaneOutput, error) {
	log := logging.FromContext(ctx)

	s := input.Session
	if s == nil || s.Root == nil {
		return nil, fmt.Errorf("session is required")
	}

	target := findLeafNode(s.Root, s.ActivePaneID)
	if target == nil {
		return nil, fmt.Errorf("active pane %d not found", s.ActivePaneID)
	}

	log.Debug().
		Str("direction", string(input.Direction)).
		Int("target_id", int(s.ActivePaneID)).
		Msg("splitting pane")

	newPane := entity.NewPane(s.AllocateID(), s.Defaults)
	newNode := entity.NewLeaf(newPane)
	original := entity.NewLeaf(target.Pane)

	dir, prepend := input.Direction.Layout()

	// Turn the target leaf into the split in place so its parent keeps
	// pointing at the same node.
	target.Pane = nil
	target.Direction = dir
	if prepend {
		target.Children = []*entity.PaneNode{newNode, original}
	} else {
		target.Children = []*entity.PaneNode{original, newNode}
	}

	s.ActivePaneID = newPane.ID

	log.Info().
		Int("new_pane_id", int(newPane.ID)).
		Str("orientation", dir.String()).
		Bool("prepend", prepend).
		Msg("pane split completed")

	return &SplitPaneOutput{NewPane: newPane, ParentNode: target}, nil
}

// Close removes the active pane. Splits left with a single child are
// replaced by that child, bottom-up. Closing the last pane is a no-op and
// returns false.
func (uc *ManagePanesUseCase) Close(ctx context.Context, s *entity.Session) (bool, error) {
	log := logging.FromContext(ctx)

	if s == nil || s.Root == nil {
		return false, fmt.Errorf("session is required")
	}
	if s.Root.IsLeaf() {
		log.Debug().Msg("refusing to close the last pane")
		return false, nil
	}

	closedID := s.ActivePaneID
	root, removed := removeLeaf(s.Root, closedID)
	if !removed {
		return false, fmt.Errorf("active pane %d not found", closedID)
	}
	s.Root = root

	if s.FindPane(s.ActivePaneID) == nil {
		ids := s.CollectIDs()
		s.ActivePaneID = ids[len(ids)-1]
	}

	log.Info().
		Int("closed_pane_id", int(closedID)).
		Int("active_pane_id", int(s.ActivePaneID)).
		Msg("pane closed")

	return true, nil
}

// CycleFocus moves focus to the next pane in depth-first order, wrapping
// around at the end.
func (uc *ManagePanesUseCase) CycleFocus(ctx context.Context, s *entity.Session) (entity.PaneID, error) {
	if s == nil || s.Root == nil {
		return 0, fmt.Errorf("session is required")
	}

	ids := s.CollectIDs()
	next := ids[0]
	for i, id := range ids {
		if id == s.ActivePaneID {
			next = ids[(i+1)%len(ids)]
			break
		}
	}

	logging.FromContext(ctx).Debug().
		Int("from", int(s.ActivePaneID)).
		Int("to", int(next)).
		Msg("cycling focus")

	s.ActivePaneID = next
	return next, nil
}

// SelectByNumber focuses the n-th pane (1-based) in depth-first order.
// Returns false when no pane has that position.
func (uc *ManagePanesUseCase) SelectByNumber(ctx context.Context, s *entity.Session, n int) bool {
	if s == nil || s.Root == nil {
		return false
	}
	ids := s.CollectIDs()
	if n < 1 || n > len(ids) {
		return false
	}
	s.ActivePaneID = ids[n-1]

	logging.FromContext(ctx).Debug().
		Int("number", n).
		Int("pane_id", int(s.ActivePaneID)).
		Msg("selected pane by number")
	return true
}

// Focus sets the active pane.
func (uc *ManagePanesUseCase) Focus(ctx context.Context, s *entity.Session, id entity.PaneID) error {
	if s == nil || s.Root == nil {
		return fmt.Errorf("session is required")
	}
	if s.FindPane(id) == nil {
		return fmt.Errorf("pane %d not found", id)
	}
	if s.ActivePaneID != id {
		logging.FromContext(ctx).Debug().Int("pane_id", int(id)).Msg("focusing pane")
	}
	s.ActivePaneID = id
	return nil
}

// FindPaneAt returns the pane whose last rendered rectangle contains the cell.
func (uc *ManagePanesUseCase) FindPaneAt(s *entity.Session, col, row int) *entity.Pane {
	if s == nil || s.Root == nil {
		return nil
	}
	return s.Root.FindPaneAt(col, row)
}

// GetAllPanes returns all panes in depth-first order.
func (uc *ManagePanesUseCase) GetAllPanes(s *entity.Session) []*entity.Pane {
	if s == nil || s.Root == nil {
		return nil
	}
	return s.Root.Leaves()
}

func findLeafNode(node *entity.PaneNode, id entity.PaneID) *entity.PaneNode {
	var found *entity.PaneNode
	node.Walk(func(n *entity.PaneNode) bool {
		if n.IsLeaf() && n.Pane.ID == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// removeLeaf drops the leaf with the given id from the subtree rooted at
// node. It returns the node that should take node's place (nil when node
// itself was the leaf) and whether the leaf was found.
func removeLeaf(node *entity.PaneNode, id entity.PaneID) (*entity.PaneNode, bool) {
	if node.IsLeaf() {
		if node.Pane.ID == id {
			return nil, true
		}
		return node, false
	}

	for i, child := range node.Children {
		replacement, removed := removeLeaf(child, id)
		if !removed {
			continue
		}
		if replacement == nil {
			node.Children = append(node.Children[:i], node.Children[i+1:]...)
		} else {
			node.Children[i] = replacement
		}
		if len(node.Children) == 1 {
			return node.Children[0], true
		}
		return node, true
	}
	return node, false
}
