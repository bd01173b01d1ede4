package entity

// Session owns the pane tree and the modal flags of one explorer run.
type Session struct {
	Root         *PaneNode
	ActivePaneID PaneID
	NextID       PaneID // next id to hand out; ids are never reused

	ShowQuitPopup bool
	ShowHelpPopup bool

	// Defaults applied to new and reset panes.
	Defaults PaneDefaults
}

// NewSession creates a session with a single pane (id 0) that is active.
func NewSession(d PaneDefaults) *Session {
	return &Session{
		Root:         NewLeaf(NewPane(0, d)),
		ActivePaneID: 0,
		NextID:       1,
		Defaults:     d,
	}
}

// AllocateID returns a fresh pane id.
func (s *Session) AllocateID() PaneID {
	id := s.NextID
	s.NextID++
	return id
}

// FindPane searches for a pane by ID.
func (s *Session) FindPane(id PaneID) *Pane {
	if s.Root == nil {
		return nil
	}
	return s.Root.FindPane(id)
}

// ActivePane returns the focused pane.
func (s *Session) ActivePane() *Pane {
	return s.FindPane(s.ActivePaneID)
}

// CollectIDs returns pane ids in depth-first order.
func (s *Session) CollectIDs() []PaneID {
	if s.Root == nil {
		return nil
	}
	return s.Root.CollectIDs()
}

// PaneCount returns the number of panes in the session.
func (s *Session) PaneCount() int {
	if s.Root == nil {
		return 0
	}
	return s.Root.LeafCount()
}

// EditingPane returns the pane holding an active Julia text entry, or nil.
func (s *Session) EditingPane() *Pane {
	if s.Root == nil {
		return nil
	}
	for _, p := range s.Root.Leaves() {
		if p.IsEditing() {
			return p
		}
	}
	return nil
}
