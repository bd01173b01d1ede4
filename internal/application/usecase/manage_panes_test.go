package usecase_test

import (
	"math/rand"
	"testing"

	"github.com/bnema/fractui/internal/application/usecase"
	"github.com/bnema/fractui/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitDirection_Layout(t *testing.T) {
	tests := []struct {
		dir         usecase.SplitDirection
		wantDir     entity.SplitDirection
		wantPrepend bool
	}{
		{usecase.SplitRight, entity.SplitHorizontal, false},
		{usecase.SplitLeft, entity.SplitHorizontal, true},
		{usecase.SplitDown, entity.SplitVertical, false},
		{usecase.SplitUp, entity.SplitVertical, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.dir), func(t *testing.T) {
			dir, prepend := tt.dir.Layout()
			assert.Equal(t, tt.wantDir, dir)
			assert.Equal(t, tt.wantPrepend, prepend)
		})
	}
}

func TestManagePanesUseCase_SplitAppend(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManagePanesUseCase()
	s := newSession()

	out, err := uc.Split(ctx, usecase.SplitPaneInput{Session: s, Direction: usecase.SplitRight})
	require.NoError(t, err)

	require.True(t, s.Root.IsSplit())
	assert.Equal(t, entity.SplitHorizontal, s.Root.Direction)
	assert.Same(t, s.Root, out.ParentNode)
	assert.Equal(t, entity.PaneID(1), out.NewPane.ID)
	assert.Equal(t, entity.PaneID(1), s.ActivePaneID)
	assert.Equal(t, []entity.PaneID{0, 1}, s.CollectIDs())
}

func TestManagePanesUseCase_SplitPrepend(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManagePanesUseCase()
	s := newSession()

	_, err := uc.Split(ctx, usecase.SplitPaneInput{Session: s, Direction: usecase.SplitUp})
	require.NoError(t, err)

	assert.Equal(t, entity.SplitVertical, s.Root.Direction)
	assert.Equal(t, []entity.PaneID{1, 0}, s.CollectIDs())
	assert.Equal(t, entity.PaneID(1), s.ActivePaneID)
}

func TestManagePanesUseCase_SplitKeepsOriginalState(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManagePanesUseCase()
	s := newSession()

	orig := s.ActivePane()
	orig.CenterX = 0.42
	orig.Scale = 0.01
	orig.Palette = entity.PaletteMagma
	orig.FractalType = entity.FractalJulia

	out, err := uc.Split(ctx, usecase.SplitPaneInput{Session: s, Direction: usecase.SplitDown})
	require.NoError(t, err)

	kept := s.FindPane(0)
	require.NotNil(t, kept)
	assert.Equal(t, 0.42, kept.CenterX)
	assert.Equal(t, 0.01, kept.Scale)
	assert.Equal(t, entity.PaletteMagma, kept.Palette)
	assert.Equal(t, entity.FractalJulia, kept.FractalType)

	fresh := out.NewPane
	assert.Equal(t, entity.DefaultCenterX, fresh.CenterX)
	assert.Equal(t, entity.DefaultScale, fresh.Scale)
	assert.Equal(t, entity.PaletteClassic, fresh.Palette)
	assert.Equal(t, entity.FractalMandelbrot, fresh.FractalType)
}

func TestManagePanesUseCase_SplitNested(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManagePanesUseCase()
	s := newSession()

	_, err := uc.Split(ctx, usecase.SplitPaneInput{Session: s, Direction: usecase.SplitRight})
	require.NoError(t, err)
	require.NoError(t, uc.Focus(ctx, s, 0))
	_, err = uc.Split(ctx, usecase.SplitPaneInput{Session: s, Direction: usecase.SplitDown})
	require.NoError(t, err)

	// H(V(0, 2), 1)
	assert.Equal(t, []entity.PaneID{0, 2, 1}, s.CollectIDs())
	assert.Equal(t, entity.PaneID(2), s.ActivePaneID)
	require.Len(t, s.Root.Children, 2)
	assert.Equal(t, entity.SplitVertical, s.Root.Children[0].Direction)
}

func TestManagePanesUseCase_CloseCollapses(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManagePanesUseCase()
	s := newSession()

	_, err := uc.Split(ctx, usecase.SplitPaneInput{Session: s, Direction: usecase.SplitRight})
	require.NoError(t, err)
	require.Equal(t, entity.PaneID(1), s.ActivePaneID)

	closed, err := uc.Close(ctx, s)
	require.NoError(t, err)

	assert.True(t, closed)
	assert.True(t, s.Root.IsLeaf(), "split with one child collapses to that child")
	assert.Equal(t, entity.PaneID(0), s.Root.Pane.ID)
	assert.Equal(t, entity.PaneID(0), s.ActivePaneID)
	assert.Equal(t, []entity.PaneID{0}, s.CollectIDs())
}

func TestManagePanesUseCase_CloseLastPaneIsNoop(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManagePanesUseCase()
	s := newSession()

	closed, err := uc.Close(ctx, s)
	require.NoError(t, err)

	assert.False(t, closed)
	assert.Equal(t, 1, s.PaneCount())
	assert.Equal(t, entity.PaneID(0), s.ActivePaneID)
}

func TestManagePanesUseCase_CloseFallsBackToLastID(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManagePanesUseCase()
	s := newSession()

	// H(0, 1, ...) built by hand so the root has three children.
	p1 := entity.NewPane(1, s.Defaults)
	p2 := entity.NewPane(2, s.Defaults)
	s.Root = entity.NewSplit(entity.SplitHorizontal,
		entity.NewLeaf(s.FindPane(0)),
		entity.NewLeaf(p1),
		entity.NewLeaf(p2),
	)
	s.NextID = 3
	s.ActivePaneID = 0

	closed, err := uc.Close(ctx, s)
	require.NoError(t, err)
	require.True(t, closed)

	assert.Equal(t, []entity.PaneID{1, 2}, s.CollectIDs())
	assert.Equal(t, entity.PaneID(2), s.ActivePaneID)
	assert.True(t, s.Root.IsSplit(), "two children remain so the split stays")
}

func TestManagePanesUseCase_CloseCollapsesNestedSplit(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManagePanesUseCase()
	s := newSession()

	_, err := uc.Split(ctx, usecase.SplitPaneInput{Session: s, Direction: usecase.SplitRight})
	require.NoError(t, err)
	_, err = uc.Split(ctx, usecase.SplitPaneInput{Session: s, Direction: usecase.SplitDown})
	require.NoError(t, err)
	// H(0, V(1, 2)), active 2
	require.Equal(t, []entity.PaneID{0, 1, 2}, s.CollectIDs())

	_, err = uc.Close(ctx, s)
	require.NoError(t, err)

	// H(0, 1)
	require.Len(t, s.Root.Children, 2)
	assert.True(t, s.Root.Children[1].IsLeaf())
	assert.Equal(t, entity.PaneID(1), s.Root.Children[1].Pane.ID)
	assert.Equal(t, entity.PaneID(1), s.ActivePaneID)
	assert.Zero(t, degenerateSplits(s.Root))
}

func TestManagePanesUseCase_SplitCloseRoundTrip(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManagePanesUseCase()

	for _, dir := range []usecase.SplitDirection{usecase.SplitLeft, usecase.SplitRight, usecase.SplitUp, usecase.SplitDown} {
		t.Run(string(dir), func(t *testing.T) {
			s := newSession()
			original := s.ActivePane()

			_, err := uc.Split(ctx, usecase.SplitPaneInput{Session: s, Direction: dir})
			require.NoError(t, err)
			_, err = uc.Close(ctx, s)
			require.NoError(t, err)

			require.True(t, s.Root.IsLeaf())
			assert.Same(t, original, s.Root.Pane)
			assert.Equal(t, entity.PaneID(0), s.ActivePaneID)
			assert.Equal(t, entity.PaneID(2), s.NextID, "ids are never reused")
		})
	}
}

func TestManagePanesUseCase_RandomOperationsKeepInvariants(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManagePanesUseCase()
	s := newSession()
	rng := rand.New(rand.NewSource(7))
	dirs := []usecase.SplitDirection{usecase.SplitLeft, usecase.SplitRight, usecase.SplitUp, usecase.SplitDown}

	for i := 0; i < 500; i++ {
		switch rng.Intn(4) {
		case 0, 1:
			_, err := uc.Split(ctx, usecase.SplitPaneInput{Session: s, Direction: dirs[rng.Intn(len(dirs))]})
			require.NoError(t, err)
		case 2:
			_, err := uc.Close(ctx, s)
			require.NoError(t, err)
		case 3:
			uc.SelectByNumber(ctx, s, 1+rng.Intn(9))
		}

		ids := s.CollectIDs()
		require.NotEmpty(t, ids)
		require.Zero(t, degenerateSplits(s.Root), "step %d", i)
		require.NotNil(t, s.ActivePane(), "step %d", i)

		seen := make(map[entity.PaneID]bool, len(ids))
		for _, id := range ids {
			require.False(t, seen[id], "duplicate id %d at step %d", id, i)
			require.Less(t, id, s.NextID)
			seen[id] = true
		}
	}
}

func TestManagePanesUseCase_CycleFocus(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManagePanesUseCase()
	s := newSession()

	_, err := uc.Split(ctx, usecase.SplitPaneInput{Session: s, Direction: usecase.SplitRight})
	require.NoError(t, err)
	require.Equal(t, entity.PaneID(1), s.ActivePaneID)

	next, err := uc.CycleFocus(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, entity.PaneID(0), next)
	assert.Equal(t, entity.PaneID(0), s.ActivePaneID)

	next, err = uc.CycleFocus(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, entity.PaneID(1), next)
}

func TestManagePanesUseCase_SelectByNumber(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManagePanesUseCase()
	s := newSession()

	_, err := uc.Split(ctx, usecase.SplitPaneInput{Session: s, Direction: usecase.SplitRight})
	require.NoError(t, err)
	require.NoError(t, uc.Focus(ctx, s, 0))

	assert.True(t, uc.SelectByNumber(ctx, s, 2))
	assert.Equal(t, entity.PaneID(1), s.ActivePaneID)

	assert.True(t, uc.SelectByNumber(ctx, s, 1))
	assert.Equal(t, entity.PaneID(0), s.ActivePaneID)

	assert.False(t, uc.SelectByNumber(ctx, s, 3))
	assert.Equal(t, entity.PaneID(0), s.ActivePaneID)
}

func TestManagePanesUseCase_SelectByNumberUsesPosition(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManagePanesUseCase()
	s := newSession()

	// Prepending puts id 1 first, so "1" must select id 1, not id 0.
	_, err := uc.Split(ctx, usecase.SplitPaneInput{Session: s, Direction: usecase.SplitLeft})
	require.NoError(t, err)
	require.NoError(t, uc.Focus(ctx, s, 0))

	require.True(t, uc.SelectByNumber(ctx, s, 1))
	assert.Equal(t, entity.PaneID(1), s.ActivePaneID)
}

func TestManagePanesUseCase_FocusUnknownPane(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManagePanesUseCase()
	s := newSession()

	err := uc.Focus(ctx, s, 42)

	assert.Error(t, err)
	assert.Equal(t, entity.PaneID(0), s.ActivePaneID)
}

func TestManagePanesUseCase_IDOrderStableUnderViewChanges(t *testing.T) {
	ctx := testContext()
	panes := usecase.NewManagePanesUseCase()
	view := usecase.NewManageViewUseCase(entity.DefaultPaneDefaults())
	s := newSession()

	for _, dir := range []usecase.SplitDirection{usecase.SplitRight, usecase.SplitDown, usecase.SplitLeft} {
		_, err := panes.Split(ctx, usecase.SplitPaneInput{Session: s, Direction: dir})
		require.NoError(t, err)
	}
	before := s.CollectIDs()

	for _, p := range panes.GetAllPanes(s) {
		for _, a := range []usecase.ViewAction{usecase.ViewPanLeft, usecase.ViewZoomIn, usecase.ViewCyclePalette, usecase.ViewReset} {
			_, err := view.Apply(ctx, p, a)
			require.NoError(t, err)
		}
	}

	assert.Equal(t, before, s.CollectIDs())
}

func TestManagePanesUseCase_NilSession(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManagePanesUseCase()

	_, err := uc.Split(ctx, usecase.SplitPaneInput{})
	assert.Error(t, err)
	_, err = uc.Close(ctx, nil)
	assert.Error(t, err)
	_, err = uc.CycleFocus(ctx, nil)
	assert.Error(t, err)
	assert.False(t, uc.SelectByNumber(ctx, nil, 1))
	assert.Nil(t, uc.FindPaneAt(nil, 0, 0))
}
