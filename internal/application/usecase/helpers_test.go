package usecase_test

import (
	"context"

	"github.com/bnema/fractui/internal/domain/entity"
	"github.com/bnema/fractui/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newSession() *entity.Session {
	return entity.NewSession(entity.DefaultPaneDefaults())
}

// degenerateSplits counts splits with fewer than two children.
func degenerateSplits(root *entity.PaneNode) int {
	bad := 0
	root.Walk(func(n *entity.PaneNode) bool {
		if !n.IsLeaf() && len(n.Children) < 2 {
			bad++
		}
		return true
	})
	return bad
}
