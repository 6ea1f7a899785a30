package ports

import (
	"context"

	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/core/domain"
)

// ThemeResolver computes theme colors from a configuration snapshot.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type ThemeResolver interface {
	// Resolve matches rules against the snapshot's workspace and returns the resolved colors.
	// It never fails; invalid parts of the snapshot leave their keys uncolored.
	Resolve(ctx context.Context, cfg *domain.Configuration) domain.Resolution

	// Match returns the indexes of the first enabled repo and branch rules matching the snapshot's workspace.
	Match(cfg *domain.Configuration) domain.MatchingIndexes

	// Validate reports authoring problems in the snapshot.
	Validate(cfg *domain.Configuration) []domain.Issue
}
