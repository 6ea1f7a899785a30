package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/adapters/telemetry"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/core/ports"
)

// NodeID is the unique identifier for the theme resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[ports.ThemeResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{telemetry.TracerNodeID},
		Run: func(ctx context.Context) (ports.ThemeResolver, error) {
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return NewService(NewMatcher(), tracer, NewCache()), nil
		},
	})
}
