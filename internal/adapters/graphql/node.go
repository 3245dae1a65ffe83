package graphql

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lithos/internal/core/ports"
)

// ExecutorFactory builds a query executor once the engine endpoint is
// known. The endpoint comes from the site config, which is loaded after
// wiring.
type ExecutorFactory func(endpoint string) ports.QueryExecutor

// NodeID is the unique identifier for the executor factory Graft node.
const NodeID graft.ID = "adapter.query_executor"

func init() {
	graft.Register(graft.Node[ExecutorFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ExecutorFactory, error) {
			return func(endpoint string) ports.QueryExecutor {
				return NewExecutor(endpoint)
			}, nil
		},
	})
}
