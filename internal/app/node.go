package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lithos/internal/adapters/config"
	"go.trai.ch/lithos/internal/adapters/fs"
	"go.trai.ch/lithos/internal/adapters/graphql"
	"go.trai.ch/lithos/internal/adapters/logger"
	"go.trai.ch/lithos/internal/adapters/reporter"
	"go.trai.ch/lithos/internal/adapters/state"
	"go.trai.ch/lithos/internal/adapters/telemetry"
	"go.trai.ch/lithos/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			reporter.NodeID,
			state.NodeID,
			fs.NodeID,
			telemetry.TracerNodeID,
			graphql.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	rep, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}

	stateStore, err := graft.Dep[*state.Store](ctx)
	if err != nil {
		return nil, err
	}

	output, err := graft.Dep[ports.OutputStore](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	executors, err := graft.Dep[graphql.ExecutorFactory](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, rep, stateStore, output, tracer, executors), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    application,
		Logger: log,
	}, nil
}
