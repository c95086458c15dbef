package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lockscan/internal/adapters/affected" //nolint:depguard // Wired in app layer
	"go.trai.ch/lockscan/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/lockscan/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/lockscan/internal/adapters/report"   //nolint:depguard // Wired in app layer
	"go.trai.ch/lockscan/internal/core/ports"
	"go.trai.ch/lockscan/internal/engine/scan"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			affected.NodeID,
			scan.NodeID,
			report.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	source, err := graft.Dep[ports.AffectedSource](ctx)
	if err != nil {
		return nil, err
	}

	scanner, err := graft.Dep[*scan.Scanner](ctx)
	if err != nil {
		return nil, err
	}

	renderers, err := graft.Dep[ports.RendererFactory](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, source, scanner, renderers, log), nil
}
