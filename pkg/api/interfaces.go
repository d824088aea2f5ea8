// Package api provides interfaces for dependency injection
package api

import (
	"context"

	"go.uber.org/zap"
)

// RecordFactoryProvider creates record factories
type RecordFactoryProvider interface {
	// CreateRecordFactory creates a factory limited to budgetBytes of live
	// records; 0 means unlimited
	CreateRecordFactory(budgetBytes int64) RecordFactory
}

// ServerStarter defines the interface for starting the API server
type ServerStarter interface {
	// StartServer starts the API server and blocks until ctx is cancelled
	StartServer(ctx context.Context, factory RecordFactory, config ServerConfig, logger *zap.Logger) error
}

// ServerFactory creates server instances
type ServerFactory interface {
	// CreateServerStarter creates a server starter
	CreateServerStarter() ServerStarter
}
