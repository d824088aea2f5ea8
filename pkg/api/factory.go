// Package api provides factory implementations for dependency injection
package api

import (
	"context"

	"go.uber.org/zap"

	"github.com/ssargent/recfactory/pkg/alloc"
	"github.com/ssargent/recfactory/pkg/record"
)

// DefaultRecordFactoryProvider is the default implementation of RecordFactoryProvider
type DefaultRecordFactoryProvider struct{}

// NewRecordFactoryProvider creates a new record factory provider
func NewRecordFactoryProvider() RecordFactoryProvider {
	return &DefaultRecordFactoryProvider{}
}

// CreateRecordFactory creates a heap factory, or a budgeted one when budgetBytes > 0
func (p *DefaultRecordFactoryProvider) CreateRecordFactory(budgetBytes int64) RecordFactory {
	if budgetBytes > 0 {
		return record.NewFactory(alloc.NewBudgetAllocator(budgetBytes))
	}
	return record.NewFactory(alloc.HeapAllocator{})
}

// DefaultServerFactory is the default implementation of ServerFactory
type DefaultServerFactory struct{}

// NewServerFactory creates a new server factory
func NewServerFactory() ServerFactory {
	return &DefaultServerFactory{}
}

// CreateServerStarter creates a server starter
func (f *DefaultServerFactory) CreateServerStarter() ServerStarter {
	return &DefaultServerStarter{}
}

// DefaultServerStarter is the default implementation of ServerStarter
type DefaultServerStarter struct{}

// StartServer starts the API server with the given configuration
func (s *DefaultServerStarter) StartServer(
	ctx context.Context,
	factory RecordFactory,
	config ServerConfig,
	logger *zap.Logger,
) error {
	return StartServer(ctx, factory, config, logger)
}
