// Package di provides dependency injection container
package di

import (
	"github.com/ssargent/recfactory/pkg/api" //nolint:depguard
)

// Container holds all the dependencies for the application
type Container struct {
	recordFactoryProvider api.RecordFactoryProvider
	serverFactory         api.ServerFactory
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	return &Container{
		recordFactoryProvider: api.NewRecordFactoryProvider(),
		serverFactory:         api.NewServerFactory(),
	}
}

// GetRecordFactoryProvider returns the record factory provider
func (c *Container) GetRecordFactoryProvider() api.RecordFactoryProvider {
	return c.recordFactoryProvider
}

// GetServerFactory returns the server factory
func (c *Container) GetServerFactory() api.ServerFactory {
	return c.serverFactory
}

// SetRecordFactoryProvider allows overriding the record factory provider (for testing)
func (c *Container) SetRecordFactoryProvider(provider api.RecordFactoryProvider) {
	c.recordFactoryProvider = provider
}

// SetServerFactory allows overriding the server factory (for testing)
func (c *Container) SetServerFactory(factory api.ServerFactory) {
	c.serverFactory = factory
}
