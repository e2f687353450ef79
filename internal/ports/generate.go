// Package ports defines the interfaces for external dependencies in our hexagonal architecture.
// These interfaces are implemented by adapters and replaced by mocks in tests.
package ports

//go:generate mockery
