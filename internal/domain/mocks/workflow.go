// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/sweeplab/logsweep/internal/domain"
)

// MockWorkflow is a mock implementation of domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

// NewMockWorkflow creates a mock wired to the test's lifecycle.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	mk := &MockWorkflow{}
	mk.Mock.Test(t)

	t.Cleanup(func() { mk.AssertExpectations(t) })

	return mk
}

// Clean mocks the cleanup run.
func (mk *MockWorkflow) Clean(args domain.CleanArgs) error {
	callArgs := mk.Called(args)

	return callArgs.Error(0)
}

// List mocks the scan-only listing.
func (mk *MockWorkflow) List(args domain.ListArgs) error {
	callArgs := mk.Called(args)

	return callArgs.Error(0)
}
