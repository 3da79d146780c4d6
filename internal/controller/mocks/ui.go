// Package mocks provides testify mocks for the controller interfaces.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/sweeplab/logsweep/internal/controller"
	m "github.com/sweeplab/logsweep/internal/model"
)

// MockUI is a mock implementation of controller.UI.
type MockUI struct {
	mock.Mock
}

// NewMockUI creates a mock wired to the test's lifecycle.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	mk := &MockUI{}
	mk.Mock.Test(t)

	t.Cleanup(func() { mk.AssertExpectations(t) })

	return mk
}

// Start mocks UI startup.
func (mk *MockUI) Start(options ...controller.StartOption) error {
	callArgs := make([]interface{}, 0, len(options))
	for _, opt := range options {
		callArgs = append(callArgs, opt)
	}

	args := mk.Called(callArgs...)

	return args.Error(0)
}

// Close mocks UI shutdown.
func (mk *MockUI) Close() {
	mk.Called()
}

// DisplayScanInfo mocks the scan banner.
func (mk *MockUI) DisplayScanInfo(files int) {
	mk.Called(files)
}

// DisplayFileResult mocks per-file output.
func (mk *MockUI) DisplayFileResult(stats m.FileStats) {
	mk.Called(stats)
}

// DisplaySummary mocks the final summary.
func (mk *MockUI) DisplaySummary(run m.RunStats) error {
	args := mk.Called(run)

	return args.Error(0)
}

// DisplayList mocks the scan-only listing.
func (mk *MockUI) DisplayList(counts []controller.FileCount) error {
	args := mk.Called(counts)

	return args.Error(0)
}
