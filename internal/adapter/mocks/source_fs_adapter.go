// Package mocks provides testify mocks for the adapter interfaces.
package mocks

import (
	"os"

	"github.com/stretchr/testify/mock"

	"github.com/sweeplab/logsweep/internal/config"
	m "github.com/sweeplab/logsweep/internal/model"
)

// MockSourceFSAdapter is a mock implementation of adapter.SourceFSAdapter.
type MockSourceFSAdapter struct {
	mock.Mock
}

// NewMockSourceFSAdapter creates a mock wired to the test's lifecycle.
func NewMockSourceFSAdapter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSourceFSAdapter {
	mk := &MockSourceFSAdapter{}
	mk.Mock.Test(t)

	t.Cleanup(func() { mk.AssertExpectations(t) })

	return mk
}

// Get mocks the candidate file enumeration.
func (mk *MockSourceFSAdapter) Get(roots []m.Path, rules config.Rules) ([]m.Path, error) {
	args := mk.Called(roots, rules)

	var r0 []m.Path
	if args.Get(0) != nil {
		r0 = args.Get(0).([]m.Path)
	}

	return r0, args.Error(1)
}

// ReadFile mocks reading a file.
func (mk *MockSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	args := mk.Called(path)

	var r0 []byte
	if args.Get(0) != nil {
		r0 = args.Get(0).([]byte)
	}

	return r0, args.Error(1)
}

// WriteFile mocks overwriting a file.
func (mk *MockSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	args := mk.Called(path, content, perm)

	return args.Error(0)
}

// FileInfo mocks stat.
func (mk *MockSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	args := mk.Called(path)

	var r0 os.FileInfo
	if args.Get(0) != nil {
		r0 = args.Get(0).(os.FileInfo)
	}

	return r0, args.Error(1)
}
