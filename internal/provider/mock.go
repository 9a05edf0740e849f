package provider

import "context"

// MockGenerator is a mock implementation of Generator for testing
type MockGenerator struct {
	// Mock return values
	GenerateVal string
	GenerateErr error
	CloseErr    error

	// Call counters/recorders
	GenerateCalled int
	CloseCalled    bool
	LastPrompt     string
}

// Ensure MockGenerator implements Generator
var _ Generator = (*MockGenerator)(nil)

func (m *MockGenerator) Generate(_ context.Context, prompt string) (string, error) {
	m.GenerateCalled++
	m.LastPrompt = prompt
	if m.GenerateErr != nil {
		return "", m.GenerateErr
	}
	return m.GenerateVal, nil
}

func (m *MockGenerator) Close() error {
	m.CloseCalled = true
	return m.CloseErr
}
