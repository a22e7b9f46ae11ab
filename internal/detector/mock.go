package detector

import (
	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/landmark"
)

// MockDetector is a test implementation of the Detector interface that
// returns pre-configured hand frames.
type MockDetector struct {
	frame landmark.HandFrame
	err   error
}

// NewMockDetector creates a MockDetector that reports no hands.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetFrame sets the hand frame returned by Detect.
func (m *MockDetector) SetFrame(frame landmark.HandFrame) {
	m.frame = frame
}

// SetError sets the error returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured frame or error.
func (m *MockDetector) Detect(frame *gocv.Mat) (landmark.HandFrame, error) {
	if m.err != nil {
		return landmark.HandFrame{}, m.err
	}
	return m.frame, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}
