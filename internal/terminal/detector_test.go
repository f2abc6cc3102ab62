package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForceInteractive(t *testing.T) {
	d := NewInteractiveDetector(DetectorOptions{ForceInteractive: true})
	assert.True(t, d.IsInteractive())
}

func TestForceNonInteractive(t *testing.T) {
	d := NewInteractiveDetector(DetectorOptions{ForceNonInteractive: true})
	assert.False(t, d.IsInteractive())
}

func TestCIEnvironmentDetection(t *testing.T) {
	t.Setenv("CI", "true")
	d := NewInteractiveDetector(DetectorOptions{})
	assert.True(t, d.IsCIEnvironment())
	assert.False(t, d.IsInteractive(), "CI environments are never interactive")
}
