package formatter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSpinnerStaticModePrintsMessageOnce(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner(&buf, false, "Training model...")

	s.Start()
	s.Stop()
	s.Stop()

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "Training model..."))
	assert.NotContains(t, out, "\r")
}

func TestSpinnerFramesCycleAndShowElapsedWhenSlow(t *testing.T) {
	s := newSpinner(&bytes.Buffer{}, true, "Generating alternatives...")

	first := s.line(0, 0)
	second := s.line(1, 0)
	assert.Contains(t, first, "Generating alternatives...")
	assert.NotEqual(t, first, second)
	assert.NotContains(t, first, "3s")

	slow := s.line(2, 3*time.Second)
	assert.Contains(t, slow, "3s")
}

func TestSpinnerAnimatedStopClearsLine(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner(&buf, true, "Fetching resources...")

	s.Start()
	s.Stop()

	assert.Contains(t, buf.String(), "\033[K")
}
