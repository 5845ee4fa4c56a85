package reembed

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressTracker(t *testing.T) {
	t.Run("reports at intervals", func(t *testing.T) {
		var out bytes.Buffer
		tracker := NewProgressTracker(&out, 10, 5)

		tracker.Increment(3)
		assert.Empty(t, out.String())

		tracker.Increment(2)
		assert.Contains(t, out.String(), "5/10")
	})

	t.Run("caps at total", func(t *testing.T) {
		var out bytes.Buffer
		tracker := NewProgressTracker(&out, 4, 1)

		tracker.Increment(10)
		assert.Equal(t, 4, tracker.Current())
	})

	t.Run("finish reports final count", func(t *testing.T) {
		var out bytes.Buffer
		tracker := NewProgressTracker(&out, 7, 100)

		tracker.Increment(3)
		tracker.Finish()
		assert.Contains(t, out.String(), "7/7")
	})
}
