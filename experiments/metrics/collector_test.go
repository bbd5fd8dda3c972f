package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts concurrently", func(t *testing.T) {
		c := NewCollector()
		c.Start(3, 8)
		c.SetCandidates(5)

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					c.AddNode()
					c.AddLeaf()
				}
				c.AddStalled()
			}()
		}
		wg.Wait()

		metric := c.Complete()
		require.Equal(t, 800, metric.Nodes)
		require.Equal(t, 800, metric.Leaves)
		require.Equal(t, 8, metric.Stalled)
		require.Equal(t, 5, metric.Candidates)
		require.Equal(t, 3, metric.Depth)
		require.Equal(t, 8, metric.Goroutines)
	})

	t.Run("start resets counters", func(t *testing.T) {
		c := NewCollector()
		c.Start(1, 1)
		c.AddNode()
		c.SetCaptured(true)

		c.Start(1, 1)

		require.Zero(t, c.Complete().Nodes)
		require.False(t, c.Complete().Captured)
	})

	t.Run("dummy collects nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(3, 1)
		c.AddNode()

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}
