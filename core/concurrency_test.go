// Package core_test verifies thread-safety of SearchSpace under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/astarlab/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddLink ensures concurrent AddLink calls from a hub all land.
func TestConcurrentAddLink(t *testing.T) {
	s := core.NewSearchSpace()
	_, err := s.AddNode("X", core.Position{})
	require.NoError(t, err)

	const num = 200
	for i := 0; i < num; i++ {
		_, err = s.AddNode(fmt.Sprintf("V%d", i), core.Position{X: float64(i)})
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, num)
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := s.AddLink("X", fmt.Sprintf("V%d", id))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	children, err := s.Children("X")
	require.NoError(t, err)
	require.Len(t, children, num)
	require.NoError(t, s.Validate())
}

// TestConcurrentToggleWhileReading flips flags and positions while readers enumerate.
func TestConcurrentToggleWhileReading(t *testing.T) {
	s := newDiamond(t)
	var wg sync.WaitGroup
	const rounds = 500

	wg.Add(3)
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			_ = s.SetLinkEnabled(LabelA, LabelG, i%2 == 0)
			_ = s.SetNodeEnabled(LabelB, i%3 != 0)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			_ = s.MoveNode(LabelG, core.Position{X: float64(i), Y: 1})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			_ = s.Stats()
			_ = s.EnabledView()
		}
	}()
	wg.Wait()

	require.Equal(t, 4, s.NodeCount())
}
