package fixtures_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/patterns/fixtures"
	"github.com/adamluzsi/patterns/pkg/composite"
)

func TestNewTree_RootIsRecordedFirst(t *testing.T) {
	t.Parallel()

	tree := fixtures.NewTree(fixtures.TreeConfig{})

	require.NotEmpty(t, tree.PreOrder)
	require.Equal(t, composite.Entity(tree.Root), tree.PreOrder[0])
}

func TestNewTree_LeafSumMatchesTheRecordedLeaves(t *testing.T) {
	t.Parallel()

	for i := 0; i < 42; i++ {
		tree := fixtures.NewTree(fixtures.TreeConfig{MaxDepth: 4, MaxWidth: 3})

		var sum int
		for _, e := range tree.PreOrder {
			if l, ok := e.(*composite.Leaf); ok {
				sum += l.Value()
			}
		}
		require.Equal(t, tree.LeafSum, sum)
	}
}

func TestNewTree_RespectsMaxWidth(t *testing.T) {
	t.Parallel()

	const maxWidth = 2
	tree := fixtures.NewTree(fixtures.TreeConfig{MaxWidth: maxWidth})

	for _, e := range tree.PreOrder {
		if ct, ok := e.(*composite.Container); ok {
			require.LessOrEqual(t, ct.Len(), maxWidth)
		}
	}
}

func TestRandomSalary_NonNegative(t *testing.T) {
	t.Parallel()

	for i := 0; i < 42; i++ {
		require.True(t, 0 <= fixtures.RandomSalary())
	}
}

func TestRandomName_NotEmpty(t *testing.T) {
	t.Parallel()

	require.NotEmpty(t, fixtures.RandomName())
}

func TestNewTree_ConcurrentUse(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tree := fixtures.NewTree(fixtures.TreeConfig{MaxDepth: 2})
			assert.Equal(t, len(tree.PreOrder), composite.Count(tree.Root))
		}()
	}
	wg.Wait()
}

func TestRandomNumber_WithinRange(t *testing.T) {
	t.Parallel()

	for i := 0; i < 42; i++ {
		n := fixtures.RandomNumber(0, 3)
		require.True(t, 0 <= n && n < 3)
	}
}
