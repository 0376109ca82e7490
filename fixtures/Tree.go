// Package fixtures creates randomised composite trees for testing.
//
// With fixtures, it becomes easy to write property style tests,
// where the test cases do not depend on a hand-picked tree shape.
package fixtures

import (
	"sync"

	"github.com/Pallinder/go-randomdata"

	"github.com/adamluzsi/patterns/pkg/composite"
)

// Tree is a randomly generated composite tree,
// together with the facts that were recorded while it was built.
type Tree struct {
	Root *composite.Container
	// PreOrder is every entity in the order a pre-order traversal must visit them.
	PreOrder []composite.Entity
	// LeafSum is the sum of every leaf value in the tree.
	LeafSum int
}

type TreeConfig struct {
	// MaxDepth is the maximum nesting of containers below the root.
	// Default is 3.
	MaxDepth int
	// MaxWidth is the maximum number of children a container may have.
	// Default is 5.
	MaxWidth int
}

func (c TreeConfig) maxDepth() int {
	if c.MaxDepth <= 0 {
		return 3
	}
	return c.MaxDepth
}

func (c TreeConfig) maxWidth() int {
	if c.MaxWidth <= 0 {
		return 5
	}
	return c.MaxWidth
}

// NewTree builds a random tree.
// The root is always a container, and empty containers are generated as well.
func NewTree(c TreeConfig) Tree {
	var t Tree
	t.Root = t.container(c, 0)
	return t
}

func (t *Tree) container(c TreeConfig, depth int) *composite.Container {
	ct := composite.NewContainer(RandomName())
	t.PreOrder = append(t.PreOrder, ct)
	width := RandomNumber(0, c.maxWidth()+1)
	for i := 0; i < width; i++ {
		var child composite.Entity
		if depth < c.maxDepth() && RandomBool() {
			child = t.container(c, depth+1)
		} else {
			child = t.leaf()
		}
		if err := ct.Add(child); err != nil {
			panic(err.Error())
		}
	}
	return ct
}

func (t *Tree) leaf() *composite.Leaf {
	l := composite.NewLeaf(RandomName(), RandomSalary())
	t.PreOrder = append(t.PreOrder, l)
	t.LeafSum += l.Value()
	return l
}

var mutex sync.Mutex

// RandomName returns a random entity name.
func RandomName() string {
	mutex.Lock()
	defer mutex.Unlock()
	return randomdata.SillyName()
}

// RandomNumber returns a random number in the [min, max) range.
func RandomNumber(min, max int) int {
	mutex.Lock()
	defer mutex.Unlock()
	return randomdata.Number(min, max)
}

func RandomBool() bool {
	mutex.Lock()
	defer mutex.Unlock()
	return randomdata.Boolean()
}

// RandomSalary returns a random non-negative salary.
func RandomSalary() int {
	return RandomNumber(0, 1000000)
}
