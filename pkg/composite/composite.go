// Package composite implements the Composite pattern over a tree of named, salaried entities.
//
// # Summary
//
// A composite deals with compound objects by exposing a uniform interface
// over heterogeneous, recursive members.
// Every Entity is either a Leaf with a fixed value or a Container
// whose value is the sum of its children.
//
// The tree can be traversed with an external Cursor,
// which visits a container before its descendants (pre-order),
// and siblings in the order they were added.
// The caller never needs to know whether the visited node is a leaf or a container.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Composite_pattern
// https://en.wikipedia.org/wiki/Iterator_pattern
package composite

import (
	"iter"
	"slices"

	"go.llib.dev/frameless/pkg/errorkit"
)

const (
	// ErrExhausted is returned when Cursor.Next is called while Cursor.HasNext reports false.
	ErrExhausted errorkit.Error = "composite: cursor is exhausted"
	// ErrInvalidStructure is returned when an Add would turn the tree into something else than a tree.
	ErrInvalidStructure errorkit.Error = "composite: invalid structure"
)

// Entity is a node of the composite tree.
// The set of implementations is closed, only *Leaf and *Container are Entities.
type Entity interface {
	Name() string
	// Value is the entity's contribution.
	// For a Leaf it is the stored scalar, for a Container it is the sum of its children.
	Value() int
	// Cursor returns a new traversal Cursor rooted at the entity.
	Cursor() Cursor

	node() *base
}

type base struct {
	name   string
	parent *Container
}

func (b *base) node() *base { return b }

func (b *base) Name() string { return b.name }

// Parent returns the Container which owns the entity.
func Parent(e Entity) (*Container, bool) {
	if isNil(e) {
		return nil, false
	}
	p := e.node().parent
	return p, p != nil
}

func NewLeaf(name string, value int) *Leaf {
	return &Leaf{base: base{name: name}, value: value}
}

// Leaf is a terminal Entity with a fixed value.
type Leaf struct {
	base
	value int
}

func (l *Leaf) Value() int { return l.value }

func (l *Leaf) Cursor() Cursor { return &leafCursor{leaf: l} }

func NewContainer(name string) *Container {
	return &Container{base: base{name: name}}
}

// Container is an Entity that owns an ordered list of child entities.
type Container struct {
	base
	children []Entity
}

func (c *Container) Value() int {
	var total int
	for _, child := range c.children {
		total += child.Value()
	}
	return total
}

func (c *Container) Cursor() Cursor {
	return &containerCursor{
		container: c,
		children:  slices.Clip(c.children),
		position:  beforeSelf,
	}
}

// Add appends the children to the container, which takes their ownership.
//
// Add is atomic, when any of the children would break the tree,
// none of them is added and ErrInvalidStructure is returned.
// A child is rejected when it is nil, when it already has a parent,
// when it is passed twice, or when it is the container itself or one of its ancestors.
func (c *Container) Add(children ...Entity) error {
	for i, child := range children {
		if err := c.canAdopt(child, children[:i]); err != nil {
			return err
		}
	}
	for _, child := range children {
		child.node().parent = c
		c.children = append(c.children, child)
	}
	return nil
}

func (c *Container) canAdopt(child Entity, pending []Entity) error {
	if isNil(child) {
		return ErrInvalidStructure.F("nil child for %q", c.name)
	}
	if p := child.node().parent; p != nil {
		return ErrInvalidStructure.F("%q is already owned by %q", child.Name(), p.name)
	}
	if slices.Contains(pending, child) {
		return ErrInvalidStructure.F("%q is added more than once to %q", child.Name(), c.name)
	}
	if ct, ok := child.(*Container); ok {
		for ancestor := c; ancestor != nil; ancestor = ancestor.parent {
			if ancestor == ct {
				return ErrInvalidStructure.F("adding %q to %q would form a cycle", ct.name, c.name)
			}
		}
	}
	return nil
}

// Len returns the number of direct children.
func (c *Container) Len() int { return len(c.children) }

// At returns the i-th direct child.
// It panics when i is out of range, like indexing a slice.
func (c *Container) At(i int) Entity { return c.children[i] }

// Children iterates over the direct children in insertion order.
func (c *Container) Children() iter.Seq[Entity] {
	return slices.Values(c.children)
}

func isNil(e Entity) bool {
	switch e := e.(type) {
	case nil:
		return true
	case *Leaf:
		return e == nil
	case *Container:
		return e == nil
	default:
		return false
	}
}
