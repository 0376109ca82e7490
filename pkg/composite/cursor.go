package composite

import (
	"iter"

	"go.llib.dev/frameless/pkg/iterkit"
)

// Cursor is an external iterator over an Entity and its descendants in pre-order.
//
// A Cursor holds a non-owning reference to the tree it traverses and never mutates it.
// A container cursor takes a snapshot of the container's direct children when it is created,
// changing the tree while a traversal is in progress is not supported.
// A Cursor is meant for a single traversal at a time, it is not safe for concurrent use.
type Cursor interface {
	// Reset returns the cursor to its initial state, as if it were freshly created.
	Reset()
	// HasNext reports whether Next has at least one more Entity to return.
	HasNext() bool
	// Next returns the next Entity and advances the cursor.
	// When the cursor is exhausted, Next returns ErrExhausted and keeps its state.
	Next() (Entity, error)
}

type leafCursor struct {
	leaf *Leaf
	done bool
}

func (c *leafCursor) Reset() { c.done = false }

func (c *leafCursor) HasNext() bool { return !c.done }

func (c *leafCursor) Next() (Entity, error) {
	if c.done {
		return nil, ErrExhausted
	}
	c.done = true
	return c.leaf, nil
}

const beforeSelf = -1

type containerCursor struct {
	container *Container
	children  []Entity
	// position is beforeSelf until the container itself is returned,
	// then the index of the active child cursor.
	// When it equals len(children), the cursor is done.
	position int
	// cursors are created on demand, the first time their child becomes active.
	cursors []Cursor
}

func (c *containerCursor) Reset() {
	c.position = beforeSelf
	for _, cur := range c.cursors {
		cur.Reset()
	}
}

func (c *containerCursor) HasNext() bool {
	if c.position == beforeSelf {
		return true
	}
	for i := c.position; i < len(c.children); i++ {
		if c.cursor(i).HasNext() {
			return true
		}
	}
	return false
}

func (c *containerCursor) Next() (Entity, error) {
	if c.position == beforeSelf {
		c.position = 0
		return c.container, nil
	}
	for ; c.position < len(c.children); c.position++ {
		if cur := c.cursor(c.position); cur.HasNext() {
			return cur.Next()
		}
	}
	return nil, ErrExhausted
}

func (c *containerCursor) cursor(i int) Cursor {
	for len(c.cursors) <= i {
		c.cursors = append(c.cursors, c.children[len(c.cursors)].Cursor())
	}
	return c.cursors[i]
}

// Walk iterates over e and all of its descendants in pre-order.
// Every range over the returned sequence uses a fresh Cursor.
func Walk(e Entity) iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for v := range iterkit.FromPull(pull(e.Cursor())) {
			if !yield(v) {
				return
			}
		}
	}
}

// WalkWithDepth is like Walk, but yields each entity together with its depth relative to e.
// e itself has the depth of zero.
func WalkWithDepth(e Entity) iter.Seq2[int, Entity] {
	return func(yield func(int, Entity) bool) {
		for v := range Walk(e) {
			if !yield(Depth(e, v), v) {
				return
			}
		}
	}
}

// Count returns the number of entities in the tree rooted at e, containers included.
func Count(e Entity) int {
	return iterkit.Count(Walk(e))
}

func pull(c Cursor) func() (Entity, bool) {
	return func() (Entity, bool) {
		if !c.HasNext() {
			return nil, false
		}
		v, err := c.Next()
		return v, err == nil
	}
}

// Depth returns how many containers separate e from root.
// When e is not a descendant of root, it is the depth of e in its own tree.
func Depth(root, e Entity) int {
	var n int
	for e != root {
		p, ok := Parent(e)
		if !ok {
			break
		}
		e = p
		n++
	}
	return n
}
