package model

import "strings"

// Entity is a value with a caller-supplied id that can be deep-copied.
type Entity[T any] interface {
	EntityID() string
	Clone() T
}

// Collection is an ordered sequence of entities keyed by id.
// It performs no validation; callers check invariants before Add/Update.
type Collection[T Entity[T]] struct {
	items []T
}

// NewCollection wraps items, copying them.
func NewCollection[T Entity[T]](items []T) *Collection[T] {
	c := &Collection[T]{items: make([]T, 0, len(items))}
	for _, it := range items {
		c.items = append(c.items, it.Clone())
	}
	return c
}

// Add appends e. An entity whose id is already present is ignored and
// Add reports false.
func (c *Collection[T]) Add(e T) bool {
	if c.index(e.EntityID()) >= 0 {
		return false
	}
	c.items = append(c.items, e.Clone())
	return true
}

// Remove drops the entity with the given id. Absent ids are a no-op.
func (c *Collection[T]) Remove(id string) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return true
}

// Update applies fn to the entity with the given id. Absent ids are a no-op.
func (c *Collection[T]) Update(id string, fn func(*T)) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	fn(&c.items[i])
	return true
}

// Get returns a copy of the entity with the given id.
func (c *Collection[T]) Get(id string) (T, bool) {
	i := c.index(id)
	if i < 0 {
		var zero T
		return zero, false
	}
	return c.items[i].Clone(), true
}

// All returns a deep copy of the collection in insertion order.
func (c *Collection[T]) All() []T {
	out := make([]T, len(c.items))
	for i, it := range c.items {
		out[i] = it.Clone()
	}
	return out
}

// Len returns the number of entities.
func (c *Collection[T]) Len() int { return len(c.items) }

func (c *Collection[T]) index(id string) int {
	for i, it := range c.items {
		if it.EntityID() == id {
			return i
		}
	}
	return -1
}

// AppendUnique trims v and appends it unless it is empty or already present.
func AppendUnique(list []string, v string) ([]string, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return list, false
	}
	for _, x := range list {
		if x == v {
			return list, false
		}
	}
	return append(list, v), true
}

// UniqueStrings folds list through AppendUnique: values are trimmed, and
// empty and repeated values are dropped. The result is never nil.
func UniqueStrings(list []string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		out, _ = AppendUnique(out, v)
	}
	return out
}
