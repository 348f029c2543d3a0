package inventory

// Collection is an append-only, insertion-ordered sequence. Composites use
// it for their child lists; there is no removal and no keyed access, so a
// plain slice with linear lookup is all it needs.
type Collection[T comparable] struct {
	items []T
}

// Add appends an element.
func (c *Collection[T]) Add(elem T) {
	c.items = append(c.items, elem)
}

// Find returns the stored element equal to elem, or ErrNotFound.
func (c *Collection[T]) Find(elem T) (T, error) {
	for _, item := range c.items {
		if item == elem {
			return item, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// Items returns the elements in insertion order. The returned slice is a
// copy; appends to it do not affect the collection.
func (c *Collection[T]) Items() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of elements.
func (c *Collection[T]) Len() int {
	return len(c.items)
}
