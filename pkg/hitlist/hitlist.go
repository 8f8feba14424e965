// Package hitlist keeps an ordered stack of rectangular items and answers
// "what is under this point" with the topmost one.
package hitlist

import "github.com/wesen/rectedit/pkg/rectedit"

// Spatial is anything with world-space bounds.
type Spatial interface {
	Bounds() rectedit.Rect
}

// Item wraps a value with the ID it was pushed under.
type Item[T Spatial] struct {
	ID   int
	Data T
}

// List is a z-ordered stack: later items sit on top of earlier ones.
type List[T Spatial] struct {
	items []Item[T]
}

// New creates an empty list.
func New[T Spatial]() *List[T] {
	return &List[T]{}
}

// Push places data on top under id. Pushing an existing id replaces its
// data and moves it to the top.
func (l *List[T]) Push(id int, data T) {
	l.Remove(id)
	l.items = append(l.items, Item[T]{ID: id, Data: data})
}

// Remove drops the item with id, if present.
func (l *List[T]) Remove(id int) {
	for i, it := range l.items {
		if it.ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return
		}
	}
}

// Clear removes all items.
func (l *List[T]) Clear() { l.items = l.items[:0] }

// Len returns the number of items.
func (l *List[T]) Len() int { return len(l.items) }

// Items returns the items bottom to top.
func (l *List[T]) Items() []Item[T] { return l.items }

// HitTest returns the topmost item whose bounds contain pt.
func (l *List[T]) HitTest(pt rectedit.Vec2) (Item[T], bool) {
	for i := len(l.items) - 1; i >= 0; i-- {
		if l.items[i].Data.Bounds().Contains(pt) {
			return l.items[i], true
		}
	}
	return Item[T]{}, false
}
