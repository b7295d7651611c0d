package generics

import (
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// FindByID returns the first element of items whose GetID equals id, scanning
// in slice order. IDs are not assumed unique or sorted. When nothing matches it
// returns the zero value of T and false.
func FindByID[T Identifiable[K], K ID](items []T, id K) (T, bool) {
	return lo.Find(items, func(item T) bool {
		return item.GetID() == id
	})
}

// FindOption is FindByID with the result packed into a mo.Option.
func FindOption[T Identifiable[K], K ID](items []T, id K) mo.Option[T] {
	if item, ok := FindByID(items, id); ok {
		return mo.Some(item)
	}
	return mo.None[T]()
}
