package generics

import "golang.org/x/exp/constraints"

// ── ID — integer identifier kinds ─────────────────────────────────────────────
// ~int, ~int64, ~uint32, ... including defined types such as `type UserID int`.

type ID interface {
	constraints.Integer
}

// ── Identifiable — method constraint ─────────────────────────────────────────
// Go constraints cannot require a struct field, so the "has an id" capability
// is a method. A type satisfies Identifiable[K] only if it has GetID() K:
//
//	type User struct{ ID int }
//	func (u User) GetID() int { return u.ID }

type Identifiable[K ID] interface {
	GetID() K
}
