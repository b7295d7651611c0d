package records

import "github.com/samber/lo"

// AvailableProducts returns the in-stock products, keeping their order.
func AvailableProducts(products []Product) []Product {
	return lo.Filter(products, func(p Product, _ int) bool {
		return p.InStock
	})
}

// CompletedTasks returns the tasks whose status is completed, keeping their order.
func CompletedTasks(tasks []Task) []Task {
	return WithStatus(tasks, StatusCompleted)
}

// WithStatus returns the tasks in the given state.
func WithStatus(tasks []Task, st Status) []Task {
	return lo.Filter(tasks, func(t Task, _ int) bool {
		return t.Status == st
	})
}

// Describe renders each record with its Describe method.
func Describe[T Describer](items []T) []string {
	return lo.Map(items, func(item T, _ int) string {
		return item.Describe()
	})
}
