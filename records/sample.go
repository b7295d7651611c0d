package records

import (
	"time"

	"github.com/samber/mo"
)

// ── Exercise data sets ───────────────────────────────────────────────────────
// Each call returns a fresh slice, so callers may modify it freely.

func SampleUsers() []User {
	return []User{
		{ID: 1, Name: "Alice", Email: "alice@example.com", Age: mo.None[int]()},
		{ID: 2, Name: "Bob", Email: "bob@example.com", Age: mo.Some(30)},
	}
}

func SampleProducts() []Product {
	return []Product{
		{ID: 101, Name: "Laptop", Price: 89800, Category: "electronics", InStock: true},
		{ID: 102, Name: "Mouse", Price: 2980, Category: "electronics", InStock: false},
	}
}

func SampleTasks() []Task {
	return []Task{
		{
			ID:      1,
			Title:   "Write report",
			Status:  StatusPending,
			DueDate: mo.Some(time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)),
		},
		{ID: 2, Title: "Prepare meeting", Status: StatusCompleted, DueDate: mo.None[time.Time]()},
		{ID: 3, Title: "Slide deck", Status: StatusCanceled, DueDate: mo.None[time.Time]()},
	}
}

func SampleProfiles() []Profile {
	return []Profile{
		{Name: "Hanako", Email: mo.None[string](), Phone: mo.None[string]()},
		{Name: "Taro", Email: mo.Some("taro@example.com"), Phone: mo.Some("123-4567-890")},
	}
}
