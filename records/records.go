// Package records defines the exercise record types. Users, products and
// tasks carry an int ID and satisfy generics.Identifiable[int], so one
// generics.FindByID serves all of them.
package records

import (
	"fmt"
	"time"

	"github.com/samber/mo"
)

// Describer is implemented by every record that can print itself on one line.
type Describer interface {
	Describe() string
}

// User is an account. Age is optional.
type User struct {
	ID    int            `json:"id"`
	Name  string         `json:"name"`
	Email string         `json:"email"`
	Age   mo.Option[int] `json:"age"`
}

func (u User) GetID() int { return u.ID }

// Info formats the user the way a profile page header does.
func (u User) Info() string {
	return fmt.Sprintf("ID: %d, Name: %s, Email: %s", u.ID, u.Name, u.Email)
}

func (u User) Describe() string {
	if age, ok := u.Age.Get(); ok {
		return fmt.Sprintf("%s, Age: %d", u.Info(), age)
	}
	return u.Info()
}

// Product is a catalog entry. Price is in yen.
type Product struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Category string `json:"category"`
	InStock  bool   `json:"inStock"`
}

func (p Product) GetID() int { return p.ID }

func (p Product) Describe() string { return fmt.Sprintf("%s: ¥%d", p.Name, p.Price) }

// Task is a to-do item with an optional due date.
type Task struct {
	ID      int                  `json:"id"`
	Title   string               `json:"title"`
	Status  Status               `json:"status"`
	DueDate mo.Option[time.Time] `json:"dueDate"`
}

func (t Task) GetID() int { return t.ID }

func (t Task) Describe() string {
	if due, ok := t.DueDate.Get(); ok {
		return fmt.Sprintf("#%d %s [%s] due %s", t.ID, t.Title, t.Status, due.Format(time.DateOnly))
	}
	return fmt.Sprintf("#%d %s [%s]", t.ID, t.Title, t.Status)
}

// Profile is a contact card. Only Name is required.
type Profile struct {
	Name  string            `json:"name"`
	Email mo.Option[string] `json:"email"`
	Phone mo.Option[string] `json:"phone"`
}

func (p Profile) Describe() string {
	return fmt.Sprintf("%s <%s> %s",
		p.Name, p.Email.OrElse("no email"), p.Phone.OrElse("no phone"))
}
