package records

import (
	"errors"
	"fmt"
)

// Status is the closed set of task states.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

// ErrUnknownStatus is returned by ParseStatus for anything outside the set.
var ErrUnknownStatus = errors.New("unknown task status")

// ParseStatus validates s against the known states.
func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusCompleted, StatusCanceled:
		return st, nil
	default:
		return "", fmt.Errorf("parse status %q: %w", s, ErrUnknownStatus)
	}
}

// UnmarshalText rejects unknown states when decoding JSON or config.
func (s *Status) UnmarshalText(b []byte) error {
	st, err := ParseStatus(string(b))
	if err != nil {
		return err
	}
	*s = st
	return nil
}
