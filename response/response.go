// Package response provides Response[T], the result of an API-style call:
// either a success carrying a payload of type T or a failure carrying a
// message. No other combination can be built.
//
// Over the wire a Response is the familiar envelope:
//
//	{"success": true,  "data": {...}}
//	{"success": false, "error": "user not found"}
package response

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/samber/mo"
)

// ErrMalformed is returned when decoding an envelope that is neither a valid
// success nor a valid failure.
var ErrMalformed = errors.New("malformed response envelope")

// Response is a success-or-failure sum type. Build one with Success or
// Failure; the zero value is a success carrying the zero T.
type Response[T any] struct {
	v mo.Either[string, T]
}

// Success wraps a payload.
func Success[T any](data T) Response[T] {
	return Response[T]{v: mo.Right[string, T](data)}
}

// Failure wraps a message.
func Failure[T any](message string) Response[T] {
	return Response[T]{v: mo.Left[string, T](message)}
}

// FromOption turns Some(v) into Success(v) and None into Failure(message).
func FromOption[T any](opt mo.Option[T], message string) Response[T] {
	if v, ok := opt.Get(); ok {
		return Success(v)
	}
	return Failure[T](message)
}

// FromError returns Failure(err.Error()) for a non-nil err and Success(data)
// otherwise.
func FromError[T any](data T, err error) Response[T] {
	if err != nil {
		return Failure[T](err.Error())
	}
	return Success(data)
}

func (r Response[T]) OK() bool { return r.v.IsRight() }

// Data returns the payload of a success.
func (r Response[T]) Data() (T, bool) { return r.v.Right() }

// Message returns the message of a failure.
func (r Response[T]) Message() (string, bool) { return r.v.Left() }

// Get converts the response back into Go's (value, error) form. A failure
// yields a *Error holding its message.
func (r Response[T]) Get() (T, error) {
	if msg, failed := r.v.Left(); failed {
		var zero T
		return zero, &Error{Message: msg}
	}
	return r.v.MustRight(), nil
}

// Match calls exactly one of the two functions.
func (r Response[T]) Match(onSuccess func(T), onFailure func(string)) {
	if msg, failed := r.v.Left(); failed {
		onFailure(msg)
		return
	}
	onSuccess(r.v.MustRight())
}

func (r Response[T]) String() string {
	if msg, failed := r.v.Left(); failed {
		return fmt.Sprintf("failure(%s)", msg)
	}
	return fmt.Sprintf("success(%v)", r.v.MustRight())
}

// Error is the error form of a failed Response.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

// ── JSON envelope ────────────────────────────────────────────────────────────

type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *string         `json:"error,omitempty"`
}

func (r Response[T]) MarshalJSON() ([]byte, error) {
	if msg, failed := r.v.Left(); failed {
		return json.Marshal(struct {
			Success bool   `json:"success"`
			Error   string `json:"error"`
		}{false, msg})
	}
	return json.Marshal(struct {
		Success bool `json:"success"`
		Data    T    `json:"data"`
	}{true, r.v.MustRight()})
}

func (r *Response[T]) UnmarshalJSON(b []byte) error {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}

	switch {
	case env.Success == nil:
		return fmt.Errorf("%w: missing success field", ErrMalformed)

	case *env.Success:
		if env.Data == nil || env.Error != nil {
			return fmt.Errorf("%w: success must carry data and no error", ErrMalformed)
		}
		var data T
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
		*r = Success(data)

	default:
		if env.Error == nil || env.Data != nil {
			return fmt.Errorf("%w: failure must carry an error and no data", ErrMalformed)
		}
		*r = Failure[T](*env.Error)
	}
	return nil
}
