// Package apperrors provides chained sentinel errors. A sentinel is created
// with New and specialised with New/Msg; wrapping causes with Err keeps both
// the sentinel and the causes reachable through errors.Is and errors.As.
package apperrors

import (
	"errors"
	"strings"
)

type Error interface {
	error
	// New derives a child sentinel. errors.Is(child, parent) holds.
	New(msg string) Error
	// Msg is New for one-off messages.
	Msg(msg string) Error
	// Err attaches causes while keeping the message.
	Err(err ...error) Error
	// MsgErr replaces the message and attaches causes.
	MsgErr(msg string, err ...error) Error
	SetStatusCode(code int) Error
	StatusCode() int
	// ErrorAll renders the message followed by every attached cause.
	ErrorAll() string
}

type appError struct {
	msg    string
	parent *appError
	causes []error
	status int
}

var _ Error = (*appError)(nil)

func New(msg string) Error {
	return &appError{msg: msg}
}

func (e *appError) Error() string {
	return e.msg
}

func (e *appError) Unwrap() []error {
	var errs []error
	if e.parent != nil {
		errs = append(errs, e.parent)
	}
	return append(errs, e.causes...)
}

func (e *appError) New(msg string) Error {
	return &appError{msg: msg, parent: e}
}

func (e *appError) Msg(msg string) Error {
	return e.New(msg)
}

func (e *appError) Err(err ...error) Error {
	return e.MsgErr(e.msg, err...)
}

func (e *appError) MsgErr(msg string, err ...error) Error {
	causes := make([]error, 0, len(err))
	for _, c := range err {
		if c != nil {
			causes = append(causes, c)
		}
	}
	return &appError{msg: msg, parent: e, causes: causes}
}

func (e *appError) SetStatusCode(code int) Error {
	e.status = code
	return e
}

func (e *appError) StatusCode() int {
	for p := e; p != nil; p = p.parent {
		if p.status != 0 {
			return p.status
		}
	}
	return 0
}

func (e *appError) ErrorAll() string {
	if len(e.causes) == 0 {
		return e.msg
	}
	parts := make([]string, 0, len(e.causes))
	for _, c := range e.causes {
		parts = append(parts, causeAll(c))
	}
	return e.msg + ": " + strings.Join(parts, "; ")
}

// causeAll renders one cause. A plain wrapper such as fmt.Errorf("%s: %w")
// keeps its own prefix; the wrapped Error contributes its causes.
func causeAll(c error) string {
	if ae, ok := c.(Error); ok {
		return ae.ErrorAll()
	}
	msg := c.Error()
	var ae Error
	if errors.As(c, &ae) && strings.HasSuffix(msg, ae.Error()) {
		return strings.TrimSuffix(msg, ae.Error()) + ae.ErrorAll()
	}
	return msg
}
