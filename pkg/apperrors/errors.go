package apperrors

import (
	"errors"
	"strings"
)

// Error is a chained application error. Errors derived from a parent with New
// or Msg match the parent through errors.Is.
type Error interface {
	error
	Unwrap() []error
	New(msg string) Error
	Msg(msg string) Error
	MsgErr(msg string, err ...error) Error
	Err(err ...error) Error
	SetStatusCode(code int) Error
	StatusCode() int
	SetExpandError(expand bool) Error
	ErrorAll() string
}

// appError implements the Error interface
type appError struct {
	msg        string
	parent     *appError
	causes     []error
	statusCode int
	expand     bool
}

var _ Error = (*appError)(nil)

func New(msg string) Error {
	return &appError{
		msg: msg,
	}
}

func (e *appError) Error() string {
	if !e.expand || len(e.causes) == 0 {
		return e.msg
	}
	return e.msg + ": " + joinCauses(e.causes)
}

func (e *appError) Unwrap() []error {
	var errs []error
	if e.parent != nil {
		errs = append(errs, e.parent)
	}
	return append(errs, e.causes...)
}

// New derives a child error. Status code and expansion are inherited.
func (e *appError) New(msg string) Error {
	return &appError{
		msg:        msg,
		parent:     e,
		statusCode: e.statusCode,
		expand:     e.expand,
	}
}

func (e *appError) Msg(msg string) Error {
	return e.New(msg)
}

func (e *appError) MsgErr(msg string, err ...error) Error {
	c := e.New(msg).(*appError)
	c.causes = nonNil(err)
	return c
}

func (e *appError) Err(err ...error) Error {
	c := e.New(e.msg).(*appError)
	c.causes = nonNil(err)
	return c
}

func (e *appError) SetStatusCode(code int) Error {
	e.statusCode = code
	return e
}

func (e *appError) StatusCode() int {
	return e.statusCode
}

func (e *appError) SetExpandError(expand bool) Error {
	e.expand = expand
	return e
}

// ErrorAll returns the message along with every cause, regardless of expansion.
func (e *appError) ErrorAll() string {
	if len(e.causes) == 0 {
		return e.msg
	}
	return e.msg + ": " + joinCauses(e.causes)
}

func joinCauses(errs []error) string {
	s := make([]string, 0, len(errs))
	for _, err := range errs {
		var ae Error
		if errors.As(err, &ae) {
			s = append(s, ae.ErrorAll())
			continue
		}
		s = append(s, err.Error())
	}
	return strings.Join(s, "; ")
}

func nonNil(errs []error) []error {
	var out []error
	for _, err := range errs {
		if err != nil {
			out = append(out, err)
		}
	}
	return out
}
