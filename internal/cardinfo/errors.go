package cardinfo

import (
	"errors"
	"fmt"
	"strings"
)

// GenericMessage is shown to the user for every diagnostic (non user-facing) error.
const GenericMessage = "Something went wrong! try again"

// Kind классифицирует ошибку: показывать ли её текст пользователю.
type Kind uint8

const (
	// KindOther - диагностическая ошибка, пользователь видит GenericMessage.
	KindOther Kind = iota
	// KindInvalidInput - ожидаемая ошибка ввода, текст показывается как есть.
	KindInvalidInput
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	default:
		return "other"
	}
}

// Error is one layer of a card lookup failure: its own message plus an optional cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

// Error returns only this layer's message; use Chain for the causes.
func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Err }

// InvalidInput builds a user-facing error.
func InvalidInput(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidInput, Msg: fmt.Sprintf(format, args...)}
}

// Wrap adds context to err and tags the result as diagnostic.
func Wrap(err error, format string, args ...any) *Error {
	return &Error{Kind: KindOther, Msg: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the Kind of the outermost *Error in err, KindOther if there is none.
// Inner layers do not matter: a wrapper re-tags everything below it.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindOther
}

// UserMessage is the shallow renderer: the outermost layer's message when it is
// user-facing, GenericMessage otherwise.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindInvalidInput {
		return e.Msg
	}
	return GenericMessage
}

// Chain returns the message of every layer, outermost first.
// Layers produced by fmt.Errorf("...: %w") contribute only their own prefix.
// For fmt.Errorf("%w: %w") the walk continues into the last wrapped error.
func Chain(err error) []string {
	var out []string
	for err != nil {
		next := unwrapLast(err)
		msg := err.Error()
		if next != nil {
			msg = strings.TrimSuffix(msg, ": "+next.Error())
		}
		out = append(out, msg)
		err = next
	}
	return out
}

func unwrapLast(err error) error {
	if u, ok := err.(interface{ Unwrap() []error }); ok {
		errs := u.Unwrap()
		if len(errs) == 0 {
			return nil
		}
		return errs[len(errs)-1]
	}
	return errors.Unwrap(err)
}

// FormatChain renders the full chain for logs:
//
//	top message
//
//	Caused by:
//	    0: cause
//	    1: root cause
func FormatChain(err error) string {
	chain := Chain(err)
	if len(chain) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(chain[0])
	if len(chain) == 1 {
		return b.String()
	}
	b.WriteString("\n\nCaused by:")
	for i, msg := range chain[1:] {
		fmt.Fprintf(&b, "\n    %d: %s", i, msg)
	}
	return b.String()
}
