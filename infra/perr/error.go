package perr

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// PermitError lets us figure out if this is a wrapped error
type PermitError interface {
	BaseError() string
	Error() string // include this so PermitError implements error for erroras linter
	Friendly() string
	FriendlyStructure() interface{}
}

type permitError struct {
	text      string      // this is intended for internal use
	friendly  string      // (optional) this will get propagated to the user (or developer-user)
	structure interface{} // if non-nil, then FriendlyStructure() will return a marshalable struct as its value

	underlying error

	function string
	filename string
	line     int
}

// Option defines a way to modify perr behavior
type Option interface {
	apply(*options)
}

type options struct {
	skipFrames int
}

type optFunc func(*options)

func (o optFunc) apply(os *options) {
	o(os)
}

var errorWrappingSuffix = ": %w"
var wrappedText = "(wrapped)"

const repoRoot = "permit-golang/"

// Return a path relative to the repo root, assuming the repo is cloned into
// the default directory. If the path is not within the repo, return it unmodified.
func repoRelativePath(s string) string {
	if idx := strings.LastIndex(s, repoRoot); idx >= 0 {
		return s[idx+len(repoRoot):]
	}
	return s
}

// Given a fully qualified go function name "pkgname.[type].func",
// return "func" (or return string unchanged if no period found).
func funcName(s string) string {
	if idx := strings.LastIndex(s, "."); idx >= 0 {
		return s[idx+1:]
	}
	return s
}

// BaseError implements PermitError
// Just return the error message(s), no stack trace
func (e permitError) BaseError() string {
	var msg string
	// keep unwrapping until we're at the bottom of the wrapped stack,
	// and start with the error message from the original error
	var pe PermitError
	if errors.As(e.underlying, &pe) {
		msg = pe.BaseError()
	} else if e.underlying != nil {
		msg = e.underlying.Error()
	}

	// if the bottom of the stack is just wrapping a non-PermitError, don't show (wrapped)
	t := e.text
	if t == wrappedText {
		t = ""
	}

	// if the bottom of the stack was a perr.New(), just show the text;
	// if it was a perr.Wrap(), just show the base error
	if msg == "" {
		return t
	} else if t == "" {
		return msg
	}

	// if the bottom of the stack was perr.Errorf(), show the original annotation + base error
	return fmt.Sprintf("%s: %s", t, msg)
}

// Error implements error
func (e permitError) Error() string {
	var u string
	if e.underlying != nil {
		u = fmt.Sprintf("%s\n", e.underlying.Error())
	}

	// fall back to friendly message if no internal message is defined
	t := e.text
	if e.text == "" {
		t = fmt.Sprintf("[friendly] %s", e.friendly)
	}

	return fmt.Sprintf("%s%s (File %s:%d, in %s)", u, t, e.filename, e.line, e.function)
}

// Unwrap implements errors.Unwrap for errors.Is
func (e *permitError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.underlying // ok if this returns nil
}

// New creates a new perr
func New(text string) error {
	return new(text, "", nil, 1, nil)
}

// Errorf is our local version of fmt.Errorf including callsite info
func Errorf(temp string, args ...interface{}) error {
	var wrapped error
	// if using %w to wrap another error, use our wrapping mechanism
	if strings.HasSuffix(temp, errorWrappingSuffix) {
		temp = strings.TrimSuffix(temp, errorWrappingSuffix)
		// use the safe cast in case this fails
		var ok bool
		wrapped, ok = args[len(args)-1].(error)
		if !ok {
			wrapped = New("seems as if perr.Errorf() was called with a non-error %w")
		}
		args = args[0 : len(args)-1]
	}
	return new(fmt.Sprintf(temp, args...), "", wrapped, 1, nil)
}

// Friendlyf wraps an error with a user-friendly message
func Friendlyf(err error, format string, args ...interface{}) error {
	s := fmt.Sprintf(format, args...)
	return new("", s, err, 1, nil)
}

// WrapWithFriendlyStructure wraps an error with a structured error
func WrapWithFriendlyStructure(err error, structure interface{}) error {
	return new("", "", err, 1, structure)
}

// Wrap wraps an existing error with an additional level of the callstack
func Wrap(err error, opts ...Option) error {
	if err == nil {
		return nil
	}
	var options options
	for _, opt := range opts {
		opt.apply(&options)
	}
	return new(wrappedText, "", err, options.skipFrames+1, nil)
}

// ExtraSkip tells Wrap to skip an extra frame in the stack when wrapping an error,
// so helpers that wrap on behalf of their caller capture the frame that actually
// observed the error.
func ExtraSkip() Option {
	return optFunc(func(o *options) { o.skipFrames++ })
}

// skips is the number of stack frames (besides new itself) to skip
func new(text, friendly string, wraps error, skips int, structure interface{}) error {
	function, filename, line := whereAmI(skips + 1)
	err := &permitError{
		text:       text,
		friendly:   friendly,
		underlying: wraps,
		function:   function,
		filename:   filename,
		line:       line,
		structure:  structure,
	}
	return err
}

// s == stack frames to skip not including myself
func whereAmI(s int) (string, string, int) {
	pc, filename, line, ok := runtime.Caller(s + 1)
	if !ok {
		return "", "", 0
	}
	f := runtime.FuncForPC(pc)
	return funcName(f.Name()), repoRelativePath(filename), line
}

// Friendly returns the friendly message, if any, or a default string.
// Currently takes the first one in the stack.
func (e permitError) Friendly() string {
	if e.friendly != "" {
		return e.friendly
	}

	var pe PermitError
	if errors.As(e.underlying, &pe) {
		return pe.Friendly()
	}

	return "an unspecified error occurred"
}

// FriendlyStructure returns something that can be marshaled to JSON for the client to
// access programatically
func (e permitError) FriendlyStructure() interface{} {
	if e.structure != nil {
		return e.structure
	}

	var pe PermitError
	if errors.As(e.underlying, &pe) {
		return pe.FriendlyStructure()
	}

	return nil
}

// UserFriendlyMessage is just a simple wrapper to handle casting error -> permitError
func UserFriendlyMessage(err error) string {
	var pe PermitError
	if errors.As(err, &pe) {
		return pe.Friendly()
	}

	// note subtle difference in language from Friendly() identifies an
	// (unlikely) place where we didn't wrap an error with a permitError ever
	return "an unknown error occurred"
}

// UserFriendlyStructure exposes the structured error data if error is a permitError
func UserFriendlyStructure(err error) interface{} {
	var pe PermitError
	if errors.As(err, &pe) {
		return pe.FriendlyStructure()
	}

	return nil
}
