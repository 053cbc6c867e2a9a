// Package assert provides small test helpers over go-cmp.
package assert

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Equal asserts that got and want are deeply equal
func Equal(t *testing.T, got, want interface{}, opts ...Option) {
	t.Helper()
	os := applyOptions(opts)
	if !cmp.Equal(got, want, os.cmpOpts...) {
		if os.diff {
			fail(t, os, "got != want, diff (-got +want):\n%s", cmp.Diff(got, want, os.cmpOpts...))
		} else {
			fail(t, os, "got %+v, want %+v", got, want)
		}
	}
}

// NotEqual asserts that got and want differ
func NotEqual(t *testing.T, got, want interface{}, opts ...Option) {
	t.Helper()
	os := applyOptions(opts)
	if cmp.Equal(got, want, os.cmpOpts...) {
		fail(t, os, "got unwanted value %+v", got)
	}
}

// True asserts that v is true
func True(t *testing.T, v bool, opts ...Option) {
	t.Helper()
	os := applyOptions(opts)
	if !v {
		fail(t, os, "expected true, got false")
	}
}

// False asserts that v is false
func False(t *testing.T, v bool, opts ...Option) {
	t.Helper()
	os := applyOptions(opts)
	if v {
		fail(t, os, "expected false, got true")
	}
}

// NoErr asserts that err is nil
func NoErr(t *testing.T, err error, opts ...Option) {
	t.Helper()
	os := applyOptions(opts)
	if err != nil {
		fail(t, os, "unexpected error: %v", err)
	}
}

// NotNil asserts that v is a non-nil error or pointer
func NotNil(t *testing.T, v interface{}, opts ...Option) {
	t.Helper()
	os := applyOptions(opts)
	if v == nil {
		fail(t, os, "expected non-nil value")
	}
}

// IsNil asserts that v is nil
func IsNil(t *testing.T, v interface{}, opts ...Option) {
	t.Helper()
	os := applyOptions(opts)
	if v != nil {
		fail(t, os, "expected nil, got %+v", v)
	}
}

// ErrorIs asserts that errors.Is(err, target)
func ErrorIs(t *testing.T, err, target error, opts ...Option) {
	t.Helper()
	os := applyOptions(opts)
	if !errors.Is(err, target) {
		fail(t, os, "error %v is not %v", err, target)
	}
}

func fail(t *testing.T, os options, format string, args ...interface{}) {
	t.Helper()
	if os.msg != "" {
		t.Logf("assertion context: %s", os.msg)
	}
	if os.stop {
		t.Fatalf(format, args...)
	} else {
		t.Errorf(format, args...)
	}
}
