// SPDX-License-Identifier: MIT

package instrument

import (
	"fmt"
	"reflect"
	"time"
)

// Reporter receives one measurement per instrumented call.
// Implementations must be safe for concurrent use.
type Reporter interface {
	Report(name string, elapsed time.Duration, err error)
}

// ReporterFunc adapts a plain function to Reporter.
type ReporterFunc func(name string, elapsed time.Duration, err error)

// Report calls f.
func (f ReporterFunc) Report(name string, elapsed time.Duration, err error) {
	f(name, elapsed, err)
}

// Nop discards every measurement.
var Nop Reporter = ReporterFunc(func(string, time.Duration, error) {})

// Multi fans a measurement out to every non-nil reporter, in order.
func Multi(rs ...Reporter) Reporter {
	kept := make([]Reporter, 0, len(rs))
	for _, r := range rs {
		if r != nil {
			kept = append(kept, r)
		}
	}

	return ReporterFunc(func(name string, elapsed time.Duration, err error) {
		for _, r := range kept {
			r.Report(name, elapsed, err)
		}
	})
}

// Measure runs fn, reports its duration and error under name, and returns
// fn's error unchanged.
func Measure(name string, r Reporter, fn func() error) error {
	start := time.Now()
	err := fn()
	if r != nil {
		r.Report(name, time.Since(start), err)
	}

	return err
}

// Wrap decorates a one-argument function.
func Wrap[A, R any](name string, r Reporter, fn func(A) R) func(A) R {
	return func(a A) R {
		var out R
		_ = Measure(name, r, func() error {
			out = fn(a)
			return nil
		})

		return out
	}
}

// Wrap2 decorates a two-argument function.
func Wrap2[A, B, R any](name string, r Reporter, fn func(A, B) R) func(A, B) R {
	return func(a A, b B) R {
		var out R
		_ = Measure(name, r, func() error {
			out = fn(a, b)
			return nil
		})

		return out
	}
}

// WrapErr decorates a one-argument fallible function; the error is reported
// and then returned as is.
func WrapErr[A, R any](name string, r Reporter, fn func(A) (R, error)) func(A) (R, error) {
	return func(a A) (R, error) {
		var out R
		err := Measure(name, r, func() error {
			var err error
			out, err = fn(a)
			return err
		})

		return out, err
	}
}

// WrapErr2 decorates a two-argument fallible function.
func WrapErr2[A, B, R any](name string, r Reporter, fn func(A, B) (R, error)) func(A, B) (R, error) {
	return func(a A, b B) (R, error) {
		var out R
		err := Measure(name, r, func() error {
			var err error
			out, err = fn(a, b)
			return err
		})

		return out, err
	}
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Decorate wraps a function of any signature. If the last result implements
// error, its value is passed to the Reporter. Variadic functions keep their
// variadic signature.
//
// Decorate panics if fn is not a non-nil function; that is a programming error.
func Decorate[F any](name string, r Reporter, fn F) F {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		panic(fmt.Sprintf("instrument: Decorate(%q) needs a non-nil function, got %T", name, fn))
	}
	t := v.Type()
	lastIsErr := t.NumOut() > 0 && t.Out(t.NumOut()-1).Implements(errorType)

	wrapped := reflect.MakeFunc(t, func(args []reflect.Value) []reflect.Value {
		var out []reflect.Value
		_ = Measure(name, r, func() error {
			if t.IsVariadic() {
				out = v.CallSlice(args)
			} else {
				out = v.Call(args)
			}
			if !lastIsErr {
				return nil
			}
			return errorOf(out[len(out)-1])
		})

		return out
	})

	return wrapped.Interface().(F)
}

// errorOf converts an error-typed result to error. A nil pointer of a
// concrete error type counts as no error.
func errorOf(v reflect.Value) error {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if v.IsNil() {
			return nil
		}
	}
	err, _ := v.Interface().(error)

	return err
}
