// Copyright 2021 Jonathan Amsterdam.

package args

import "reflect"

// A Result holds the values a successful Parse recorded: one per named
// option that appeared on the command line or had a default. Collector
// arguments go to the collector's slice, not the Result.
type Result struct {
	values map[string]entry
}

type entry struct {
	val  any
	seen bool // appeared on the command line, as opposed to defaulted
}

// Get returns the value recorded under name, which is the option's
// long name, or its short name if it has no long one. The type
// parameter must be exactly the type the value was declared with; Get
// does not convert. It returns a *NotFoundError if nothing was
// recorded under name, and a *TypeMismatchError if the value is not a
// T.
func Get[T any](r *Result, name string) (T, error) {
	var zero T
	e, ok := r.values[name]
	if !ok {
		return zero, &NotFoundError{Name: name}
	}
	want := reflect.TypeOf(&zero).Elem()
	if got := reflect.TypeOf(e.val); got != want {
		return zero, &TypeMismatchError{Name: name, Want: want, Got: got}
	}
	return e.val.(T), nil
}

// Seen reports whether the named option appeared on the command line.
// It is false for options that received their default value and for
// names that were never declared.
func (r *Result) Seen(name string) bool {
	return r.values[name].seen
}
