// Copyright 2021 Jonathan Amsterdam.

package args

import (
	"errors"
	"fmt"
	"reflect"
)

// The error types for the ways declaring, parsing and retrieving can go
// wrong. Parse stops at the first error; Add reports everything wrong
// with a declaration at once.

// ErrHelp is returned by Parse when the help option was matched and the
// parser's exit function did not terminate the process. Under the
// default exit function (os.Exit) it is never observed.
var ErrHelp = errors.New("args: help requested")

// A ConfigError reports an invalid option declaration. It is returned
// by Add, never by Parse. The wrapped error aggregates every problem
// found with the declaration.
type ConfigError struct {
	Option string // the option's display name, or "option" if it has none
	Err    error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %v", e.Option, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// A StateError reports a call that is not valid in the parser's current
// state: Add or Parse after a Parse has already succeeded.
type StateError struct {
	Op string // the offending call, "Add" or "Parse"
}

func (e *StateError) Error() string {
	return fmt.Sprintf("args: %s called after a completed Parse", e.Op)
}

// A ConversionError reports a command-line token that could not be
// converted to an option's declared type, or a value supplied to an
// option that takes none.
type ConversionError struct {
	Option string       // display name of the option, e.g. "--limit"
	Token  string       // the offending token
	Type   reflect.Type // the declared type; nil if the option takes no value
	Err    error        // the underlying cause
}

func (e *ConversionError) Error() string {
	if e.Type == nil {
		return fmt.Sprintf("option %s takes no value (got %q)", e.Option, e.Token)
	}
	return fmt.Sprintf("%s: cannot parse %q as %s: %v", e.Option, e.Token, e.Type, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// An UnknownOptionError reports a token that matched no declared option
// when no collector was registered to absorb it.
type UnknownOptionError struct {
	Token string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option %q", e.Token)
}

type missingReason int

const (
	missingValue    missingReason = iota // value option at end of argv
	missingRequired                      // required option never seen
	missingCount                         // collector minimum unmet
)

// A MissingArgumentError reports an option whose requirements were not
// met by the argument vector: a value option with no value token, a
// required option that never appeared, or a collector that received
// fewer than its minimum number of arguments.
type MissingArgumentError struct {
	Option string // display name
	Min    int    // minimum number of values required
	Got    int    // number of values seen
	reason missingReason
}

func (e *MissingArgumentError) Error() string {
	switch e.reason {
	case missingRequired:
		return fmt.Sprintf("missing required option %s", e.Option)
	case missingCount:
		return fmt.Sprintf("%s: need at least %d args, got %d", e.Option, e.Min, e.Got)
	default:
		return fmt.Sprintf("option %s requires a value", e.Option)
	}
}

// A TypeMismatchError reports a Get whose type argument is not the type
// the value was stored with.
type TypeMismatchError struct {
	Name string
	Want reflect.Type // the type requested by the caller
	Got  reflect.Type // the type the value was declared and stored with
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("option %q holds %s, not %s", e.Name, e.Got, e.Want)
}

// A NotFoundError reports a Get for a name with no recorded value,
// either because no such option was declared or because the option was
// absent and had no default.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no value for option %q", e.Name)
}
