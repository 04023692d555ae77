// Copyright 2021 Jonathan Amsterdam.

package args

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Parsers for option values and collected arguments.

// parseFunc is the type of functions that parse a command-line token
// into a value of an option's declared type.
type parseFunc func(string) (any, error)

var durationType = reflect.TypeOf(time.Duration(0))

// buildParser constructs a parser producing values of type t, or for
// the list of choices. It fails if values of t cannot be derived from
// command-line text.
func buildParser(t reflect.Type, choices []string) (parseFunc, error) {
	if choices != nil {
		if t.Kind() != reflect.String {
			return nil, fmt.Errorf("choices must be string type, not %s", t)
		}
		return parserForChoices(choices, t), nil
	}
	if t == durationType {
		return func(s string) (any, error) {
			return time.ParseDuration(s)
		}, nil
	}

	convert := func(v any) any {
		return reflect.ValueOf(v).Convert(t).Interface()
	}

	switch t.Kind() {
	case reflect.String:
		return func(s string) (any, error) {
			return convert(s), nil
		}, nil
	case reflect.Bool:
		return func(s string) (any, error) {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return nil, err
			}
			return convert(b), nil
		}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(s string) (any, error) {
			i, err := strconv.ParseInt(s, 10, t.Bits())
			if err != nil {
				return nil, err
			}
			return convert(i), nil
		}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(s string) (any, error) {
			u, err := strconv.ParseUint(s, 10, t.Bits())
			if err != nil {
				return nil, err
			}
			return convert(u), nil
		}, nil
	case reflect.Float32, reflect.Float64:
		return func(s string) (any, error) {
			f, err := strconv.ParseFloat(s, t.Bits())
			if err != nil {
				return nil, err
			}
			return convert(f), nil
		}, nil
	default:
		return nil, fmt.Errorf("cannot parse string into %s", t)
	}
}

func parserForChoices(choices []string, t reflect.Type) parseFunc {
	return func(s string) (any, error) {
		if err := checkChoices(s, choices); err != nil {
			return nil, err
		}
		return reflect.ValueOf(s).Convert(t).Interface(), nil
	}
}

func checkChoices(s string, choices []string) error {
	for _, c := range choices {
		if s == c {
			return nil
		}
	}
	return fmt.Errorf("must be one of %s", strings.Join(choices, ", "))
}
