// Copyright 2021 Jonathan Amsterdam.

package args

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Parse consumes argv, which should not include the program name (use
// os.Args[1:]), and returns the recorded values. It stops at the first
// problem, leaving the parser reusable and the collector's slice
// untouched.
//
// Named options may appear anywhere and repeat; the last appearance
// wins. A value option takes the following token, or the text after
// "=" in --name=value. A "--" token ends option matching; everything
// after it goes to the collector. Tokens that match no declared option
// go to the collector too, so negative numbers like -5 parse as
// arguments rather than options. Without a collector such tokens are
// an *UnknownOptionError.
//
// If the help option is matched, Parse writes the help text to the
// output writer, calls the exit function with 0, and returns ErrHelp.
//
// After a successful Parse the parser is done: further Add or Parse
// calls return a *StateError.
func (p *Parser) Parse(argv []string) (*Result, error) {
	if p.parsed {
		return nil, &StateError{Op: "Parse"}
	}
	res := &Result{values: map[string]entry{}}
	var collected []reflect.Value
	rest := false // saw "--"
	for i := 0; i < len(argv); i++ {
		tok := argv[i]
		if !rest && tok == "--" {
			rest = true
			continue
		}
		var a *arg
		var inline string
		var hasInline bool
		if !rest {
			a, inline, hasInline = p.match(tok)
		}
		switch {
		case a == nil:
			c := p.collector
			if c == nil {
				return nil, &UnknownOptionError{Token: tok}
			}
			v, err := c.parser(tok)
			if err != nil {
				return nil, &ConversionError{Option: c.label(), Token: tok, Type: c.typ, Err: err}
			}
			collected = append(collected, reflect.ValueOf(v))
		case a.help:
			if hasInline {
				return nil, &ConversionError{Option: a.label(), Token: inline}
			}
			p.Usage(p.out)
			p.exit(0)
			return nil, ErrHelp
		case a.hasConst:
			if hasInline {
				return nil, &ConversionError{Option: a.label(), Token: inline}
			}
			res.values[a.key()] = entry{val: a.constVal, seen: true}
		default:
			s := inline
			if !hasInline {
				i++
				if i >= len(argv) {
					return nil, &MissingArgumentError{Option: a.label(), reason: missingValue}
				}
				s = argv[i]
			}
			v, err := a.parser(s)
			if err != nil {
				return nil, &ConversionError{Option: a.label(), Token: s, Type: a.typ, Err: err}
			}
			res.values[a.key()] = entry{val: v, seen: true}
		}
	}

	for _, a := range p.args {
		if a.required {
			if _, ok := res.values[a.key()]; !ok {
				return nil, &MissingArgumentError{Option: a.label(), reason: missingRequired}
			}
		}
	}
	if c := p.collector; c != nil && len(collected) < c.min {
		return nil, &MissingArgumentError{Option: c.label(), Min: c.min, Got: len(collected), reason: missingCount}
	}
	for _, a := range p.args {
		if a.hasDef {
			if _, ok := res.values[a.key()]; !ok {
				res.values[a.key()] = entry{val: a.defVal}
			}
		}
	}
	if len(collected) > 0 {
		c := p.collector
		c.collect.Set(reflect.Append(c.collect, collected...))
	}
	p.parsed = true
	return res, nil
}

// match resolves one token against the declared options. It returns
// nil if the token is not a recognized option; hasInline reports a
// --name=value token. Short options are single tokens of the form -c,
// with no bundling, so a token like -52 falls through to the
// collector.
func (p *Parser) match(tok string) (a *arg, inline string, hasInline bool) {
	if strings.HasPrefix(tok, "--") && len(tok) > 2 {
		name := tok[2:]
		if before, after, found := strings.Cut(name, "="); found {
			return p.findLong(before), after, true
		}
		return p.findLong(name), "", false
	}
	if len(tok) == 2 && tok[0] == '-' {
		return p.findShort(rune(tok[1])), "", false
	}
	return nil, "", false
}

// MustParse is Parse for the top of main: on failure it prints the
// error and the help text to the error writer and exits with code 2.
// On help it returns after Parse has requested exit 0.
func (p *Parser) MustParse(argv []string) *Result {
	r, err := p.Parse(argv)
	if err == nil {
		return r
	}
	if errors.Is(err, ErrHelp) {
		return nil
	}
	fmt.Fprintf(p.errW, "%s: %v\n", p.name, err)
	p.Usage(p.errW)
	p.exit(2)
	return nil
}
