// Copyright 2021 Jonathan Amsterdam.

package args

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/hashicorp/go-multierror"
)

// Code to declare and validate options.

// An arg is one declared option, or the positional collector. It is
// assembled by Option functions, validated by Add, and immutable after
// that.
type arg struct {
	long    string
	short   rune
	doc     string
	display string // name used in help text and diagnostics

	help bool // matching this option prints help and exits

	constVal any // recorded when the option appears; consumes no token
	hasConst bool
	defVal   any // installed after parsing when the option never appeared
	hasDef   bool

	storeType reflect.Type // explicit value type, from Store
	choices   []string
	required  bool

	isColl  bool
	collect reflect.Value // the caller's slice; collector only
	min     int           // minimum collected values
	minSet  bool

	typ    reflect.Type // resolved value type
	parser parseFunc    // converts one token; nil for options taking no value

	errs *multierror.Error // declaration problems found while building
}

// An Option configures one aspect of an option declaration passed to
// [Parser.Add]. Invalid arguments to an Option are reported by Add, not
// at the call site.
type Option func(*arg)

func (a *arg) errf(format string, args ...any) {
	a.errs = multierror.Append(a.errs, fmt.Errorf(format, args...))
}

// Long sets the option's long name, matched on the command line as
// --name or --name=value.
func Long(name string) Option {
	return func(a *arg) {
		switch {
		case name == "":
			a.errf("long name must not be empty")
		case strings.HasPrefix(name, "-"):
			a.errf("long name %q must not start with '-'", name)
		case strings.ContainsAny(name, "= \t"):
			a.errf("long name %q must not contain '=' or space", name)
		default:
			a.long = name
		}
	}
}

// Short sets the option's single-character short name, matched as -c.
// The character must be graphic ASCII.
func Short(r rune) Option {
	return func(a *arg) {
		if r == '-' || r == '=' || r == ' ' || r > unicode.MaxASCII || !unicode.IsGraphic(r) {
			a.errf("invalid short name %q", r)
			return
		}
		a.short = r
	}
}

// Doc sets the option's usage documentation, shown in help output.
func Doc(text string) Option {
	return func(a *arg) { a.doc = strings.TrimSpace(text) }
}

// Name sets the display name used for the option's value in help text
// and diagnostics. If unset, the upper-cased option name is used, or
// ARGS for the collector.
func Name(display string) Option {
	return func(a *arg) { a.display = display }
}

// PrintHelp marks the option as the help trigger: when it is matched
// during a parse, the parser writes its help text and the process exits
// with code 0. Help is not registered automatically; declaring it, and
// under which names, is the caller's choice.
func PrintHelp() Option {
	return func(a *arg) { a.help = true }
}

// StoreConst declares that the option is a flag: when present it
// records v and consumes no value token. It must be paired with a
// Default of the same type, so that the option has a value whether or
// not the flag appears.
func StoreConst(v any) Option {
	return func(a *arg) {
		if v == nil {
			a.errf("const value must not be nil")
			return
		}
		a.constVal = v
		a.hasConst = true
	}
}

// Default sets the value recorded for the option when it does not
// appear on the command line. An option with a Default and no
// StoreConst takes one value of the default's type.
func Default(v any) Option {
	return func(a *arg) {
		if v == nil {
			a.errf("default value must not be nil")
			return
		}
		a.defVal = v
		a.hasDef = true
	}
}

// Store declares that the option takes one value of zero's type. It is
// for options whose type cannot be inferred from a Default, such as
// required options.
func Store(zero any) Option {
	return func(a *arg) {
		if zero == nil {
			a.errf("Store value must not be nil")
			return
		}
		a.storeType = reflect.TypeOf(zero)
	}
}

// Flag declares a boolean flag: true when present, false otherwise.
// It is shorthand for StoreConst(true), Default(false).
func Flag() Option {
	return func(a *arg) {
		a.constVal, a.hasConst = true, true
		a.defVal, a.hasDef = false, true
	}
}

// Collect designates the option as the parser's positional collector:
// every token that matches no declared option is converted to the
// slice's element type and appended to the caller's slice. A collector
// has no names; at most one may be registered per parser. Nothing is
// recorded in the Result for it.
func Collect(slicePtr any) Option {
	return func(a *arg) {
		v := reflect.ValueOf(slicePtr)
		if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Slice {
			a.errf("Collect needs a non-nil pointer to a slice, got %T", slicePtr)
			return
		}
		a.isColl = true
		a.collect = v.Elem()
	}
}

// AtLeast sets the minimum number of arguments the collector must
// receive.
func AtLeast(n int) Option {
	return func(a *arg) {
		if n < 0 {
			a.errf("min cannot be negative")
			return
		}
		a.min = n
		a.minSet = true
	}
}

// Required marks the option as mandatory: parsing fails if it never
// appears. A required option cannot have a default.
func Required() Option {
	return func(a *arg) { a.required = true }
}

// Choices restricts a string-typed option's value to one of the given
// strings.
func Choices(vals ...string) Option {
	return func(a *arg) {
		if len(vals) == 0 {
			a.errf("choices must not be empty")
			return
		}
		a.choices = vals
	}
}

// Add registers one option assembled from opts. It returns a
// *ConfigError describing every problem with the declaration, or a
// *StateError if the parser has already parsed successfully.
func (p *Parser) Add(opts ...Option) error {
	if p.parsed {
		return &StateError{Op: "Add"}
	}
	a := new(arg)
	for _, o := range opts {
		o(a)
	}
	if err := p.validate(a); err != nil {
		return err
	}
	if a.isColl {
		p.collector = a
	}
	p.args = append(p.args, a)
	return nil
}

// MustAdd is like Add but panics on error, for the usual
// declare-at-startup pattern.
func (p *Parser) MustAdd(opts ...Option) {
	if err := p.Add(opts...); err != nil {
		panic(err)
	}
}

// validate checks a single declaration against itself and against the
// options already registered, resolves its value type, and builds its
// token parser.
func (p *Parser) validate(a *arg) error {
	errs := a.errs
	fail := func(format string, fargs ...any) {
		errs = multierror.Append(errs, fmt.Errorf(format, fargs...))
	}

	if a.isColl {
		if a.long != "" || a.short != 0 {
			fail("a collector cannot have a long or short name")
		}
		if a.help {
			fail("a collector cannot print help")
		}
		if a.hasConst || a.hasDef {
			fail("a collector cannot have a const or default value")
		}
		if a.required {
			fail("use AtLeast for a mandatory collector")
		}
		if a.storeType != nil {
			fail("Store does not apply to a collector")
		}
		if p.collector != nil {
			fail("a second collector cannot be added")
		}
	} else {
		if a.long == "" && a.short == 0 {
			fail("an option needs a long or short name")
		}
		if a.minSet {
			fail("AtLeast applies only to a collector")
		}
		if other := p.findLong(a.long); other != nil {
			fail("duplicate option name %q", a.long)
		}
		if other := p.findShort(a.short); other != nil {
			fail("duplicate option name %q", string(a.short))
		}
		// A long and a short name on different options can still
		// collide as Result keys.
		if other := p.findKey(a.key()); other != nil && other.long != a.long && other.short != a.short {
			fail("duplicate option name %q", a.key())
		}
	}
	if a.help && (a.hasConst || a.hasDef || a.storeType != nil || a.required || a.choices != nil) {
		fail("a help option takes no value")
	}
	if a.hasConst {
		if a.storeType != nil {
			fail("an option cannot both store a const and take a value")
		}
		if !a.hasDef {
			fail("a const needs a default for the absent case")
		} else if ct, dt := reflect.TypeOf(a.constVal), reflect.TypeOf(a.defVal); ct != dt {
			fail("const type %s does not match default type %s", ct, dt)
		}
	}
	if a.required && a.hasDef {
		fail("a required option cannot have a default")
	}

	// Resolve the option's value type.
	switch {
	case a.isColl:
		if a.collect.IsValid() {
			a.typ = a.collect.Type().Elem()
		}
	case a.storeType != nil:
		a.typ = a.storeType
		if a.hasDef && reflect.TypeOf(a.defVal) != a.typ {
			fail("default type %s does not match %s", reflect.TypeOf(a.defVal), a.typ)
		}
	case a.hasConst:
		a.typ = reflect.TypeOf(a.constVal)
	case a.hasDef:
		a.typ = reflect.TypeOf(a.defVal)
	case a.help:
		// Help options carry no value.
	default:
		fail("an option needs a value: use Store, Default, StoreConst or Flag")
	}

	// Const flags and help options never convert tokens; everything
	// else needs a parser for its type.
	if a.typ != nil && !a.hasConst && !a.help {
		parser, err := buildParser(a.typ, a.choices)
		if err != nil {
			fail("%v", err)
		}
		a.parser = parser
	} else if a.choices != nil {
		fail("choices apply only to options that take a value")
	}
	if a.parser != nil && a.choices != nil && a.hasDef {
		if err := checkChoices(reflect.ValueOf(a.defVal).String(), a.choices); err != nil {
			fail("default %v", err)
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		return &ConfigError{Option: a.label(), Err: err}
	}
	return nil
}

func (p *Parser) findLong(name string) *arg {
	if name == "" {
		return nil
	}
	for _, a := range p.args {
		if a.long == name {
			return a
		}
	}
	return nil
}

func (p *Parser) findShort(r rune) *arg {
	if r == 0 {
		return nil
	}
	for _, a := range p.args {
		if a.short == r {
			return a
		}
	}
	return nil
}

func (p *Parser) findKey(k string) *arg {
	if k == "" {
		return nil
	}
	for _, a := range p.args {
		if a.key() == k {
			return a
		}
	}
	return nil
}

// key is the name a value is recorded under in the Result: the long
// name, or the short name for options without one.
func (a *arg) key() string {
	if a.long != "" {
		return a.long
	}
	if a.short != 0 {
		return string(a.short)
	}
	return ""
}

// label is how the option is referred to in diagnostics.
func (a *arg) label() string {
	switch {
	case a.isColl:
		return a.metavar()
	case a.long != "":
		return "--" + a.long
	case a.short != 0:
		return "-" + string(a.short)
	}
	return "option"
}

// metavar is the display name for the option's value in help text.
func (a *arg) metavar() string {
	if a.display != "" {
		return a.display
	}
	if a.isColl {
		return "ARGS"
	}
	return strings.ToUpper(a.key())
}
