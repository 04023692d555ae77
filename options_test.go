// Copyright 2021 Jonathan Amsterdam.

package args

import (
	"errors"
	"strings"
	"testing"
)

func TestAddErrors(t *testing.T) {
	var ints, more []int
	for _, test := range []struct {
		name  string
		setup func(p *Parser) // prior registrations
		opts  []Option
		want  string // substring of the error
	}{
		{
			name: "no name",
			opts: []Option{Default(1)},
			want: "needs a long or short name",
		},
		{
			name: "no value",
			opts: []Option{Long("x")},
			want: "needs a value",
		},
		{
			name: "empty long",
			opts: []Option{Long(""), Flag()},
			want: "must not be empty",
		},
		{
			name: "long starting with dash",
			opts: []Option{Long("-x"), Flag()},
			want: "must not start with '-'",
		},
		{
			name: "long containing equals",
			opts: []Option{Long("a=b"), Flag()},
			want: "must not contain",
		},
		{
			name: "bad short",
			opts: []Option{Short('-'), Flag()},
			want: "invalid short name",
		},
		{
			name: "multibyte short",
			opts: []Option{Short('π'), Flag()},
			want: "invalid short name",
		},
		{
			name:  "duplicate long",
			setup: func(p *Parser) { p.MustAdd(Long("x"), Flag()) },
			opts:  []Option{Long("x"), Default(1)},
			want:  `duplicate option name "x"`,
		},
		{
			name:  "duplicate short",
			setup: func(p *Parser) { p.MustAdd(Short('v'), Flag()) },
			opts:  []Option{Short('v'), Flag()},
			want:  `duplicate option name "v"`,
		},
		{
			name:  "short reusing a long name",
			setup: func(p *Parser) { p.MustAdd(Long("v"), Default(10)) },
			opts:  []Option{Short('v'), Flag()},
			want:  `duplicate option name "v"`,
		},
		{
			name:  "long reusing a short name",
			setup: func(p *Parser) { p.MustAdd(Short('v'), Flag()) },
			opts:  []Option{Long("v"), Default(10)},
			want:  `duplicate option name "v"`,
		},
		{
			name: "const without default",
			opts: []Option{Long("sum"), StoreConst(1)},
			want: "needs a default",
		},
		{
			name: "const and default type mismatch",
			opts: []Option{Long("sum"), StoreConst(1), Default("x")},
			want: "does not match default type",
		},
		{
			name: "const with store",
			opts: []Option{Long("x"), StoreConst(1), Default(1), Store(0)},
			want: "cannot both store a const and take a value",
		},
		{
			name: "nil const",
			opts: []Option{Long("x"), StoreConst(nil), Default(1)},
			want: "must not be nil",
		},
		{
			name: "required with default",
			opts: []Option{Long("x"), Required(), Default(1)},
			want: "cannot have a default",
		},
		{
			name: "store and default type mismatch",
			opts: []Option{Long("x"), Store(0), Default("y")},
			want: "does not match",
		},
		{
			name: "help with value",
			opts: []Option{Long("help"), PrintHelp(), Default(1)},
			want: "takes no value",
		},
		{
			name: "choices on a flag",
			opts: []Option{Long("x"), Flag(), Choices("a")},
			want: "choices apply only to options that take a value",
		},
		{
			name: "choices on an int",
			opts: []Option{Long("x"), Default(1), Choices("a")},
			want: "must be string type",
		},
		{
			name: "default not in choices",
			opts: []Option{Long("x"), Default("c"), Choices("a", "b")},
			want: "default must be one of a, b",
		},
		{
			name: "empty choices",
			opts: []Option{Long("x"), Default("a"), Choices()},
			want: "must not be empty",
		},
		{
			name: "unparseable type",
			opts: []Option{Long("x"), Store(struct{}{})},
			want: "cannot parse",
		},
		{
			name:  "second collector",
			setup: func(p *Parser) { p.MustAdd(Collect(&ints)) },
			opts:  []Option{Collect(&more)},
			want:  "second collector",
		},
		{
			name: "named collector",
			opts: []Option{Collect(&ints), Long("x")},
			want: "cannot have a long or short name",
		},
		{
			name: "required collector",
			opts: []Option{Collect(&ints), Required()},
			want: "use AtLeast",
		},
		{
			name: "collector with const",
			opts: []Option{Collect(&ints), Flag()},
			want: "cannot have a const or default",
		},
		{
			name: "collector with help",
			opts: []Option{Collect(&ints), PrintHelp()},
			want: "cannot print help",
		},
		{
			name: "collector with store",
			opts: []Option{Collect(&ints), Store(0)},
			want: "Store does not apply",
		},
		{
			name: "at least on a named option",
			opts: []Option{Long("x"), Default(1), AtLeast(1)},
			want: "AtLeast applies only to a collector",
		},
		{
			name: "negative at least",
			opts: []Option{Collect(&ints), AtLeast(-1)},
			want: "cannot be negative",
		},
		{
			name: "collect non-pointer",
			opts: []Option{Collect(ints)},
			want: "non-nil pointer to a slice",
		},
		{
			name: "collect unparseable element",
			opts: []Option{Collect(new([]struct{}))},
			want: "cannot parse",
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			p := New("t", "")
			if test.setup != nil {
				test.setup(p)
			}
			err := p.Add(test.opts...)
			if err == nil || !strings.Contains(err.Error(), test.want) {
				t.Errorf("got %v, want error containing %q", err, test.want)
			}
			var ce *ConfigError
			if !errors.As(err, &ce) {
				t.Errorf("got %T, want a *ConfigError", err)
			}
		})
	}
}

// A single bad declaration reports all of its problems at once.
func TestAddErrorAggregates(t *testing.T) {
	p := New("t", "")
	err := p.Add(Long("-x"), Required(), Default(1), AtLeast(2))
	for _, want := range []string{
		"must not start with '-'",
		"cannot have a default",
		"AtLeast applies only to a collector",
	} {
		if err == nil || !strings.Contains(err.Error(), want) {
			t.Errorf("got %v, want error containing %q", err, want)
		}
	}
}

func TestConfigErrorOption(t *testing.T) {
	p := New("t", "")
	err := p.Add(Long("lim"), Short('l'), Required(), Default(1))
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("got %v, want a *ConfigError", err)
	}
	if got, want := ce.Option, "--lim"; got != want {
		t.Errorf("got option %q, want %q", got, want)
	}
}

func TestAddAfterParse(t *testing.T) {
	p := New("t", "")
	p.MustAdd(Long("x"), Flag())
	if _, err := p.Parse(nil); err != nil {
		t.Fatal(err)
	}
	err := p.Add(Long("y"), Flag())
	var se *StateError
	if !errors.As(err, &se) {
		t.Fatalf("got %v, want a *StateError", err)
	}
	if se.Op != "Add" {
		t.Errorf("got op %q, want %q", se.Op, "Add")
	}
}

func TestMustAddPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustAdd did not panic")
		}
	}()
	New("t", "").MustAdd(Long("x"))
}
