// Copyright 2021 Jonathan Amsterdam.

package args

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// A Parser owns an ordered set of declared options, consumes an
// argument vector, and produces a Result queryable by name and type.
//
// A Parser starts out configuring, accepting Add calls. A successful
// Parse moves it to its terminal parsed state; Add or Parse after that
// fail with a *StateError. A failed Parse leaves the parser
// configuring, so the same instance can be run again.
//
// A Parser has no internal locking; callers that share one across
// goroutines must synchronize.
type Parser struct {
	name      string
	doc       string
	args      []*arg // in declaration order
	collector *arg
	parsed    bool

	out  io.Writer // help text
	errW io.Writer // MustParse diagnostics
	exit func(int)
}

// New returns a Parser for a program called name, with doc as the
// description shown at the top of its help text. If name is empty, the
// base name of the running executable is used.
func New(name, doc string) *Parser {
	if name == "" {
		name = filepath.Base(os.Args[0])
	}
	return &Parser{
		name: name,
		doc:  strings.TrimSpace(doc),
		out:  os.Stdout,
		errW: os.Stderr,
		exit: os.Exit,
	}
}

// SetOutput sets the writer for help text and diagnostics. The
// defaults are standard output for help and standard error for
// MustParse diagnostics.
func (p *Parser) SetOutput(w io.Writer) {
	p.out = w
	p.errW = w
}
