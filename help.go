// Copyright 2021 Jonathan Amsterdam.

package args

import (
	"fmt"
	"io"
	"reflect"
	"strings"
)

// Help text composition. The text is derived entirely from the
// registered declarations, in declaration order.

// Usage writes the parser's help text to w: a usage header with the
// program description, then one line per declared option.
func (p *Parser) Usage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	h := p.usageHeader()
	switch {
	case p.doc == "":
		fmt.Fprintln(w, h)
	case len(h)+len(p.doc) <= 76:
		fmt.Fprintf(w, "%s    %s\n", h, p.doc)
	default:
		fmt.Fprintf(w, "%s\n  %s\n", h, p.doc)
	}
	wid := 0
	for _, a := range p.args {
		if n := len(a.helpLabel()); n > wid {
			wid = n
		}
	}
	for _, a := range p.args {
		if doc := a.helpDoc(); doc != "" {
			fmt.Fprintf(w, "  %-*s  %s\n", wid, a.helpLabel(), doc)
		} else {
			fmt.Fprintf(w, "  %s\n", a.helpLabel())
		}
	}
}

func (p *Parser) usageHeader() string {
	var b strings.Builder
	b.WriteString(p.name)
	for _, a := range p.args {
		if !a.isColl {
			b.WriteString(" [flags]")
			break
		}
	}
	if c := p.collector; c != nil {
		fmt.Fprintf(&b, " %s...", c.metavar())
	}
	return b.String()
}

// helpLabel is the left-hand column of an option's help line, e.g.
// "-h, --help" or "--limit LIMIT" or "ARGS...".
func (a *arg) helpLabel() string {
	if a.isColl {
		return a.metavar() + "..."
	}
	var b strings.Builder
	if a.short != 0 {
		fmt.Fprintf(&b, "-%c", a.short)
	}
	if a.long != "" {
		if a.short != 0 {
			b.WriteString(", ")
		}
		b.WriteString("--")
		b.WriteString(a.long)
	}
	if a.parser != nil {
		b.WriteByte(' ')
		b.WriteString(a.metavar())
	}
	return b.String()
}

// helpDoc is the right-hand column: the docstring plus any choices,
// minimum-count and default annotations.
func (a *arg) helpDoc() string {
	doc := a.doc
	if a.choices != nil {
		suffix := "one of " + strings.Join(a.choices, ", ")
		if doc == "" {
			doc = suffix
		} else {
			doc += "; " + suffix
		}
	}
	if a.isColl && a.min > 0 {
		doc += fmt.Sprintf(" (at least %d)", a.min)
	}
	if a.hasDef && renderable(a.defVal) {
		doc += fmt.Sprintf(" (default %v)", a.defVal)
	}
	return strings.TrimSpace(doc)
}

// renderable reports whether a default value has a printed form worth
// showing in help. Zero values are omitted, as are values of types
// with no useful text representation, such as the function defaults
// used with StoreConst.
func renderable(v any) bool {
	rv := reflect.ValueOf(v)
	if rv.IsZero() {
		return false
	}
	switch rv.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
