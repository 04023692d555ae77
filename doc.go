// Copyright 2021 Jonathan Amsterdam.

/*
Package args parses command-line arguments into strongly typed values.
A Parser is configured with a sequence of option declarations, each
assembled from Option functions, then run over an argument vector:

	p := args.New("greet", "print a greeting")
	p.MustAdd(args.Long("name"), args.Short('n'), args.Default("world"),
		args.Doc("who to greet"))
	p.MustAdd(args.Long("shout"), args.Flag(), args.Doc("upper-case the greeting"))
	r := p.MustParse(os.Args[1:])

The values recorded during the parse are retrieved from the Result by
name, with the type they were declared with:

	name, err := args.Get[string](r, "name")

# Declaring Options

Every named option has a long name (matched as --name or --name=value),
a single-character short name (matched as -c), or both. Exactly one of
the following decides how the option gets its value:

  - Default(v): the option takes one value of v's type; v is recorded
    when the option does not appear.
  - Store(zero): the option takes one value of zero's type, with no
    fallback. Combine with Required to make it mandatory.
  - StoreConst(v) with Default(w): the option is a flag. When present
    it records v and consumes no value token; when absent it records w.
    The const and the default must have the same type, so the option
    always yields that type.
  - Flag(): shorthand for StoreConst(true), Default(false).

Doc sets the option's help line, Name the placeholder printed for its
value, and Choices restricts a string-typed option to a fixed set.

Declarations are validated eagerly: Add reports every problem with a
declaration at once as a *ConfigError, and MustAdd panics on one, so
misconfigured programs fail at startup rather than on some future
command line.

# Value Types

Value tokens are converted with the strconv package according to the
declared type: any string, bool, integer, floating point or
[time.Duration] type works, including named types, which are recorded
as themselves. Any other type is rejected at Add time.

# Positional Arguments

An option declared with Collect(&slice) and no names is the parser's
positional collector. Every token that matches no declared option is
converted to the slice's element type and buffered; after a successful
parse the values are appended to the caller's slice, in order. A
leading "--" token ends option matching, so arguments that look like
options can be collected too. Because short options are only matched as
exactly two characters, a negative number like -5 or -52 falls through
to the collector without any escaping.

AtLeast(n) makes the parse fail unless the collector received at least
n arguments. At most one collector may be declared per parser.

# Help

Help is an ordinary option marked with PrintHelp:

	p.MustAdd(args.Long("help"), args.Short('h'), args.PrintHelp(),
		args.Doc("print this help and exit"))

When it is matched during a parse, the parser composes help text from
the declarations, in declaration order, writes it to its output writer
(standard output unless changed with SetOutput) and exits the process
with code 0.

# Parsing

Parse scans the argument vector left to right and stops at the first
problem, returning an error that describes the offending token, option
and expected type: *ConversionError, *UnknownOptionError or
*MissingArgumentError. A failed parse records nothing and leaves the
parser ready to run again; a successful one is terminal, and further
Add or Parse calls fail with a *StateError.

MustParse wraps Parse for the top of main: on failure it prints the
error and the help text to standard error and exits with code 2.

# Results

Get is type-checked: the type parameter must be exactly the type the
option was declared with, or Get fails with a *TypeMismatchError. A
name nothing was recorded under fails with a *NotFoundError. Seen
reports whether an option appeared on the command line or received its
default.
*/
package args
