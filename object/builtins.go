package object

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// PrintWriter is where the `print` built-in writes its output. It defaults
// to os.Stdout; no package in this module reassigns it. It stands in for
// the teacher's io.Writer-threaded builtin callback signature
// (objects/builtins.go's CallbackFunc), so BuiltinFunction takes no writer.
var PrintWriter io.Writer = os.Stdout

// Builtins is the built-in function table of spec.md §4.6, keyed by the
// name the evaluator looks up once an identifier misses the full
// environment chain (spec.md §4.4 "Identifier"). Mirrors the teacher's
// Builtin{Name, Callback} table shape (objects/builtins.go) narrowed to
// this language's fixed set: len, first, last, cdr, push, print.
var Builtins = map[string]*Builtin{
	"len":   {Fn: builtinLen},
	"first": {Fn: builtinFirst},
	"last":  {Fn: builtinLast},
	"cdr":   {Fn: builtinCdr},
	"push":  {Fn: builtinPush},
	"print": {Fn: builtinPrint},
}

func wrongArgCount(gc *GC, got, want int) *Error {
	return gc.NewError(fmt.Sprintf("wrong number of arguments. got=%d, want=%d", got, want))
}

func builtinLen(gc *GC, args ...Object) Object {
	if len(args) != 1 {
		return wrongArgCount(gc, len(args), 1)
	}
	switch arg := args[0].(type) {
	case *String:
		return gc.NewInteger(int64(len(arg.Value)))
	case *Array:
		return gc.NewInteger(int64(len(arg.Elements)))
	default:
		return gc.NewError(fmt.Sprintf("argument to `len` not supported, got %s", args[0].Type()))
	}
}

func builtinFirst(gc *GC, args ...Object) Object {
	if len(args) != 1 {
		return wrongArgCount(gc, len(args), 1)
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return gc.NewError(fmt.Sprintf("argument to `first` must be ARRAY, got %s", args[0].Type()))
	}
	if len(arr.Elements) == 0 {
		return NULL
	}
	return arr.Elements[0]
}

func builtinLast(gc *GC, args ...Object) Object {
	if len(args) != 1 {
		return wrongArgCount(gc, len(args), 1)
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return gc.NewError(fmt.Sprintf("argument to `last` must be ARRAY, got %s", args[0].Type()))
	}
	length := len(arr.Elements)
	if length == 0 {
		return NULL
	}
	return arr.Elements[length-1]
}

// builtinCdr returns a freshly allocated array containing all but the
// first element of its argument, sharing element references with the
// input (spec.md §4.6): the new array's backing slice is a distinct copy
// of the pointers, not a re-slice of the original's, since push on one
// must never observably affect the other, but the *elements themselves*
// are the same Object values.
func builtinCdr(gc *GC, args ...Object) Object {
	if len(args) != 1 {
		return wrongArgCount(gc, len(args), 1)
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return gc.NewError(fmt.Sprintf("argument to `cdr` must be ARRAY, got %s", args[0].Type()))
	}
	length := len(arr.Elements)
	if length == 0 {
		return NULL
	}
	rest := make([]Object, length-1)
	copy(rest, arr.Elements[1:length])
	return gc.NewArray(rest)
}

// builtinPush returns a freshly allocated array equal to its first
// argument with its second argument appended; the input array is not
// mutated (spec.md §4.6).
func builtinPush(gc *GC, args ...Object) Object {
	if len(args) != 2 {
		return wrongArgCount(gc, len(args), 2)
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return gc.NewError(fmt.Sprintf("argument to `push` must be ARRAY, got %s", args[0].Type()))
	}
	length := len(arr.Elements)
	grown := make([]Object, length+1)
	copy(grown, arr.Elements)
	grown[length] = args[1]
	return gc.NewArray(grown)
}

// builtinPrint writes each argument's inspected form to standard output in
// order, space-separated, and returns the null singleton (spec.md §4.6).
func builtinPrint(gc *GC, args ...Object) Object {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		parts = append(parts, arg.Inspect())
	}
	fmt.Fprintln(PrintWriter, strings.Join(parts, " "))
	return NULL
}
