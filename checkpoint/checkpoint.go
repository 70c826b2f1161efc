// Package checkpoint decorates file-system errors with the location they passed through,
// so a failed directory open or size query reads like a short trace.
// Both the decorating error and the wrapped one stay reachable with errors.Is and errors.As,
// which keeps native error codes (syscall.Errno) inspectable after decoration.
package checkpoint

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"
)

// From attaches the location of its caller to err.
// It returns nil for a nil err and passes io.EOF and io.ErrUnexpectedEOF through untouched,
// because readers compare them with ==.
func From(err error) error {
	if err == nil || err == io.EOF || err == io.ErrUnexpectedEOF {
		return err
	}

	return newPoint(prevOnly, err, 2)
}

// Wrap records the caller location together with a describing error (usually a sentinel
// such as platform.ErrOpenDirectory) on top of prev.
//
//	sess, err := platform.OpenDirectory(fsys, "missing")
//	if errors.Is(err, platform.ErrOpenDirectory) { ... }
//	if errors.Is(err, syscall.ENOENT) { ... }
//
// Wrap returns nil if prev is nil, and io.EOF unchanged.
// A nil err still creates a point which only carries the location.
func Wrap(prev, err error) error {
	if prev == nil || prev == io.EOF {
		return prev
	}

	return newPoint(prev, err, 2)
}

// WrapSkip is Wrap for helper functions. The location recorded is skip frames above the caller.
func WrapSkip(skip int, prev, err error) error {
	if prev == nil || prev == io.EOF {
		return prev
	}

	return newPoint(prev, err, 2+skip)
}

// Errno returns the first syscall.Errno found in the chain of err.
// ok is false if there is none.
func Errno(err error) (errno syscall.Errno, ok bool) {
	ok = errors.As(err, &errno)
	return errno, ok
}

// prevOnly marks a point created by From, where the wrapped error is also the described one.
var prevOnly = errors.New("")

type point struct {
	desc error
	prev error

	file string
	line int
}

func newPoint(prev, desc error, skip int) *point {
	if prev == prevOnly {
		prev, desc = desc, nil
	}

	p := &point{desc: desc, prev: prev}
	if _, file, line, ok := runtime.Caller(skip); ok {
		p.file = filepath.Base(file)
		p.line = line
	}
	return p
}

func (p *point) location() string {
	if p.file == "" {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", p.file, p.line)
}

func (p *point) Error() string {
	var b strings.Builder
	b.WriteString("at ")
	b.WriteString(p.location())
	if p.desc != nil {
		b.WriteString("\n\t")
		b.WriteString(p.desc.Error())
	}

	prev := p.prev.Error()
	if _, ok := p.prev.(*point); !ok {
		prev = "\t" + strings.ReplaceAll(prev, "\n", "\n\t")
	}
	b.WriteString("\n")
	b.WriteString(prev)
	return b.String()
}

func (p *point) Unwrap() error {
	return p.prev
}

func (p *point) Is(target error) bool {
	return p.desc != nil && errors.Is(p.desc, target)
}

func (p *point) As(target interface{}) bool {
	return p.desc != nil && errors.As(p.desc, target)
}
