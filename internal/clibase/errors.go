// internal/clibase/errors.go
package clibase

import (
	"errors"
	"fmt"
)

// Kind classifies a usage error.
type Kind int

const (
	KindScan       Kind = iota + 1 // unknown flag, missing value, stray argument
	KindValue                      // malformed or out-of-range value
	KindFile                       // missing or unreadable path
	KindDependency                 // missing mandatory or dependent option
	KindHelp                       // -h given
)

func (k Kind) String() string {
	switch k {
	case KindScan:
		return "scan"
	case KindValue:
		return "value"
	case KindFile:
		return "file"
	case KindDependency:
		return "dependency"
	case KindHelp:
		return "help"
	}
	return "unknown"
}

// UsageError is returned by option resolution and validation. Msg is the
// text printed after "ERROR: ".
type UsageError struct {
	Kind Kind
	Msg  string
}

func (e *UsageError) Error() string { return e.Msg }

// ErrHelp is returned when help was requested.
var ErrHelp = &UsageError{Kind: KindHelp}

func newf(k Kind, format string, a ...any) *UsageError {
	return &UsageError{Kind: k, Msg: fmt.Sprintf(format, a...)}
}

func Scanf(format string, a ...any) error       { return newf(KindScan, format, a...) }
func Valuef(format string, a ...any) error      { return newf(KindValue, format, a...) }
func Filef(format string, a ...any) error       { return newf(KindFile, format, a...) }
func Dependencyf(format string, a ...any) error { return newf(KindDependency, format, a...) }

// KindOf returns the kind of a usage error, or 0 for any other error.
func KindOf(err error) Kind {
	var ue *UsageError
	if errors.As(err, &ue) {
		return ue.Kind
	}
	return 0
}

// Message returns the text to print after "ERROR: "; empty for help requests.
func Message(err error) string {
	if err == nil || KindOf(err) == KindHelp {
		return ""
	}
	return err.Error()
}
