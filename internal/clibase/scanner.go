// internal/clibase/scanner.go
package clibase

import (
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"ariba/internal/cliutil"
)

// Scanner walks argv against a fixed flag schema. Every flag is bound to a
// pflag.Value whose Set applies the flag's rule immediately, so the first
// invalid value stops the scan.
type Scanner struct {
	fs  *pflag.FlagSet
	err error
}

// NewScanner returns a scanner with an empty schema.
func NewScanner(name string) *Scanner {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SortFlags = false
	return &Scanner{fs: fs}
}

// Check validates a value right after it was assigned.
type Check func(value string) error

// Readable requires the path to be readable.
func Readable(p cliutil.Prober) Check {
	return func(path string) error {
		if p.Readable(path) != nil {
			return Filef("File '%s' not found.", path)
		}
		return nil
	}
}

// Companion requires the sibling file path+suffix to be readable.
func Companion(p cliutil.Prober, suffix string) Check {
	return func(path string) error {
		return Readable(p)(path + suffix)
	}
}

// ParentDirExists requires the directory an output path lives in to exist.
func ParentDirExists(p cliutil.Prober) Check {
	return func(path string) error {
		if p.DirExists(cliutil.ParentDir(path)) != nil {
			return Filef("Parent directory of output file '%s' does not exist.", path)
		}
		return nil
	}
}

// Range bounds a numeric flag, inclusive on both ends.
type Range struct{ Min, Max float64 }

var (
	Fraction    = Range{0, 1}
	NonNegative = Range{0, math.Inf(1)}
)

func (r Range) contains(v float64) bool { return v >= r.Min && v <= r.Max }

func (r Range) describe() string {
	if math.IsInf(r.Max, 1) {
		return "at least " + FormatFloat(r.Min)
	}
	return "between " + FormatFloat(r.Min) + " and " + FormatFloat(r.Max)
}

// FormatFloat renders a float the way help and messages show it.
func FormatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

type value struct {
	s    *Scanner
	typ  string
	show func() string
	set  func(string) error
}

func (v *value) String() string { return v.show() }
func (v *value) Type() string   { return v.typ }
func (v *value) Set(raw string) error {
	if err := v.set(raw); err != nil {
		if v.s.err == nil {
			v.s.err = err
		}
		return err
	}
	return nil
}

func (s *Scanner) define(long, short, typ string, show func() string, set func(string) error) *pflag.Flag {
	return s.fs.VarPF(&value{s: s, typ: typ, show: show, set: set}, long, short, "")
}

func (s *Scanner) defineSwitch(long, short string, set func(string) error) {
	f := s.define(long, short, "bool", func() string { return "false" }, set)
	f.NoOptDefVal = "true"
}

// String binds a string flag. checks run in order after assignment.
func (s *Scanner) String(dst *string, long, short string, checks ...Check) {
	s.define(long, short, "string", func() string { return *dst }, func(raw string) error {
		*dst = raw
		for _, c := range checks {
			if err := c(raw); err != nil {
				return err
			}
		}
		return nil
	})
}

// List binds a comma-/space-separated list, stored space-separated.
func (s *Scanner) List(dst *string, long, short string) {
	s.define(long, short, "list", func() string { return *dst }, func(raw string) error {
		*dst = strings.Join(SplitList(raw), " ")
		return nil
	})
}

// Names binds a comma-/space-separated list handed to apply as tokens.
func (s *Scanner) Names(long, short string, apply func([]string) error) {
	s.define(long, short, "list", func() string { return "" }, func(raw string) error {
		return apply(SplitList(raw))
	})
}

// Int binds an integer flag with a lower bound.
func (s *Scanner) Int(dst *int, long, short string, min int) {
	s.define(long, short, "int", func() string { return strconv.Itoa(*dst) }, func(raw string) error {
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return Valuef("Invalid argument to option -%s: %s", short, raw)
		}
		if v < min {
			return Valuef("Argument to -%s must be at least %d.", short, min)
		}
		*dst = v
		return nil
	})
}

// Float binds a floating-point flag within r.
func (s *Scanner) Float(dst *float64, long, short string, r Range) {
	s.define(long, short, "float", func() string { return FormatFloat(*dst) }, func(raw string) error {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return Valuef("Invalid argument to option -%s: %s", short, raw)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Valuef("Invalid argument to option -%s: %s", short, raw)
		}
		if !r.contains(v) {
			return Valuef("Argument to -%s must be %s.", short, r.describe())
		}
		*dst = v
		return nil
	})
}

// Switch binds a flag that takes no value.
func (s *Scanner) Switch(dst *bool, long, short string) {
	s.defineSwitch(long, short, func(raw string) error {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return Valuef("Invalid argument to option -%s: %s", short, raw)
		}
		*dst = v
		return nil
	})
}

// Repeat binds a switch whose meaning escalates with each occurrence.
func (s *Scanner) Repeat(dst *Level, long, short string) {
	s.defineSwitch(long, short, func(raw string) error {
		if raw != "true" {
			return Scanf("Option -%s takes no argument.", short)
		}
		*dst = dst.Next()
		return nil
	})
}

// Help binds -h/--help; it stops the scan as soon as it is seen.
func (s *Scanner) Help() {
	s.defineSwitch("help", "h", func(string) error { return ErrHelp })
}

// Parse scans argv. The first error wins.
func (s *Scanner) Parse(argv []string) error {
	err := s.fs.Parse(argv)
	if s.err != nil {
		return s.err
	}
	if err != nil {
		return Scanf("%s", scanMessage(err))
	}
	if s.fs.NArg() > 0 {
		return Scanf("Unexpected argument: %s", s.fs.Arg(0))
	}
	return nil
}

func scanMessage(err error) string {
	var unknown *pflag.NotExistError
	if errors.As(err, &unknown) {
		if unknown.GetSpecifiedShortnames() != "" {
			return "Unknown option: -" + unknown.GetSpecifiedName()
		}
		return "Unknown option: --" + unknown.GetSpecifiedName()
	}
	var missing *pflag.ValueRequiredError
	if errors.As(err, &missing) {
		name := "-" + missing.GetSpecifiedName()
		if f := missing.GetFlag(); f != nil && f.Shorthand != "" {
			name = "-" + f.Shorthand
		} else if missing.GetSpecifiedShortnames() == "" {
			name = "-" + name
		}
		return "Option " + name + " requires an argument."
	}
	msg := err.Error()
	if msg == "" {
		return "invalid command line"
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}

// SplitList normalizes commas to spaces and drops empty tokens.
func SplitList(raw string) []string {
	return strings.Fields(strings.ReplaceAll(raw, ",", " "))
}
