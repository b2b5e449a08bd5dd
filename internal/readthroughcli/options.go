// internal/readthroughcli/options.go
package readthroughcli

import (
	"ariba/internal/clibase"
	"ariba/internal/cliutil"
	"ariba/internal/gtf"
)

// Options is the resolved configuration of extract-read-through-fusions.
type Options struct {
	InputBAM       string // -i
	OutputBAM      string // -o
	GeneAnnotation string // -g
	GTFFeatures    string // -G, as given
	Features       gtf.Features
	SingleEnd      bool // -1
}

// Defaults reads from stdin and writes to stdout, paired-end.
func Defaults() Options {
	f, err := gtf.Parse(gtf.DefaultFeatures)
	if err != nil {
		panic(err)
	}
	return Options{
		InputBAM:    "/dev/stdin",
		OutputBAM:   "/dev/stdout",
		GTFFeatures: gtf.DefaultFeatures,
		Features:    f,
	}
}

// ParseArgs scans argv on top of defaults. The first error stops the scan.
func ParseArgs(argv []string, defaults Options, probe cliutil.Prober) (Options, error) {
	o := defaults
	read := clibase.Readable(probe)

	s := clibase.NewScanner("extract-read-through-fusions")
	s.String(&o.InputBAM, "input", "i", read)
	s.String(&o.OutputBAM, "output", "o", clibase.ParentDirExists(probe))
	s.String(&o.GeneAnnotation, "annotation", "g", read)
	s.String(&o.GTFFeatures, "gtf-features", "G", func(raw string) error {
		f, err := gtf.Parse(raw)
		if err != nil {
			return clibase.Valuef("Malformed GTF features: %s", raw)
		}
		o.Features = f
		return nil
	})
	s.Switch(&o.SingleEnd, "single-end", "1")
	s.Help()

	if err := s.Parse(argv); err != nil {
		return o, err
	}
	return o, nil
}

// Validate checks that every mandatory option has a value.
func Validate(o Options) error {
	for _, m := range []struct{ flag, value string }{
		{"i", o.InputBAM},
		{"o", o.OutputBAM},
		{"g", o.GeneAnnotation},
	} {
		if m.value == "" {
			return clibase.Dependencyf("Missing mandatory option: -%s", m.flag)
		}
	}
	return nil
}
