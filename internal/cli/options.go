// internal/cli/options.go
package cli

import (
	"errors"
	"strings"

	"ariba/internal/clibase"
	"ariba/internal/cliutil"
	"ariba/internal/filters"
)

// DefaultContigs are the contigs whose fusions are reported by default.
const DefaultContigs = "1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 16 17 18 19 20 21 22 X Y"

// Options is the resolved configuration of the fusion caller.
type Options struct {
	// Inputs
	ChimericBAM    string // -c
	ReadThroughBAM string // -r
	RNABAM         string // -x, needs .bai
	GeneAnnotation string // -g
	ExonAnnotation string // -e
	Assembly       string // -a, needs .fai
	KnownFusions   string // -k
	Blacklist      string // -b

	// Outputs
	Output          string // -o
	DiscardedOutput string // -O

	// Filtering
	InterestingContigs     string // -i, space-separated
	Filters                filters.Toggles
	EValueCutoff           float64 // -E
	MinSupport             int     // -s
	LowTumorContent        bool    // -l
	MaxMismapperFraction   float64 // -m
	HomopolymerLength      int     // -H
	MinReadThroughDistance int     // -D
	MinAnchorLength        int     // -A
	MaxKmerContent         float64 // -K

	// SupportingReads counts -I: Once prints read names for passing
	// fusions, Twice also for discarded ones.
	SupportingReads clibase.Level
}

// Defaults returns the documented defaults with every filter of reg enabled.
func Defaults(reg filters.Registry) Options {
	return Options{
		InterestingContigs:     DefaultContigs,
		Filters:                filters.AllEnabled(reg),
		EValueCutoff:           0.4,
		MinSupport:             2,
		MaxMismapperFraction:   0.5,
		MinAnchorLength:        20,
		HomopolymerLength:      6,
		MinReadThroughDistance: 10000,
		MaxKmerContent:         0.6,
	}
}

// Clone returns a copy that shares no mutable state with o.
func (o Options) Clone() Options {
	o.Filters = o.Filters.Clone()
	return o
}

// Contigs splits InterestingContigs into names.
func (o Options) Contigs() []string { return strings.Fields(o.InterestingContigs) }

func (o Options) PrintSupportingReads() bool { return o.SupportingReads >= clibase.Once }

func (o Options) PrintSupportingReadsForDiscarded() bool {
	return o.SupportingReads >= clibase.Twice
}

// ParseArgs scans argv on top of a copy of defaults. Paths are probed as soon
// as they are assigned; the first error stops the scan. The result is not
// yet cross-validated, see Validate.
func ParseArgs(argv []string, defaults Options, probe cliutil.Prober) (Options, error) {
	o := defaults.Clone()
	read := clibase.Readable(probe)

	s := clibase.NewScanner("ariba")
	s.String(&o.ChimericBAM, "chimeric", "c", read)
	s.String(&o.ReadThroughBAM, "read-through", "r", read)
	s.String(&o.RNABAM, "rna", "x", read, clibase.Companion(probe, ".bai"))
	s.String(&o.GeneAnnotation, "genes", "g", read)
	s.String(&o.ExonAnnotation, "exons", "e", read)
	s.String(&o.Output, "output", "o")
	s.String(&o.DiscardedOutput, "discarded", "O")
	s.String(&o.Assembly, "assembly", "a", read, clibase.Companion(probe, ".fai"))
	s.String(&o.KnownFusions, "known-fusions", "k", read)
	s.String(&o.Blacklist, "blacklist", "b", read)
	s.List(&o.InterestingContigs, "interesting-contigs", "i")
	s.Names("disable-filters", "f", func(names []string) error {
		if err := o.Filters.Disable(names...); err != nil {
			var ufe *filters.UnknownFilterError
			if errors.As(err, &ufe) {
				return clibase.Scanf("Invalid argument to option -f: %s", ufe.Name)
			}
			return err
		}
		return nil
	})
	s.Float(&o.EValueCutoff, "max-e-value", "E", clibase.NonNegative)
	s.Int(&o.MinSupport, "min-support", "s", 0)
	s.Switch(&o.LowTumorContent, "low-tumor-content", "l")
	s.Float(&o.MaxMismapperFraction, "max-mismappers", "m", clibase.Fraction)
	s.Int(&o.HomopolymerLength, "homopolymer-length", "H", 0)
	s.Int(&o.MinReadThroughDistance, "read-through-distance", "D", 0)
	s.Int(&o.MinAnchorLength, "min-anchor-length", "A", 0)
	s.Float(&o.MaxKmerContent, "max-kmer-content", "K", clibase.Fraction)
	s.Repeat(&o.SupportingReads, "print-supporting-reads", "I")
	s.Help()

	if err := s.Parse(argv); err != nil {
		return o, err
	}
	return o, nil
}
