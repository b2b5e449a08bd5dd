package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ariba/internal/clibase"
	"ariba/internal/cliutil"
	"ariba/internal/filters"
)

var inputs = []string{
	"/d/chimeric.bam", "/d/read_through.bam", "/d/rna.bam", "/d/rna.bam.bai",
	"/d/genes.bed", "/d/exons.bed", "/d/assembly.fa", "/d/assembly.fa.fai",
	"/d/known.tsv", "/d/blacklist.tsv",
}

func newProber(t *testing.T, files ...string) cliutil.Prober {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, f := range files {
		require.NoError(t, afero.WriteFile(fs, f, []byte("x"), 0o644))
	}
	return cliutil.FSProber{Fs: fs}
}

func parse(t *testing.T, args ...string) (Options, error) {
	t.Helper()
	return ParseArgs(args, Defaults(filters.Default()), newProber(t, inputs...))
}

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	o, err := parse(t, args...)
	require.NoError(t, err)
	return o
}

var cmpOpts = cmp.AllowUnexported(filters.Toggles{}, filters.Registry{})

func TestNoArgsYieldsDefaults(t *testing.T) {
	o := mustParse(t)
	if diff := cmp.Diff(Defaults(filters.Default()), o, cmpOpts); diff != "" {
		t.Fatalf("defaults (-want +got):\n%s", diff)
	}
	assert.Len(t, o.Contigs(), 24)
	assert.False(t, o.PrintSupportingReads())
	assert.False(t, o.PrintSupportingReadsForDiscarded())
}

func TestEachFlagSetsItsField(t *testing.T) {
	cases := []struct {
		args []string
		want func(*Options)
	}{
		{[]string{"-c", "/d/chimeric.bam"}, func(o *Options) { o.ChimericBAM = "/d/chimeric.bam" }},
		{[]string{"-r", "/d/read_through.bam"}, func(o *Options) { o.ReadThroughBAM = "/d/read_through.bam" }},
		{[]string{"-x", "/d/rna.bam"}, func(o *Options) { o.RNABAM = "/d/rna.bam" }},
		{[]string{"-g", "/d/genes.bed"}, func(o *Options) { o.GeneAnnotation = "/d/genes.bed" }},
		{[]string{"-e", "/d/exons.bed"}, func(o *Options) { o.ExonAnnotation = "/d/exons.bed" }},
		{[]string{"-o", "/out/fusions.tsv"}, func(o *Options) { o.Output = "/out/fusions.tsv" }},
		{[]string{"-O", "/out/discarded.tsv"}, func(o *Options) { o.DiscardedOutput = "/out/discarded.tsv" }},
		{[]string{"-a", "/d/assembly.fa"}, func(o *Options) { o.Assembly = "/d/assembly.fa" }},
		{[]string{"-k", "/d/known.tsv"}, func(o *Options) { o.KnownFusions = "/d/known.tsv" }},
		{[]string{"-b", "/d/blacklist.tsv"}, func(o *Options) { o.Blacklist = "/d/blacklist.tsv" }},
		{[]string{"-i", "1,2 X"}, func(o *Options) { o.InterestingContigs = "1 2 X" }},
		{[]string{"-E", "0.25"}, func(o *Options) { o.EValueCutoff = 0.25 }},
		{[]string{"-s", "5"}, func(o *Options) { o.MinSupport = 5 }},
		{[]string{"-l"}, func(o *Options) { o.LowTumorContent = true }},
		{[]string{"-m", "0.8"}, func(o *Options) { o.MaxMismapperFraction = 0.8 }},
		{[]string{"-H", "8"}, func(o *Options) { o.HomopolymerLength = 8 }},
		{[]string{"-D", "5000"}, func(o *Options) { o.MinReadThroughDistance = 5000 }},
		{[]string{"-A", "15"}, func(o *Options) { o.MinAnchorLength = 15 }},
		{[]string{"-K", "0.7"}, func(o *Options) { o.MaxKmerContent = 0.7 }},
		{[]string{"-I"}, func(o *Options) { o.SupportingReads = clibase.Once }},
		{[]string{"--min-support", "9"}, func(o *Options) { o.MinSupport = 9 }},
	}
	for _, tc := range cases {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			want := Defaults(filters.Default())
			tc.want(&want)
			got := mustParse(t, tc.args...)
			if diff := cmp.Diff(want, got, cmpOpts); diff != "" {
				t.Fatalf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestDisableFiltersMixedSeparators(t *testing.T) {
	o := mustParse(t, "-f", "hairpin,same_gene duplicates")
	assert.Equal(t, []string{"duplicates", "same_gene", "hairpin"}, o.Filters.Disabled())
}

func TestDisableFiltersAccumulate(t *testing.T) {
	o := mustParse(t, "-f", "hairpin", "-f", ",,blacklist,")
	assert.Equal(t, []string{"hairpin", "blacklist"}, o.Filters.Disabled())
}

func TestDisableFiltersUnknownNameDisablesNothing(t *testing.T) {
	o, err := parse(t, "-f", "hairpin,bogus same_gene")
	require.Error(t, err)
	assert.Equal(t, "Invalid argument to option -f: bogus", clibase.Message(err))
	assert.Empty(t, o.Filters.Disabled())
}

func TestSupportingReadsLevels(t *testing.T) {
	for _, tc := range []struct {
		args           []string
		once, discards bool
	}{
		{nil, false, false},
		{[]string{"-I"}, true, false},
		{[]string{"-I", "-I"}, true, true},
		{[]string{"-II", "-I"}, true, true},
	} {
		o := mustParse(t, tc.args...)
		assert.Equal(t, tc.once, o.PrintSupportingReads(), "%v", tc.args)
		assert.Equal(t, tc.discards, o.PrintSupportingReadsForDiscarded(), "%v", tc.args)
	}
}

func TestFractionOutOfRangeStopsScan(t *testing.T) {
	o, err := parse(t, "-s", "4", "-m", "1.01", "-H", "9")
	require.Error(t, err)
	assert.Equal(t, clibase.KindValue, clibase.KindOf(err))
	assert.Equal(t, "Argument to -m must be between 0 and 1.", err.Error())
	assert.Equal(t, 4, o.MinSupport)
	assert.Equal(t, 6, o.HomopolymerLength)
}

func TestPathsAreProbedOnAssignment(t *testing.T) {
	p := newProber(t, "/d/rna.bam", "/d/assembly.fa")
	_, err := ParseArgs([]string{"-x", "/d/rna.bam"}, Defaults(filters.Default()), p)
	assert.Equal(t, "File '/d/rna.bam.bai' not found.", clibase.Message(err))

	_, err = ParseArgs([]string{"-a", "/d/assembly.fa"}, Defaults(filters.Default()), p)
	assert.Equal(t, "File '/d/assembly.fa.fai' not found.", clibase.Message(err))

	_, err = ParseArgs([]string{"-c", "/d/none.bam", "-z"}, Defaults(filters.Default()), p)
	assert.Equal(t, clibase.KindFile, clibase.KindOf(err))
	assert.Equal(t, "File '/d/none.bam' not found.", clibase.Message(err))
}

func TestOutputsAreNotProbed(t *testing.T) {
	o := mustParse(t, "-o", "/nowhere/out.tsv", "-O", "/nowhere/disc.tsv")
	assert.Equal(t, "/nowhere/out.tsv", o.Output)
}

func TestScanErrors(t *testing.T) {
	for _, tc := range []struct {
		args []string
		want string
	}{
		{[]string{"-z"}, "Unknown option: -z"},
		{[]string{"-c"}, "Option -c requires an argument."},
		{[]string{"-o", "x", "positional"}, "Unexpected argument: positional"},
	} {
		_, err := parse(t, tc.args...)
		assert.Equal(t, clibase.KindScan, clibase.KindOf(err), "%v", tc.args)
		assert.Equal(t, tc.want, clibase.Message(err), "%v", tc.args)
	}
}

func TestInfiniteEValueRejected(t *testing.T) {
	_, err := parse(t, "-E", "Inf")
	assert.Equal(t, clibase.KindValue, clibase.KindOf(err))
	assert.Equal(t, "Invalid argument to option -E: Inf", clibase.Message(err))
}

func TestHelpFlag(t *testing.T) {
	_, err := parse(t, "-s", "3", "-h")
	assert.Equal(t, clibase.KindHelp, clibase.KindOf(err))
}

func TestParseDoesNotMutateDefaults(t *testing.T) {
	d := Defaults(filters.Default())
	_, err := ParseArgs([]string{"-f", "mismappers", "-s", "7"}, d, newProber(t))
	require.NoError(t, err)
	assert.True(t, d.Filters.Enabled(filters.Mismappers))
	assert.Equal(t, 2, d.MinSupport)
}

func full(extra ...string) []string {
	return append([]string{
		"-c", "/d/chimeric.bam", "-x", "/d/rna.bam", "-g", "/d/genes.bed",
		"-e", "/d/exons.bed", "-o", "/out/fusions.tsv",
	}, extra...)
}

func TestValidateMandatory(t *testing.T) {
	for _, flag := range []string{"c", "x", "g", "e", "o"} {
		t.Run(flag, func(t *testing.T) {
			var args []string
			all := full("-a", "/d/assembly.fa", "-b", "/d/blacklist.tsv")
			for i := 0; i < len(all); i += 2 {
				if all[i] != "-"+flag {
					args = append(args, all[i], all[i+1])
				}
			}
			o := mustParse(t, args...)
			_, err := Validate(o)
			assert.Equal(t, clibase.KindDependency, clibase.KindOf(err))
			assert.Equal(t, "Missing mandatory option: -"+flag, clibase.Message(err))
		})
	}
}

func TestValidateMandatoryBeforeDependencies(t *testing.T) {
	o := mustParse(t, "-x", "/d/rna.bam")
	_, err := Validate(o)
	assert.Equal(t, "Missing mandatory option: -c", clibase.Message(err))
}

func TestValidateMismappersNeedAssembly(t *testing.T) {
	o := mustParse(t, full("-b", "/d/blacklist.tsv")...)
	_, err := Validate(o)
	assert.Equal(t, "Filter 'mismappers' enabled, but missing option: -a", clibase.Message(err))

	o = mustParse(t, full("-b", "/d/blacklist.tsv", "-f", "mismappers")...)
	_, err = Validate(o)
	assert.NoError(t, err)
}

func TestValidateBlacklistNeedsFile(t *testing.T) {
	o := mustParse(t, full("-a", "/d/assembly.fa")...)
	_, err := Validate(o)
	assert.Equal(t, "Filter 'blacklist' enabled, but missing option: -b", clibase.Message(err))
}

func TestValidateReportsOneDependencyAtATime(t *testing.T) {
	o := mustParse(t, full()...)
	_, err := Validate(o)
	assert.Equal(t, "Filter 'mismappers' enabled, but missing option: -a", clibase.Message(err))
}

func TestValidateReadThroughAdvisory(t *testing.T) {
	o := mustParse(t, full("-f", "mismappers,blacklist")...)
	warns, err := Validate(o)
	require.NoError(t, err)
	assert.Equal(t, []string{"missing option: -r, no read-through fusions will be detected"}, warns)

	o = mustParse(t, full("-f", "mismappers,blacklist", "-r", "/d/read_through.bam")...)
	warns, err = Validate(o)
	require.NoError(t, err)
	assert.Empty(t, warns)
}

func TestUsageListsFiltersInRegistryOrder(t *testing.T) {
	reg := filters.Default()
	var buf bytes.Buffer
	PrintUsage(&buf, reg, "Missing mandatory option: -c")
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "ERROR: Missing mandatory option: -c\n"))
	flat := strings.Join(strings.Fields(out), " ")
	assert.Contains(t, flat, "Valid values: "+strings.Join(reg.Names(), ", "))
	assert.Contains(t, flat, "Default: 0.4")
	assert.Contains(t, flat, "Default: 1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 16 17 18 19 20 21 22 X Y")
	assert.Contains(t, out, " -m MAX_MISMAPPERS\n")
}

func TestUsageCustomRegistry(t *testing.T) {
	reg, err := filters.New("zeta", "alpha", "mismappers", "blacklist")
	require.NoError(t, err)
	var buf bytes.Buffer
	PrintUsage(&buf, reg, "")
	flat := strings.Join(strings.Fields(buf.String()), " ")
	assert.Contains(t, flat, "Valid values: zeta, alpha, mismappers, blacklist")
	assert.False(t, strings.HasPrefix(buf.String(), "ERROR"))
}
