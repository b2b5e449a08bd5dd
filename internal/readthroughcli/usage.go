package readthroughcli

import (
	"io"

	"ariba/internal/clibase"
)

var banner = clibase.Banner{
	Title: "Ariba RNA fusion detector - extract-read-through-fusions",
	About: []string{
		"This is a helper utility of Ariba. The STAR RNA-Seq aligner does not report",
		"read-through fusions in the chimeric BAM file. This program extracts reads",
		"supporting read-through fusions from the RNA BAM file. Pass its output to",
		"ariba via the parameter -r. For best performance run it while STAR is running.",
	},
	Usage: []string{
		"Usage: extract-read-through-fusions -g annotation.gtf -i rna.bam -o read_through.bam",
		"Usage: STAR --outStd BAM [...] | tee rna.bam | extract-read-through-fusions -g annotation.gtf > read_through.bam",
	},
}

// HelpEntries documents every flag, with defaults taken from d.
func HelpEntries(d Options) []clibase.HelpEntry {
	layout := "paired-end"
	if d.SingleEnd {
		layout = "single-end"
	}
	return []clibase.HelpEntry{
		{Signature: "-i FILE", Text: "Input file in BAM format with alignments from STAR. The file need not be " +
			"sorted. Default: " + d.InputBAM},
		{Signature: "-o FILE", Text: "Output file in BAM format with the reads supporting read-through fusions. " +
			"Default: " + d.OutputBAM},
		{Signature: "-g FILE", Text: "GTF file with gene annotation. The file may be gzip-compressed."},
		{Signature: "-G GTF_FEATURES", Text: "Comma-/space-separated list of names of GTF features.\n" +
			"Default: " + d.GTFFeatures},
		{Signature: "-1", Text: "Single-end data. Default: " + layout},
		{Signature: "-h", Text: "Print help and exit."},
	}
}

// PrintUsage writes the help text to w, preceded by msg if set.
func PrintUsage(w io.Writer, msg string) {
	clibase.WriteUsage(w, msg, banner, HelpEntries(Defaults()))
}
