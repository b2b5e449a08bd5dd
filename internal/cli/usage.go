// internal/cli/usage.go
package cli

import (
	"io"
	"strconv"
	"strings"

	"ariba/internal/clibase"
	"ariba/internal/filters"
)

var banner = clibase.Banner{
	Title: "Ariba RNA fusion detector",
	About: []string{
		"Ariba is a fast fusion detection algorithm. It finds RNA fusions",
		"in the chimeric BAM file generated by the STAR RNA-Seq aligner.",
	},
	Usage: []string{
		"Usage: ariba -c chimeric.bam [-r read_through.bam] -x rna.bam -g genes.bed -e exons.bed -o fusions.out",
		"             [-a assembly.fa] [-b blacklists.tsv] [-k known_fusions.tsv]",
		"             [OPTIONS]",
	},
}

const outputColumns = "gene1: name of the gene that makes the 5' end\n" +
	"gene2: name of the gene that makes the 3' end\n" +
	"strand1: strand of gene1 as per annotation (see -g)\n" +
	"strand2: strand of gene2 as per annotation (see -g)\n" +
	"breakpoint1: coordinate of breakpoint in gene1\n" +
	"breakpoint2: coordinate of breakpoint in gene2\n" +
	"site1: site in gene1 (intergenic / exonic / intronic / splice-site)\n" +
	"site2: site in gene2 (intergenic / exonic / intronic / splice-site)\n" +
	"direction1: whether gene2 is fused to gene1 upstream or downstream of breakpoint1\n" +
	"direction2: whether gene1 is fused to gene2 upstream or downstream of breakpoint2\n" +
	"split_reads1: split read count in gene1\n" +
	"split_reads2: split read count in gene2\n" +
	"discordant_mates: discordant mate count\n" +
	"e_value: expected number of fusions with this many supporting reads by pure chance (lower is better)\n" +
	"filters: why the fusion was discarded, with the number of reads removed by each filter in brackets\n" +
	"fusion_transcript: if -a is given, a transcript sequence spanning the breakpoints\n" +
	"read_identifiers: if -I is given, the names of supporting reads"

// HelpEntries documents every flag, with defaults taken from d.
func HelpEntries(d Options) []clibase.HelpEntry {
	return []clibase.HelpEntry{
		{Signature: "-c FILE", Text: "BAM file with chimeric alignments as generated by STAR. The file must be " +
			"in BAM format, but not necessarily sorted."},
		{Signature: "-r FILE", Text: "BAM file with read-through alignments as generated by " +
			"'extract-read-through-fusions'. STAR does not report read-through fusions in the " +
			"chimeric BAM file, so they must be extracted from the RNA BAM file, ideally while " +
			"STAR is running. Example:\n" +
			"STAR --outStd BAM [...] | tee rna.bam | \\\n" +
			"extract-read-through-fusions -g genes.gtf > read_through.bam"},
		{Signature: "-x FILE", Text: "BAM file with RNA-Seq data. The file must be sorted by coordinate and an " +
			"index with the file extension .bai must be present. It is used to estimate the mate " +
			"gap distribution and to discard fusions without expression around the breakpoints."},
		{Signature: "-g FILE", Text: "BED file with gene annotation. Required columns: (1) contig, (2) gene_start, " +
			"(3) gene_end, (4) gene_name, (5) ignored, (6) strand. The file may be gzip-compressed."},
		{Signature: "-e FILE", Text: "BED file with exon annotation. The same columns are required as for the " +
			"gene annotation (see -g). There should not be any exons outside genes. The file may " +
			"be gzip-compressed."},
		{Signature: "-o FILE", Text: "Output file with fusions that have passed all filters. The file contains " +
			"the following tab-separated columns:\n" + outputColumns},
		{Signature: "-O FILE", Text: "Output file with fusions that were discarded due to filtering. See -o for " +
			"a description of the format."},
		{Signature: "-a FILE", Text: "FastA file with the genome sequence (assembly). A FastA index with the " +
			"extension .fai must be present. Reads are re-aligned to the donor gene to identify " +
			"segments which STAR mapped to the wrong gene (mismappers). The output also contains " +
			"a transcript sequence spanning the fusion breakpoints. Required unless the " +
			"'mismappers' filter is disabled."},
		{Signature: "-k FILE", Text: "File with known/recurrent fusions: two tab-separated columns with the names " +
			"of the fused genes. The 'promiscuous_genes' filter is disabled for these gene pairs " +
			"to boost sensitivity. The file may be gzip-compressed."},
		{Signature: "-b FILE", Text: "File with blacklisted ranges: two tab-separated columns, each a genomic " +
			"coordinate of the form 'contig:position' or 'contig:start-end'. The second column " +
			"may instead hold one of the keywords any, split_read_donor, split_read_acceptor, " +
			"split_read_any, discordant_mates. The file may be gzip-compressed. Required unless " +
			"the 'blacklist' filter is disabled."},
		{Signature: "-i CONTIGS", Text: "Comma-/space-separated list of interesting contigs. Fusions between genes " +
			"on other contigs are ignored. Contigs can be given with or without the prefix " +
			"\"chr\".\nDefault: " + d.InterestingContigs},
		{Signature: "-f FILTERS", Text: "Comma-/space-separated list of filters to disable. By default all " +
			"filters are enabled. Valid values: " + strings.Join(d.Filters.Registry().Names(), ", ")},
		{Signature: "-E MAX_E-VALUE", Text: "Expected number of fusions with a given number of supporting reads " +
			"by random chance. Fusions with a higher e-value are discarded by the " +
			"'promiscuous_genes' filter. Raising it can dramatically increase false positives " +
			"and the runtime of the 'mismappers' and 'no_expression' filters. Fractional values " +
			"are possible. Default: " + clibase.FormatFloat(d.EValueCutoff)},
		{Signature: "-s MIN_SUPPORTING_READS", Text: "The 'min_support' filter discards all fusions with fewer " +
			"than this many supporting reads (split reads and discordant mates combined). " +
			"Default: " + strconv.Itoa(d.MinSupport)},
		{Signature: "-l", Text: "Increase sensitivity in samples with low tumor content or subclonal fusions. " +
			"Fusions with fewer supporting reads than expected from the sequencing depth are not " +
			"discarded by the 'promiscuous_genes' filter. Default: " + clibase.OnOff(d.LowTumorContent)},
		{Signature: "-m MAX_MISMAPPERS", Text: "When more than this fraction of supporting reads turns out to be " +
			"mismappers, the 'mismappers' filter discards the fusion. Must be between 0 and 1. " +
			"Default: " + clibase.FormatFloat(d.MaxMismapperFraction)},
		{Signature: "-H HOMOPOLYMER_LENGTH", Text: "The 'homopolymer' filter removes breakpoints adjacent to " +
			"homopolymers of this length or more. Default: " + strconv.Itoa(d.HomopolymerLength)},
		{Signature: "-D READ_THROUGH_DISTANCE", Text: "The 'read_through' filter removes mates that map less than " +
			"this distance away from the gene of the other mate, unless both mates map to " +
			"annotated genes. Default: " + strconv.Itoa(d.MinReadThroughDistance)},
		{Signature: "-A MIN_ANCHOR_LENGTH", Text: "The 'short_anchor' filter removes fusions supported only by " +
			"split reads from one gene that align to a stretch shorter than this many bp. " +
			"Default: " + strconv.Itoa(d.MinAnchorLength)},
		{Signature: "-K MAX_KMER_CONTENT", Text: "The 'low_entropy' filter removes reads whose repetitive 3-mers " +
			"make up more than this fraction of the sequence. Default: " + clibase.FormatFloat(d.MaxKmerContent)},
		{Signature: "-I", Text: "Populate the column 'read_identifiers' with the comma-separated names of the " +
			"reads supporting a fusion. Give twice to do so for discarded fusions as well. " +
			"Default: " + clibase.OnOff(d.PrintSupportingReads())},
		{Signature: "-h", Text: "Print help and exit."},
	}
}

// PrintUsage writes the help text for reg to w, preceded by msg if set.
// Callers exit with status 1 afterwards.
func PrintUsage(w io.Writer, reg filters.Registry, msg string) {
	clibase.WriteUsage(w, msg, banner, HelpEntries(Defaults(reg)))
}
