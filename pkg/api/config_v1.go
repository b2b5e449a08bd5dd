// pkg/api/config_v1.go
package api

// ConfigVersion tags every handoff document.
const ConfigVersion = "v1"

// CallerConfigV1 is the validated configuration of the fusion caller as
// handed to the calling and filtering stages.
type CallerConfigV1 struct {
	Version    string          `yaml:"version" json:"version"`
	Inputs     CallerInputsV1  `yaml:"inputs" json:"inputs"`
	Outputs    CallerOutputsV1 `yaml:"outputs" json:"outputs"`
	Contigs    []string        `yaml:"interesting_contigs" json:"interesting_contigs"`
	Filters    []FilterV1      `yaml:"filters" json:"filters"`
	Thresholds ThresholdsV1    `yaml:"thresholds" json:"thresholds"`
	Reporting  ReportingV1     `yaml:"reporting" json:"reporting"`
}

type CallerInputsV1 struct {
	ChimericBAM    string `yaml:"chimeric_bam" json:"chimeric_bam"`
	ReadThroughBAM string `yaml:"read_through_bam,omitempty" json:"read_through_bam,omitempty"`
	RNABAM         string `yaml:"rna_bam" json:"rna_bam"`
	GeneAnnotation string `yaml:"gene_annotation" json:"gene_annotation"`
	ExonAnnotation string `yaml:"exon_annotation" json:"exon_annotation"`
	Assembly       string `yaml:"assembly,omitempty" json:"assembly,omitempty"`
	KnownFusions   string `yaml:"known_fusions,omitempty" json:"known_fusions,omitempty"`
	Blacklist      string `yaml:"blacklist,omitempty" json:"blacklist,omitempty"`
}

type CallerOutputsV1 struct {
	Fusions   string `yaml:"fusions" json:"fusions"`
	Discarded string `yaml:"discarded,omitempty" json:"discarded,omitempty"`
}

// FilterV1 is one filter toggle; the list keeps registry order.
type FilterV1 struct {
	Name    string `yaml:"name" json:"name"`
	Enabled bool   `yaml:"enabled" json:"enabled"`
}

type ThresholdsV1 struct {
	MaxEValue              float64 `yaml:"max_e_value" json:"max_e_value"`
	MinSupport             int     `yaml:"min_support" json:"min_support"`
	LowTumorContent        bool    `yaml:"low_tumor_content" json:"low_tumor_content"`
	MaxMismapperFraction   float64 `yaml:"max_mismapper_fraction" json:"max_mismapper_fraction"`
	HomopolymerLength      int     `yaml:"homopolymer_length" json:"homopolymer_length"`
	MinReadThroughDistance int     `yaml:"min_read_through_distance" json:"min_read_through_distance"`
	MinAnchorLength        int     `yaml:"min_anchor_length" json:"min_anchor_length"`
	MaxKmerContent         float64 `yaml:"max_kmer_content" json:"max_kmer_content"`
}

type ReportingV1 struct {
	SupportingReads          bool `yaml:"supporting_reads" json:"supporting_reads"`
	SupportingReadsDiscarded bool `yaml:"supporting_reads_discarded" json:"supporting_reads_discarded"`
}

// ReadThroughConfigV1 is the validated configuration of
// extract-read-through-fusions.
type ReadThroughConfigV1 struct {
	Version        string              `yaml:"version" json:"version"`
	InputBAM       string              `yaml:"input_bam" json:"input_bam"`
	OutputBAM      string              `yaml:"output_bam" json:"output_bam"`
	GeneAnnotation string              `yaml:"gene_annotation" json:"gene_annotation"`
	GTFFeatures    map[string][]string `yaml:"gtf_features" json:"gtf_features"`
	SingleEnd      bool                `yaml:"single_end" json:"single_end"`
}
