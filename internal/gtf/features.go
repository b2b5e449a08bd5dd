// Package gtf describes which GTF attributes and feature types identify
// genes, transcripts and exons in an annotation file.
package gtf

import (
	"fmt"
	"strings"
)

// Keys of the feature grammar, in canonical order.
const (
	GeneName     = "gene_name"
	GeneID       = "gene_id"
	TranscriptID = "transcript_id"
	FeatureExon  = "feature_exon"
	FeatureUTR   = "feature_UTR"
	FeatureGene  = "feature_gene"
)

var keys = []string{GeneName, GeneID, TranscriptID, FeatureExon, FeatureUTR, FeatureGene}

// DefaultFeatures is the feature string used when -G is not given.
const DefaultFeatures = "gene_name=gene_name|gene_id gene_id=gene_id transcript_id=transcript_id feature_exon=exon feature_UTR=UTR feature_gene=gene"

// Features maps each grammar key to its accepted names, in preference order.
type Features map[string][]string

// Parse reads a comma-/space-separated list of key=name1|name2 tokens.
// Keys that are not mentioned keep their default names.
func Parse(s string) (Features, error) {
	f := defaults()
	seen := map[string]bool{}
	for _, tok := range strings.Fields(strings.ReplaceAll(s, ",", " ")) {
		key, val, ok := strings.Cut(tok, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("gtf: token %q is not key=value", tok)
		}
		if _, known := f[key]; !known {
			return nil, fmt.Errorf("gtf: unknown feature key %q", key)
		}
		if seen[key] {
			return nil, fmt.Errorf("gtf: feature key %q given twice", key)
		}
		seen[key] = true
		alts := strings.Split(val, "|")
		for _, a := range alts {
			if a == "" {
				return nil, fmt.Errorf("gtf: empty name for feature key %q", key)
			}
		}
		f[key] = alts
	}
	return f, nil
}

func defaults() Features {
	f := Features{}
	for _, tok := range strings.Fields(DefaultFeatures) {
		key, val, _ := strings.Cut(tok, "=")
		f[key] = strings.Split(val, "|")
	}
	return f
}

// String renders the features in canonical key order.
func (f Features) String() string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if alts, ok := f[k]; ok {
			parts = append(parts, k+"="+strings.Join(alts, "|"))
		}
	}
	return strings.Join(parts, " ")
}
