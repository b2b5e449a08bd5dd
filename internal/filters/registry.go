// internal/filters/registry.go
package filters

import (
	"errors"
	"fmt"
)

// Registry is the immutable, ordered set of filter names known to ariba.
// Order is insertion order and drives help text and error listings.
type Registry struct {
	names []string
	index map[string]int
}

// Names of the built-in filters, in processing order.
const (
	Duplicates           = "duplicates"
	UninterestingContigs = "uninteresting_contigs"
	ReadThrough          = "read_through"
	SameGene             = "same_gene"
	SmallInsertSize      = "small_insert_size"
	Hairpin              = "hairpin"
	LowEntropy           = "low_entropy"
	Homopolymer          = "homopolymer"
	ShortAnchor          = "short_anchor"
	Mismappers           = "mismappers"
	PromiscuousGenes     = "promiscuous_genes"
	MinSupport           = "min_support"
	NoExpression         = "no_expression"
	Blacklist            = "blacklist"
)

// New builds a registry from names. Empty and duplicate names are rejected.
func New(names ...string) (Registry, error) {
	r := Registry{names: make([]string, 0, len(names)), index: make(map[string]int, len(names))}
	for _, n := range names {
		if n == "" {
			return Registry{}, errors.New("filters: empty filter name")
		}
		if _, dup := r.index[n]; dup {
			return Registry{}, fmt.Errorf("filters: duplicate filter name %q", n)
		}
		r.index[n] = len(r.names)
		r.names = append(r.names, n)
	}
	return r, nil
}

// Default returns the registry of built-in filters.
func Default() Registry {
	r, err := New(
		Duplicates,
		UninterestingContigs,
		ReadThrough,
		SameGene,
		SmallInsertSize,
		Hairpin,
		LowEntropy,
		Homopolymer,
		ShortAnchor,
		Mismappers,
		PromiscuousGenes,
		MinSupport,
		NoExpression,
		Blacklist,
	)
	if err != nil {
		panic(err)
	}
	return r
}

// Names returns a copy of the registered names in insertion order.
func (r Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Contains reports whether name is a registered filter.
func (r Registry) Contains(name string) bool {
	_, ok := r.index[name]
	return ok
}

// Len returns the number of registered filters.
func (r Registry) Len() int { return len(r.names) }
