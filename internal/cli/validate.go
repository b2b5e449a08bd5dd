// internal/cli/validate.go
package cli

import (
	"ariba/internal/clibase"
	"ariba/internal/filters"
)

// Validate checks mandatory options, then options required by enabled
// filters. The first failure is returned. Advisories are returned as
// warnings only when validation passes.
func Validate(o Options) ([]string, error) {
	mandatory := []struct {
		flag  string
		value string
	}{
		{"c", o.ChimericBAM},
		{"x", o.RNABAM},
		{"g", o.GeneAnnotation},
		{"e", o.ExonAnnotation},
		{"o", o.Output},
	}
	for _, m := range mandatory {
		if m.value == "" {
			return nil, clibase.Dependencyf("Missing mandatory option: -%s", m.flag)
		}
	}

	needs := []struct {
		filter string
		flag   string
		value  string
	}{
		{filters.Mismappers, "a", o.Assembly},
		{filters.Blacklist, "b", o.Blacklist},
	}
	for _, n := range needs {
		if o.Filters.Enabled(n.filter) && n.value == "" {
			return nil, clibase.Dependencyf("Filter '%s' enabled, but missing option: -%s", n.filter, n.flag)
		}
	}

	var warns []string
	if o.ReadThroughBAM == "" {
		warns = append(warns, "missing option: -r, no read-through fusions will be detected")
	}
	return warns, nil
}
