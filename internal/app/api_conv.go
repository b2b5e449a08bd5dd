package app

import (
	"ariba/internal/cli"
	"ariba/pkg/api"
)

// CallerConfig converts validated options to the v1 wire format.
func CallerConfig(o cli.Options) api.CallerConfigV1 {
	var fl []api.FilterV1
	o.Filters.Each(func(name string, on bool) {
		fl = append(fl, api.FilterV1{Name: name, Enabled: on})
	})
	return api.CallerConfigV1{
		Version: api.ConfigVersion,
		Inputs: api.CallerInputsV1{
			ChimericBAM:    o.ChimericBAM,
			ReadThroughBAM: o.ReadThroughBAM,
			RNABAM:         o.RNABAM,
			GeneAnnotation: o.GeneAnnotation,
			ExonAnnotation: o.ExonAnnotation,
			Assembly:       o.Assembly,
			KnownFusions:   o.KnownFusions,
			Blacklist:      o.Blacklist,
		},
		Outputs: api.CallerOutputsV1{Fusions: o.Output, Discarded: o.DiscardedOutput},
		Contigs: o.Contigs(),
		Filters: fl,
		Thresholds: api.ThresholdsV1{
			MaxEValue:              o.EValueCutoff,
			MinSupport:             o.MinSupport,
			LowTumorContent:        o.LowTumorContent,
			MaxMismapperFraction:   o.MaxMismapperFraction,
			HomopolymerLength:      o.HomopolymerLength,
			MinReadThroughDistance: o.MinReadThroughDistance,
			MinAnchorLength:        o.MinAnchorLength,
			MaxKmerContent:         o.MaxKmerContent,
		},
		Reporting: api.ReportingV1{
			SupportingReads:          o.PrintSupportingReads(),
			SupportingReadsDiscarded: o.PrintSupportingReadsForDiscarded(),
		},
	}
}
