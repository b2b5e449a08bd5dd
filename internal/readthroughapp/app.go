// internal/readthroughapp/app.go
package readthroughapp

import (
	"context"
	"io"

	"ariba/internal/clibase"
	"ariba/internal/cliutil"
	"ariba/internal/cmdutil"
	"ariba/internal/readthroughcli"
	"ariba/internal/writers"
	"ariba/pkg/api"
)

// Stage consumes a validated configuration.
type Stage func(ctx context.Context, opts readthroughcli.Options, stdout io.Writer) error

// Env holds the collaborators of a run.
type Env struct {
	Probe cliutil.Prober
	Stage Stage
}

// DefaultEnv probes the real file system and hands off YAML on stdout.
func DefaultEnv() Env { return Env{Probe: cliutil.OS(), Stage: Handoff} }

// Handoff writes the validated configuration for the extraction stage.
func Handoff(_ context.Context, o readthroughcli.Options, stdout io.Writer) error {
	return writers.WriteYAML(stdout, api.ReadThroughConfigV1{
		Version:        api.ConfigVersion,
		InputBAM:       o.InputBAM,
		OutputBAM:      o.OutputBAM,
		GeneAnnotation: o.GeneAnnotation,
		GTFFeatures:    o.Features,
		SingleEnd:      o.SingleEnd,
	})
}

// RunContext runs the tool with DefaultEnv and returns its exit code.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	return RunWith(ctx, DefaultEnv(), argv, stdout, stderr)
}

// RunWith resolves and validates argv, then runs env.Stage.
func RunWith(ctx context.Context, env Env, argv []string, stdout, stderr io.Writer) int {
	opts, err := readthroughcli.ParseArgs(argv, readthroughcli.Defaults(), env.Probe)
	if err == nil {
		err = readthroughcli.Validate(opts)
	}
	if err != nil {
		readthroughcli.PrintUsage(stderr, clibase.Message(err))
		return 1
	}
	if err := env.Stage(ctx, opts, stdout); err != nil {
		log := cmdutil.NewLogger(stderr)
		log.Error().Err(err).Msg("cannot hand off configuration")
		return 3
	}
	return 0
}
