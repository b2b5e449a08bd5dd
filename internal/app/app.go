// internal/app/app.go
package app

import (
	"context"
	"io"

	"ariba/internal/cli"
	"ariba/internal/clibase"
	"ariba/internal/cliutil"
	"ariba/internal/cmdutil"
	"ariba/internal/filters"
	"ariba/internal/writers"
)

// Stage consumes a validated configuration.
type Stage func(ctx context.Context, opts cli.Options, stdout io.Writer) error

// Env holds the collaborators of a run.
type Env struct {
	Registry filters.Registry
	Probe    cliutil.Prober
	Stage    Stage
}

// DefaultEnv probes the real file system and hands the configuration off
// as YAML on stdout.
func DefaultEnv() Env {
	return Env{Registry: filters.Default(), Probe: cliutil.OS(), Stage: Handoff}
}

// Handoff writes the validated configuration for the calling stages.
func Handoff(_ context.Context, opts cli.Options, stdout io.Writer) error {
	return writers.WriteYAML(stdout, CallerConfig(opts))
}

// RunContext runs the caller with DefaultEnv and returns its exit code.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	return RunWith(ctx, DefaultEnv(), argv, stdout, stderr)
}

// RunWith resolves and validates argv, then runs env.Stage. Any usage error
// or help request prints the help text to stderr and returns 1.
func RunWith(ctx context.Context, env Env, argv []string, stdout, stderr io.Writer) int {
	opts, err := cli.ParseArgs(argv, cli.Defaults(env.Registry), env.Probe)
	var warns []string
	if err == nil {
		warns, err = cli.Validate(opts)
	}
	if err != nil {
		cli.PrintUsage(stderr, env.Registry, clibase.Message(err))
		return 1
	}

	log := cmdutil.NewLogger(stderr)
	for _, w := range warns {
		cmdutil.Warnf(log, "%s", w)
	}
	if err := env.Stage(ctx, opts, stdout); err != nil {
		log.Error().Err(err).Msg("cannot hand off configuration")
		return 3
	}
	return 0
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
