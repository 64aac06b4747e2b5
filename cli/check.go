package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/alecthomas/kong"

	"github.com/harborgrid-justin/appropriations/compliance"
	"github.com/harborgrid-justin/appropriations/telemetry"
)

// CheckCmd validates a transaction bundle against the full compliance
// suite: Purpose/Time/Amount, bona fide need, and the Anti-Deficiency
// Act checks.
type CheckCmd struct {
	File  FileOrStdin `help:"Transaction bundle filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Watch bool        `help:"Re-run the check whenever the file changes." short:"w"`
}

func (cmd *CheckCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	if cmd.Watch {
		if cmd.File.Filename == "<stdin>" {
			return fmt.Errorf("--watch requires a file argument")
		}
		return watchAndCheck(ctx, globals, cmd.File.GetAbsoluteFilename())
	}

	return runCheck(ctx, globals, &cmd.File)
}

// runCheck decodes the bundle, runs the engine and renders the result.
// Blocking findings surface as a CommandError with exit code 1.
func runCheck(ctx *kong.Context, globals *Globals, file *FileOrStdin) error {
	runCtx := context.Background()

	var collector telemetry.Collector
	var checkTimer telemetry.Timer
	var once sync.Once

	reportTelemetry := func() {
		once.Do(func() {
			if collector != nil {
				checkTimer.End()
				_, _ = fmt.Fprintln(ctx.Stderr)
				collector.Report(ctx.Stderr)
			}
		})
	}

	if globals.Telemetry {
		collector = telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		checkTimer = collector.Start(fmt.Sprintf("check %s", filepath.Base(file.Filename)))
		defer reportTelemetry()
	}

	contents, err := file.Read()
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	bundle, err := DecodeBundle(contents)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		reportTelemetry()
		return NewCommandError(1)
	}

	var engineOpts []compliance.Option
	if bundle.Thresholds != nil {
		engineOpts = append(engineOpts, compliance.WithThresholds(*bundle.Thresholds))
	}
	engine := compliance.NewEngine(engineOpts...)

	res := engine.ValidateTransaction(runCtx, bundle.Obligation, bundle.Account, compliance.Options{
		Now:           bundle.AsOf,
		Apportionment: bundle.Apportionment,
	})

	renderResult(ctx.Stdout, res)

	if !res.Valid {
		_, _ = fmt.Fprintln(ctx.Stderr)
		printError(ctx.Stderr, fmt.Sprintf("%d blocking finding(s)", len(res.Errors)))
		reportTelemetry()
		return NewCommandError(1)
	}

	if len(res.Warnings) > 0 {
		printSuccess(ctx.Stdout, fmt.Sprintf("Check passed with %d warning(s)", len(res.Warnings)))
	} else {
		printSuccess(ctx.Stdout, "Check passed")
	}

	return nil
}
