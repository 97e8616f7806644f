package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"ropewalk/internal/solve"
	"ropewalk/internal/watch"
)

// watchCmd re-solves inputs whenever they change
var watchCmd = &cobra.Command{
	Use:   "watch [files...]",
	Short: "Re-solve input files every time they are saved",
	Long: `Solves each file once, then watches them and prints fresh answers after
every change until interrupted. Parse errors are reported and watching
continues.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(commandContext(cmd), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return watchInputs(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
}

// watchInputs blocks until ctx is done.
func watchInputs(ctx context.Context, out, errOut io.Writer, paths []string) error {
	solver := solve.New(cfg.Parts, parser(), logger)

	report := func(ctx context.Context, path string) {
		res, err := solver.SolveFile(ctx, path)
		if err != nil {
			fmt.Fprintf(errOut, "%v\n", err)
			return
		}
		_ = solve.Format(out, res)
	}

	for _, p := range paths {
		report(ctx, p)
	}

	w, err := watch.New(paths, cfg.GetDebounce(), report)
	if err != nil {
		return err
	}
	defer w.Stop()
	if err := w.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	return nil
}
