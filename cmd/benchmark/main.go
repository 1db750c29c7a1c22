package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "benchmark",
		Short: "Replay historical claims against the triage API",
		Long: `benchmark reads the claims export, submits the selected claims with their
photos to POST /v1/cases (saveToDb=false) and compares the estimates with the
amounts actually paid.

Every flag can also be set as BENCH_<FLAG>, e.g. BENCH_PARALLEL=4.`,
		SilenceUsage: true,
	}
	root.AddCommand(runCmd())
	return root
}
