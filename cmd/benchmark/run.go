package main

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"damage_triage/internal/benchmark"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type runOptions struct {
	CSV            string
	ImageDir       string
	ImageURLPrefix string
	ImageIDPrefix  string
	Endpoint       string
	IDs            []int
	Parallel       int
	Report         string
}

func runCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the benchmark and print error statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := loadRunOptions(v)
			if err != nil {
				return err
			}
			return runBenchmark(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.String("csv", "../data/Versicherungsdaten.csv", "claims export (semicolon separated)")
	flags.String("images", "../data", "directory holding <nr>.jpg and <nr> - <i>.jpg photos")
	flags.String("image-url-prefix", "", "public URL prefix the photos are served under")
	flags.String("image-id-prefix", "testing", "prefix for the submitted image ids")
	flags.String("endpoint", "http://localhost:8080/v1/cases", "case submission endpoint")
	flags.String("ids", "", "comma separated customer numbers (Kunden-Nr.) to replay")
	flags.Int("parallel", 1, "concurrent submissions")
	flags.String("report", "", "write a JSON report to this path")

	v.SetEnvPrefix("BENCH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlags(flags)
	return cmd
}

func loadRunOptions(v *viper.Viper) (runOptions, error) {
	ids, err := parseIDs(v.GetString("ids"))
	if err != nil {
		return runOptions{}, err
	}
	if len(ids) == 0 {
		return runOptions{}, fmt.Errorf("no claims selected: set --ids or BENCH_IDS")
	}
	if v.GetString("image-url-prefix") == "" {
		return runOptions{}, fmt.Errorf("--image-url-prefix is required")
	}
	return runOptions{
		CSV:            v.GetString("csv"),
		ImageDir:       v.GetString("images"),
		ImageURLPrefix: v.GetString("image-url-prefix"),
		ImageIDPrefix:  v.GetString("image-id-prefix"),
		Endpoint:       v.GetString("endpoint"),
		IDs:            ids,
		Parallel:       max(v.GetInt("parallel"), 1),
		Report:         v.GetString("report"),
	}, nil
}

func parseIDs(s string) ([]int, error) {
	var ids []int
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == ';' }) {
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid customer number %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func runBenchmark(cmd *cobra.Command, opts runOptions) error {
	out := cmd.OutOrStdout()

	claims, err := benchmark.ReadClaimsFile(opts.CSV)
	if err != nil {
		return fmt.Errorf("load csv: %w", err)
	}
	fmt.Fprintf(out, "CSV rows: %d\n", len(claims))

	src := benchmark.ImageSource{Dir: opts.ImageDir, PublicPrefix: opts.ImageURLPrefix, ImageIDPrefix: opts.ImageIDPrefix}
	inputs, err := src.BuildInputs(benchmark.FilterClaims(claims, opts.IDs))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Selected claims: %d (parallel=%d)\n", len(inputs), opts.Parallel)

	bar := newProgressBar(out, len(inputs))
	runner := benchmark.Runner{
		Endpoint: opts.Endpoint,
		Parallel: opts.Parallel,
		OnResult: func(r benchmark.Result) {
			_ = bar.Clear()
			fmt.Fprintf(out, "[claim %d] hist=%s api=%s error%%=%s\n",
				r.CustomerNr, fmtAmount(r.HistoricalAmount), fmtAmount(r.APIAmount), fmtPct(r.ErrorPct))
			_ = bar.Add(1)
		},
	}
	results, err := runner.Run(cmd.Context(), inputs)
	_ = bar.Finish()
	if err != nil {
		return err
	}

	stats := benchmark.ComputeStats(results)
	printSummary(out, stats)

	if opts.Report != "" {
		if err := benchmark.WriteReport(opts.Report, benchmark.Report{Timestamp: time.Now().UTC(), Stats: stats, Results: results}); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Fprintf(out, "Report written: %s\n", opts.Report)
	}
	return nil
}

func newProgressBar(w io.Writer, total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Replaying claims"),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(w); err != nil {
				log.Printf("[benchmark][cli] write failed err=%v", err)
			}
		}),
	)
}

func printSummary(w io.Writer, s benchmark.Stats) {
	fmt.Fprintln(w, "\n=== Benchmark summary ===")
	fmt.Fprintf(w, "Comparable claims: %d\n", s.Count)
	if s.Count == 0 {
		return
	}
	fmt.Fprintf(w, "Mean error (signed): %s%%\n", fmtPct(s.MeanErrorPct))
	fmt.Fprintf(w, "Std-dev of error:    %s%%\n", fmtPct(s.StdDevErrorPct))
	fmt.Fprintf(w, "MAPE:                %s%%\n", fmtPct(s.MAPE))
}

func fmtAmount(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func fmtPct(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}
