package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/memsim/cmpmemsim/pkg/config"
	"github.com/memsim/cmpmemsim/pkg/memsys"
	"github.com/memsim/cmpmemsim/pkg/report"
	"github.com/memsim/cmpmemsim/pkg/trace"
)

func main() {
	var o config.Options
	var csvPath, jsonPath, htmlPath string

	root := &cobra.Command{
		Use:   "memsim TRACE",
		Short: "Trace-driven chip-multiprocessor memory hierarchy simulator",
		Long: `memsim replays a trace of instruction fetches, loads, and stores through a
configurable hierarchy of set-associative caches backed by a banked DRAM, and
reports aggregate hit/miss and latency statistics.

Pass - as the trace argument to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), o, args[0], csvPath, jsonPath, htmlPath)
		},
	}

	root.Flags().StringVar(&o.Mode, "mode", "A", "topology: A, B, C, D, E, or F")
	root.Flags().IntVar(&o.LineSize, "linesize", 64, "cache line size in bytes")
	root.Flags().IntVar(&o.DSizeKB, "dsize", 32, "L1 data cache size in KB")
	root.Flags().IntVar(&o.DAssoc, "dassoc", 8, "L1 data cache associativity")
	root.Flags().IntVar(&o.ISizeKB, "isize", 32, "L1 instruction cache size in KB")
	root.Flags().IntVar(&o.IAssoc, "iassoc", 8, "L1 instruction cache associativity")
	root.Flags().IntVar(&o.L2SizeKB, "l2size", 512, "shared L2 size in KB")
	root.Flags().IntVar(&o.L2Assoc, "l2assoc", 16, "shared L2 associativity")
	root.Flags().StringVar(&o.Repl, "repl", "LRU", "L1 replacement policy: LRU, RANDOM, SWP, DWP")
	root.Flags().StringVar(&o.L2Repl, "l2repl", "LRU", "L2 replacement policy")
	root.Flags().IntVar(&o.SWPCore0Ways, "swp-core0-ways", 0, "core 0's static/dynamic-initial way quota")
	root.Flags().StringVar(&o.DRAMPolicy, "dram-policy", "open", "DRAM page policy: open, close")
	root.Flags().Uint64Var(&o.Seed, "seed", 0, "RANDOM-policy seed (0 = derive from wall-clock time)")

	root.Flags().StringVar(&csvPath, "csv", "", "write a CSV summary to this path")
	root.Flags().StringVar(&jsonPath, "json", "", "write a JSON summary to this path")
	root.Flags().StringVar(&htmlPath, "html", "", "write an HTML summary to this path")

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, opts config.Options, tracePath, csvPath, jsonPath, htmlPath string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("internal invariant violation", "panic", r)
			os.Exit(1)
		}
	}()

	cfg, err := config.Build(opts)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	ms := memsys.New(cfg)

	r, closeFn, err := openTrace(tracePath)
	if err != nil {
		return fmt.Errorf("open trace: %w", err)
	}
	defer closeFn()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reader := trace.NewReader(r)
	var cycle uint64

loop:
	for {
		select {
		case <-ctx.Done():
			slog.Info("interrupted, printing stats accumulated so far")
			break loop
		default:
		}

		ref, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("trace: %w", err)
		}

		cycle++
		ms.Access(cycle, ref.ByteAddr, ref.Type, ref.CoreID)
	}

	snap := report.Capture(ms)
	report.WriteTable(os.Stdout, snap)

	if csvPath != "" {
		if err := writeArtifact(csvPath, func(f *os.File) error { return report.WriteCSV(f, snap) }); err != nil {
			slog.Error("write csv", "err", err)
		}
	}
	if jsonPath != "" {
		if err := writeArtifact(jsonPath, func(f *os.File) error { return report.WriteJSON(f, snap) }); err != nil {
			slog.Error("write json", "err", err)
		}
	}
	if htmlPath != "" {
		if err := writeArtifact(htmlPath, func(f *os.File) error { return report.WriteHTML(f, snap) }); err != nil {
			slog.Error("write html", "err", err)
		}
	}

	return nil
}

func openTrace(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

func writeArtifact(path string, write func(*os.File) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return write(f)
}
