package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-fifo/internal/scenario"
	"github.com/huynhanx03/go-fifo/pkg/logger"
	"github.com/huynhanx03/go-fifo/pkg/settings"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		capacity   int
	)

	cmd := &cobra.Command{
		Use:          "queuedemo",
		Short:        "Run the FIFO queue demonstrations",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := settings.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("capacity") {
				cfg.Queue.RingCapacity = capacity
			}

			log, closeLog, err := logger.New(cfg.Logger)
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()

			return run(cmd.Context(), log, cfg, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	cmd.Flags().IntVar(&capacity, "capacity", 0, "capacity of the char ring queue")
	return cmd
}

func run(ctx context.Context, log *zap.Logger, cfg *settings.Config, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	reports, err := scenario.RunAll(ctx, log, cfg.Queue)
	if err != nil {
		return err
	}

	for _, r := range reports {
		fmt.Fprintf(out, "%s: %s\n", r.Name, strings.Join(r.Dequeued, " "))
		for _, s := range r.Sums {
			fmt.Fprintf(out, "%s: sum %d\n", r.Name, s)
		}
		if r.Err != nil {
			fmt.Fprintf(out, "%s: error: %v\n", r.Name, r.Err)
		}
	}
	return nil
}
