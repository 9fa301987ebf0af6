// Copyright (c) 2026 The Spanbalance Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tracetools/spanbalance/cmd/spanbalance/app"
	"github.com/tracetools/spanbalance/internal/config"
	"github.com/tracetools/spanbalance/internal/version"
)

func main() {
	// With SIGPIPE ignored, a closed downstream pipe surfaces as an
	// EPIPE write error instead of killing the process, so it can be
	// suppressed as the expected early stop it is.
	signal.Ignore(syscall.SIGPIPE)

	logger, _ := zap.NewProduction()
	v := viper.New()
	cfg := &app.Config{}

	command := &cobra.Command{
		Use:   "spanbalance [file ...]",
		Short: "Spanbalance reports spans that were opened but never closed",
		Long: `Spanbalance reads line-delimited JSON span lifecycle events from standard
input or from the named files ("-" also means standard input) and prints
the identifiers of spans whose open count still exceeds their close count
at the end of the stream.`,
		RunE: func(_ *cobra.Command, args []string) error {
			cfg.InitFromViper(v)
			log := logger
			if cfg.Quiet {
				log = logger.WithOptions(zap.IncreaseLevel(zapcore.WarnLevel))
			}
			return app.Run(cfg, args, os.Stdin, os.Stdout, log)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	config.AddFlags(v, command, cfg.AddFlags)
	command.AddCommand(version.Command())

	if err := command.Execute(); err != nil {
		logger.Error("Run failed", zap.Error(err))
		os.Exit(1)
	}
}
