// Copyright (C) 2025 Entgraph Authors.
// See LICENSE for copying information.

// Package process sets up process-wide configuration, logging and lifecycle
// for entgraph commands.
package process

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/zeebo/errs"
)

// Error is the default error class for process.
var Error = errs.Class("process")

// Execute runs a *cobra.Command and sets up process-wide configuration from
// flags, a config file and ENTGRAPH_* environment variables.
func Execute(cmd *cobra.Command) {
	cfgFile := flag.String("config", "", "config file")

	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)

	// bind the flags of whichever subcommand actually runs, so viper sees
	// them alongside the environment and the config file.
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return viper.BindPFlags(cmd.Flags())
	}

	cobra.OnInitialize(func() {
		viper.SetEnvPrefix("entgraph")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
		viper.AutomaticEnv()
		if *cfgFile != "" {
			viper.SetConfigFile(*cfgFile)
			if err := viper.ReadInConfig(); err != nil {
				fmt.Fprintln(os.Stderr, Error.Wrap(err))
				os.Exit(1)
			}
		}
	})

	Must(cmd.Execute())
}

// Ctx returns a context that is canceled on SIGINT or SIGTERM.
func Ctx(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(cmd.Context())

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-signals:
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

// Must exits the process when err is set.
func Must(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Viper returns the process-wide configuration registry.
func Viper() *viper.Viper { return viper.GetViper() }
