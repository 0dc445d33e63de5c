// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/MKhiriev/go-name-keeper/internal/client"
	"github.com/MKhiriev/go-name-keeper/internal/config"
	"github.com/MKhiriev/go-name-keeper/internal/logger"
	"github.com/MKhiriev/go-name-keeper/internal/tui"
	"github.com/MKhiriev/go-name-keeper/models"
	"github.com/spf13/cobra"
)

// errReported marks failures whose message was already printed.
var errReported = errors.New("reported")

type rootOptions struct {
	configPath string
	apiURL     string
	timeout    time.Duration
	logFile    string
}

func (o rootOptions) overrides() *config.StructuredConfig {
	return &config.StructuredConfig{
		App:            config.App{LogFile: o.logFile},
		Adapter:        config.Adapter{APIURL: o.apiURL, RequestTimeout: o.timeout},
		ConfigFilePath: o.configPath,
	}
}

// appFactory loads the client config and builds the runtime. The returned
// func closes the log file.
type appFactory func(cmd *cobra.Command) (client.NamesClient, func() error, error)

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	newApp := func(cmd *cobra.Command) (client.NamesClient, func() error, error) {
		cfg, err := config.GetClientConfig(opts.overrides())
		if err != nil {
			return nil, nil, err
		}

		log, closeLog := logger.NewClientLogger("names-client", cfg.App.LogFile, cfg.App.LogLevel)
		app, err := client.NewApp(cfg, buildInfo, cmd.OutOrStdout(), log)
		if err != nil {
			_ = closeLog()
			return nil, nil, err
		}
		return app, closeLog, nil
	}

	root := newCommands(newApp)
	root.Version = versionString(buildInfo)

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file path (.json, .yaml, .yml)")
	root.PersistentFlags().StringVar(&opts.apiURL, "api-url", "", "names API base URL")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 0, "request timeout (e.g. 5s)")
	root.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "client log file")

	return root
}

func newCommands(newApp appFactory) *cobra.Command {
	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, newApp, func(ctx context.Context, app client.NamesClient) error {
				return app.RunTUI(ctx)
			})
		},
	}

	root := &cobra.Command{
		Use:           "names",
		Short:         "Names list client",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          tuiCmd.RunE,
	}

	root.AddCommand(
		tuiCmd,
		&cobra.Command{
			Use:   "list",
			Short: "Print all names as id<TAB>texto",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withApp(cmd, newApp, func(ctx context.Context, app client.NamesClient) error {
					return app.List(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "add <name...>",
			Short: "Add a name and print the list",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd, newApp, func(ctx context.Context, app client.NamesClient) error {
					return app.Add(ctx, strings.Join(args, " "))
				})
			},
		},
		&cobra.Command{
			Use:   "edit <id> <name...>",
			Short: "Replace the name of an entry and print the list",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd, newApp, func(ctx context.Context, app client.NamesClient) error {
					return app.Edit(ctx, models.EntryID(args[0]), strings.Join(args[1:], " "))
				})
			},
		},
		&cobra.Command{
			Use:     "rm <id>",
			Aliases: []string{"delete"},
			Short:   "Delete an entry and print the list",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd, newApp, func(ctx context.Context, app client.NamesClient) error {
					return app.Remove(ctx, models.EntryID(args[0]))
				})
			},
		},
		&cobra.Command{
			Use:   "check <name...>",
			Short: "Validate a name without contacting the server",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := client.Check(cmd.OutOrStdout(), strings.Join(args, " ")); err != nil {
					return errReported
				}
				return nil
			},
		},
	)

	return root
}

func withApp(cmd *cobra.Command, newApp appFactory, run func(context.Context, client.NamesClient) error) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, closeLog, err := newApp(cmd)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
		return errReported
	}
	defer closeLog()

	if err = run(ctx, app); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "error:", tui.HumanizeError(err))
		return errReported
	}
	return nil
}

func versionString(info models.AppBuildInfo) string {
	v := info.BuildVersion()
	if v == "" {
		v = "N/A"
	}
	return v
}
