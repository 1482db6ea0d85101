// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/nz-walks/internal/adapter"
	"github.com/MKhiriev/nz-walks/internal/logger"
	"github.com/spf13/cobra"
)

type App struct {
	api adapter.APIAdapter
	out io.Writer

	logger *logger.Logger
}

// NewApp returns a client writing command output to out.
func NewApp(api adapter.APIAdapter, out io.Writer, logger *logger.Logger) *App {
	return &App{api: api, out: out, logger: logger}
}

func (a *App) Run(ctx context.Context, args []string) error {
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(a.out)

	a.logger.Debug().Strs("args", args).Msg("running command")
	return root.ExecuteContext(ctx)
}

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "nzwalks",
		Short:         "Command-line client for the NZ Walks API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		a.versionCommand(),
		a.loginCommand(),
		a.walksCommand(),
		a.regionsCommand(),
		a.difficultiesCommand(),
	)

	return root
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := a.api.Version(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.out, version)
			return err
		},
	}
}

// print writes v as indented JSON.
func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
