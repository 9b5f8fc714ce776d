package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/conn-castle/click-backend/internal/backend"
	"github.com/conn-castle/click-backend/internal/click"
	"github.com/conn-castle/click-backend/internal/config"
	"github.com/conn-castle/click-backend/internal/dispatch"
	"github.com/conn-castle/click-backend/internal/logging"
	"github.com/conn-castle/click-backend/internal/messages"
	"github.com/conn-castle/click-backend/internal/terminal"
)

var getenv = os.Getenv

// newRootCmd builds the helper command. Any command other than install-files is
// still handed to the dispatcher, which reports it as not supported.
func newRootCmd(stdin io.Reader) *cobra.Command {
	root := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDispatcher(cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if len(args) == 0 {
				if terminal.IsTerminal(stdin) {
					_, _ = fmt.Fprintln(cmd.ErrOrStderr(), messages.InteractiveHint)
				}
				return d.Serve(cmd.Context(), stdin)
			}
			return d.Dispatch(cmd.Context(), args[0], args[1:])
		},
	}
	root.AddCommand(newInstallFilesCmd())
	return root
}

func newInstallFilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:                dispatch.CommandInstallFiles + " <transaction_flags> <files>",
		Short:              messages.InstallFilesShort,
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDispatcher(cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return d.Dispatch(cmd.Context(), dispatch.CommandInstallFiles, args)
		},
	}
}

// newDispatcher wires config, logging, the click engine and the stdout reporter.
func newDispatcher(stdout io.Writer, stderr io.Writer) (*dispatch.Dispatcher, error) {
	cfg, err := config.Load(config.ResolvePath(getenv), getenv)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(stderr, cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	opts := cfg.EngineOptions()
	opts.Logger = logger
	engine, err := click.NewEngine(click.RealSystem{}, opts)
	if err != nil {
		return nil, err
	}
	return dispatch.New(engine, backend.NewStreamReporter(stdout), logger)
}
