package cmd

import (
	"fmt"

	"srcfmt/pkg/logging"
	"srcfmt/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const appName = "srcfmt"

// app is the state shared by the root command's hooks.
type app struct {
	logger *zap.Logger
	opts   Options
	debug  bool
}

// NewRootCmd builds the srcfmt command. Run without a subcommand it formats
// every C source and header file under src/ and include/ in place.
func NewRootCmd(logger *zap.Logger, opts Options) *cobra.Command {
	return newRootCmd(newApp(logger, opts))
}

func newApp(logger *zap.Logger, opts Options) *app {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &app{logger: logger, opts: opts}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           appName,
		Short:         "srcfmt runs clang-format over C sources and headers",
		Long:          `srcfmt walks src/ and include/, collects .c and .h files and runs clang-format -i on each one in turn.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !a.debug {
				return nil
			}
			l, err := logging.New(true, appName, version.Get().Version)
			if err != nil {
				return fmt.Errorf("failed to initialize debug logger: %w", err)
			}
			a.logger = l
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.opts
			if opts.Out == nil {
				opts.Out = cmd.OutOrStdout()
			}
			return RunFormat(opts, a.logger)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute builds the root command with DefaultOptions and runs it. It returns
// the logger in use when the command finished, which is a debug logger
// replacing logger when --debug was given, so the caller can sync it.
func Execute(logger *zap.Logger) (*zap.Logger, error) {
	a := newApp(logger, DefaultOptions())
	err := newRootCmd(a).Execute()
	return a.logger, err
}
