package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ionworks/ionworks-schema/config"
)

type ExitCode int

const (
	exitCodeSuccess = 0
	exitCodeError   = 1
)

func Run() ExitCode {
	rootCmd := &cobra.Command{
		Use:   "ionworks",
		Short: "CLI for building, validating and submitting pipeline configurations.",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := cmd.Help()
			if err != nil {
				return fmt.Errorf("failed to show help: %w", err)
			}
			return nil
		},
	}

	var verbose bool
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "set debug logging level")

	var env string
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", config.EnvProduction, "The API environment to target (production, staging, local)")

	rootCmd.AddCommand(
		NewBuildCmd().Command(),
		NewValidateCmd().Command(),
		NewMaterialsCmd().Command(),
		NewSubmitCmd().Command(),
	)

	if err := rootCmd.Execute(); err != nil {
		return exitCodeError
	}

	return exitCodeSuccess
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}

func rootFlags(flags *pflag.FlagSet) (verbose bool, env string, err error) {
	verbose, err = flags.GetBool("verbose")
	if err != nil {
		return false, "", fmt.Errorf("failed to get verbose flag: %w", err)
	}
	env, err = flags.GetString("env")
	if err != nil {
		return false, "", fmt.Errorf("failed to get env flag: %w", err)
	}
	return verbose, env, nil
}
