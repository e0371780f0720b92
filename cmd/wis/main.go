// main.go bootstraps wis: it builds the root Cobra command, binds Viper
// (environment + optional config file) and executes with a signal-aware context.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/katalvlaran/intervals/wis"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rootCmd := newRootCommand()
	err := rootCmd.ExecuteContext(ctx)
	handleError(os.Stderr, err)
	if err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	logLevel := "info"
	var configPath string
	cmd := &cobra.Command{
		Use:   "wis",
		Short: "Pick the most valuable set of non-overlapping weighted intervals",
		Long: strings.TrimSpace(`
wis solves the Weighted Interval Scheduling problem for jobs read from YAML,
JSON or CSV files: among jobs competing for one resource it selects the
non-overlapping subset with the largest total weight. Touching jobs
(one ending exactly when the next starts) do not conflict.
`),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return bindViper(cmd, configPath)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "Log level for wis output (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a config file (default $XDG_CONFIG_HOME/wis/config.yaml or ~/.wis/config.yaml)")
	cmd.AddCommand(
		newSolveCommand(&logLevel),
		newVersionCommand(),
	)
	cmd.Example = `  # Solve one file, chronological table
  wis solve bookings.yaml

  # Several files, JSON output, latest end first
  wis solve -o json --order reconstruction rooms.json shifts.csv

  # Same flags through the environment
  WIS_OUTPUT=yaml wis solve bookings.yaml`

	return cmd
}

// bindViper fills every flag the user did not set from WIS_* environment
// variables or the config file. Explicit flags always win.
func bindViper(cmd *cobra.Command, explicitPath string) error {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix("WIS")
	v.AutomaticEnv()
	if explicitPath == "" {
		explicitPath = os.Getenv("WIS_CONFIG")
	}
	configureConfigFile(v, explicitPath)

	// cmd.Flags() already holds the persistent flags inherited from root.
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if err := readConfigFile(v, explicitPath != ""); err != nil {
		return err
	}

	var setErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed || f.Name == "config" || !v.IsSet(f.Name) {
			return
		}
		val := fmt.Sprintf("%v", v.Get(f.Name))
		if val == "" {
			return
		}
		if err := f.Value.Set(val); err != nil && setErr == nil {
			setErr = fmt.Errorf("config value for %q: %w", f.Name, err)
		}
	})

	return setErr
}

func configureConfigFile(v *viper.Viper, explicitPath string) {
	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
		return
	}
	v.SetConfigName("config")
	for _, dir := range configSearchDirs() {
		v.AddConfigPath(dir)
	}
}

func readConfigFile(v *viper.Viper, strict bool) error {
	if err := v.ReadInConfig(); err != nil {
		var cfgErr viper.ConfigFileNotFoundError
		if errors.As(err, &cfgErr) && !strict {
			return nil
		}
		return err
	}
	return nil
}

func configSearchDirs() []string {
	var dirs []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, "wis"))
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		dirs = append(dirs, filepath.Join(home, ".wis"))
	}
	return dirs
}

func handleError(w io.Writer, err error) {
	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return
	}
	message := err.Error()
	switch {
	case errors.Is(err, wis.ErrUnsortedInput):
		message = fmt.Sprintf("%s\nHint: drop --presorted to let wis sort the input.", err)
	case errors.Is(err, context.Canceled):
		message = "interrupted"
	}
	fmt.Fprintf(w, "Error: %s\n", message)
}
