package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/plus/core/config"
	"github.com/msto63/plus/core/errors"
	"github.com/msto63/plus/core/log"
	"github.com/msto63/plus/utils/stringx"
)

// app carries what the subcommands share: settings, logger and printer.
// It is filled in by the root command before any subcommand runs.
type app struct {
	cfgFile string
	verbose bool
	output  string

	settings config.Settings
	logger   *log.Logger
	printer  *printer
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "plus",
		Short: "Small numeric, string and image utilities",
		Long: `plus bundles a set of small utilities:

  complex  - complex number arithmetic
  stats    - max, min, sum, average and mode of a list of numbers
  math     - interpolation, factorial, roots, ranges, angles and mirroring
  random   - uniform random integers and floats
  str      - palindromes, reversal and substring counting
  recolor  - XOR recolouring of an image

Negative numbers must follow "--", for example: plus stats min -- -3 4`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: plus.toml in ., ./config or ~/.config/plus)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output on stderr")
	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", "", "output style: plain or pretty (default from output.style)")

	rootCmd.AddCommand(
		newComplexCmd(a),
		newStatsCmd(a),
		newMathCmd(a),
		newRandomCmd(a),
		newStrCmd(a),
		newRecolorCmd(a),
		newVersionCmd(a),
	)
	return rootCmd
}

// Execute runs the plus command line
func Execute() error {
	return execute(os.Args[1:], os.Stdout, os.Stderr)
}

func execute(args []string, stdout, stderr io.Writer) error {
	a := &app{}
	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		a.report(stderr, err)
		return err
	}
	return nil
}

// setup loads configuration and builds the logger and printer for the
// command about to run
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	settings, err := cfg.Settings()
	if err != nil {
		return err
	}
	a.settings = settings

	level, err := log.ParseLevel(settings.LogLevel)
	if err != nil {
		return err
	}
	if a.verbose {
		level = log.LevelDebug
	}
	format, err := log.ParseFormat(settings.LogFormat)
	if err != nil {
		return err
	}

	a.logger = log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "plus",
	}).WithCommand(commandName(cmd))

	style := strings.ToLower(stringx.FirstNonBlank(a.output, settings.OutputStyle, "plain"))
	if style != "plain" && style != "pretty" {
		return errors.CLIInvalidArgument("--output", a.output, "plain or pretty")
	}
	a.printer = newPrinter(cmd.OutOrStdout(), style, settings.OutputPrecision)

	a.logger.Debug("configuration loaded", log.Fields{
		"config_file": cfg.FilePath(),
		"output":      style,
		"precision":   settings.OutputPrecision,
	})
	return nil
}

func (a *app) loadConfig() (*config.Config, error) {
	if stringx.IsNotBlank(a.cfgFile) {
		return config.Load(a.cfgFile)
	}
	return config.DiscoverWithDefaults()
}

// report prints err for the user and logs its structured form
func (a *app) report(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	if a.logger != nil {
		a.logger.LogError(err)
	}
}

func parseFloat(command, arg string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
	if err != nil {
		return 0, errors.CLIInvalidArgument(command, arg, "a number")
	}
	return f, nil
}

func parseFloats(command string, args []string) ([]float64, error) {
	values := make([]float64, len(args))
	for i, arg := range args {
		f, err := parseFloat(command, arg)
		if err != nil {
			return nil, err
		}
		values[i] = f
	}
	return values, nil
}

func parseInt(command, arg string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, errors.CLIInvalidArgument(command, arg, "an integer")
	}
	return i, nil
}

func parseInts(command string, args []string) ([]int, error) {
	values := make([]int, len(args))
	for i, arg := range args {
		n, err := parseInt(command, arg)
		if err != nil {
			return nil, err
		}
		values[i] = n
	}
	return values, nil
}

// commandName is the command path without the program name, as used in
// error operations and log entries
func commandName(cmd *cobra.Command) string {
	return strings.TrimPrefix(cmd.CommandPath(), "plus ")
}
