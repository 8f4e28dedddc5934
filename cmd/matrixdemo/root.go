// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/sqmatrix/matrixio"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Configuration keys; each is also a flag name and, upper-cased with '_',
// an environment variable under the MATRIXDEMO_ prefix.
const (
	keySwapA       = "swap-a"
	keySwapB       = "swap-b"
	keyUpdateValue = "update-value"
	keyVerbose     = "verbose"

	envPrefix = "MATRIXDEMO"
	logPrefix = "matrixdemo"
)

var (
	// errNoFilename is returned when the prompt receives no input.
	errNoFilename = errors.New("no input filename given")

	// errBadIndex is returned for negative swap indices.
	errBadIndex = errors.New("swap indices must be non-negative")
)

// config is the resolved demo configuration.
type config struct {
	SwapA       int   // first row/column index to swap
	SwapB       int   // second row/column index to swap
	UpdateValue int64 // value written to element [0][0]
	Verbose     bool
}

// loadConfig reads the resolved values from v and validates them.
func loadConfig(v *viper.Viper) (config, error) {
	cfg := config{
		SwapA:       v.GetInt(keySwapA),
		SwapB:       v.GetInt(keySwapB),
		UpdateValue: v.GetInt64(keyUpdateValue),
		Verbose:     v.GetBool(keyVerbose),
	}
	if cfg.SwapA < 0 || cfg.SwapB < 0 {
		return config{}, fmt.Errorf("%w: got %d and %d", errBadIndex, cfg.SwapA, cfg.SwapB)
	}

	return cfg, nil
}

// newLogger builds the diagnostics logger; debug output only when verbose.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		Prefix: logPrefix,
		Level:  level,
	})
}

// newRootCmd wires flags, environment and the demo run into one command.
// Streams are injected so tests can drive the command in-process.
func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "matrixdemo [file]",
		Short: "Exercise square matrix operations on two matrices read from a file",
		Long: `matrixdemo reads N followed by two N×N integer matrices (whitespace
separated, row-major) and prints both matrices, their sum and product,
the diagonal sums of each, and the result of swapping rows, swapping
columns and updating element [0][0] on copies of the inputs.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				newLogger(errOut, v.GetBool(keyVerbose)).Error("invalid arguments", "err", err)
				return err
			}

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(errOut, v.GetBool(keyVerbose))

			cfg, err := loadConfig(v)
			if err != nil {
				logger.Error("invalid configuration", "err", err)
				return err
			}

			path, err := resolvePath(args, in, out)
			if err != nil {
				logger.Error("could not determine input file", "err", err)
				return err
			}

			pair, err := matrixio.ReadPairFile(path)
			if err != nil {
				logger.Error("could not load matrices", "err", err)
				return err
			}
			logger.Debug("loaded matrices", "path", path, "size", pair.Size)

			if err := writeReport(out, pair, cfg); err != nil {
				logger.Error("an error occurred", "err", err)
				return err
			}
			logger.Debug("report written", "swap_a", cfg.SwapA, "swap_b", cfg.SwapB)

			return nil
		},
	}

	flags := cmd.Flags()
	flags.Int(keySwapA, 0, "first row/column index for the swap demonstrations")
	flags.Int(keySwapB, 1, "second row/column index for the swap demonstrations")
	flags.Int64(keyUpdateValue, 99, "value written to element [0][0] in the update demonstration")
	flags.BoolP(keyVerbose, "v", false, "enable debug logging")
	_ = v.BindPFlags(flags)

	// Errors are silenced above so RunE can log them; flag parse errors
	// never reach RunE and are logged here.
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		newLogger(errOut, false).Error("invalid flags", "err", err)
		return err
	})

	return cmd
}

// resolvePath returns the file argument, or prompts for one on in.
func resolvePath(args []string, in io.Reader, out io.Writer) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if _, err := io.WriteString(out, "Enter the input filename: "); err != nil {
		return "", err
	}
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", errNoFilename
	}

	return sc.Text(), nil
}
