// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cli implements the eitherctl commands.
//
// Every input token is parsed into an either.Either[error, int]; the
// commands then consume those values with the either combinators instead of
// branching on errors directly.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zeebo/errs"
	"go.uber.org/zap"

	"code.hybscloud.com/either"
	"code.hybscloud.com/either/internal/logging"
)

var (
	// ParseError classifies tokens that are not integers.
	ParseError = errs.Class("parse")
	// InputError classifies unreadable input and --strict failures.
	InputError = errs.Class("input")
)

// App holds the configuration and logger shared by all commands.
type App struct {
	log *zap.Logger

	logLevel   string
	square     bool
	swap       bool
	strict     bool
	defaultVal int
}

// New returns an App. A nil logger is built from --log-level on first use.
func New(log *zap.Logger) *App {
	return &App{log: log}
}

// Logger returns the app logger, building a default one if none exists yet.
func (a *App) Logger() *zap.Logger {
	if a.log == nil {
		log, err := logging.New(logging.DefaultLevel)
		if err != nil {
			log = zap.NewNop()
		}
		a.log = log
	}
	return a.log
}

// Command builds the root command.
func (a *App) Command(version string) *cobra.Command {
	root := &cobra.Command{
		Use:           "eitherctl",
		Short:         "Parse integers into Left/Right values and consume them",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.log != nil {
				return nil
			}
			log, err := logging.New(a.logLevel)
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.logLevel, "log-level", logging.DefaultLevel, "log level (debug, info, warn, error)")
	flags.BoolVar(&a.square, "square", false, "square every parsed value")

	root.AddCommand(a.evalCommand(), a.sumCommand())
	return root
}

func (a *App) evalCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval [TOKEN...]",
		Short: "Print each token as ok <value> or error <reason>",
		Long: "Print each token as ok <value> or error <reason>.\n" +
			"Tokens are read one per line from stdin when none are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := a.load(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			return a.eval(cmd.OutOrStdout(), values, cmd.Flags().Changed("default"))
		},
	}
	cmd.Flags().BoolVar(&a.swap, "swap", false, "print the swapped value instead")
	cmd.Flags().IntVar(&a.defaultVal, "default", 0, "print this value for tokens that fail to parse")
	return cmd
}

func (a *App) sumCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sum [TOKEN...]",
		Short: "Sum the tokens that parse, skipping the rest",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := a.load(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			return a.sum(cmd.OutOrStdout(), values)
		},
	}
	cmd.Flags().BoolVar(&a.strict, "strict", false, "fail if any token does not parse")
	return cmd
}

func (a *App) load(in io.Reader, args []string) ([]either.Either[error, int], error) {
	tokens := args
	if len(tokens) == 0 {
		var err error
		if tokens, err = readTokens(in); err != nil {
			return nil, err
		}
	}

	values := make([]either.Either[error, int], len(tokens))
	for i, tok := range tokens {
		v := parse(tok)
		if a.square {
			v = either.Map(v, func(n int) int { return n * n })
		}
		a.Logger().Debug("parsed token", zap.String("token", tok), zap.Stringer("value", v))
		values[i] = v
	}
	return values, nil
}

func (a *App) eval(out io.Writer, values []either.Either[error, int], useDefault bool) error {
	for _, v := range values {
		var line string
		switch {
		case a.swap:
			line = v.Swap().String()
		case useDefault:
			line = "ok " + strconv.Itoa(v.FromRight(a.defaultVal))
		default:
			line = either.Match(v,
				func(err error) string { return "error " + err.Error() },
				func(n int) string { return "ok " + strconv.Itoa(n) },
			)
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return InputError.Wrap(err)
		}
	}
	return nil
}

func (a *App) sum(out io.Writer, values []either.Either[error, int]) error {
	failed, ok := either.Partition(values)
	for _, err := range failed {
		a.Logger().Warn("skipping token", zap.Error(err))
	}

	total := 0
	for _, n := range ok {
		total += n
	}
	if _, err := fmt.Fprintf(out, "sum=%d ok=%d failed=%d\n", total, len(ok), len(failed)); err != nil {
		return InputError.Wrap(err)
	}

	if a.strict && len(failed) > 0 {
		return InputError.New("%d of %d tokens failed to parse", len(failed), len(values))
	}
	return nil
}

// parse converts tok to Right(n), or Left with a ParseError.
func parse(tok string) either.Either[error, int] {
	n, err := strconv.Atoi(strings.TrimSpace(tok))
	return either.MapLeft(either.FromError(n, err), ParseError.Wrap)
}

// readTokens returns the non-blank lines of in.
func readTokens(in io.Reader) ([]string, error) {
	var tokens []string
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			tokens = append(tokens, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, InputError.Wrap(err)
	}
	return tokens, nil
}
