package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/patrickgombert/distress"
	"github.com/patrickgombert/distress/config"
	"github.com/patrickgombert/distress/input"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	options := config.Default()

	cmd := &cobra.Command{
		Use:   "distress [input-file]",
		Short: "Order distress signal packets and compute the decoder key",
		Long: `Reads pairs of packets separated by blank lines and prints two answers:
  part 1: the sum of the 1-based indices of pairs already in order
  part 2: the decoder key, the product of the divider packets' positions once
          every packet and divider is sorted`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd.ErrOrStderr(), options.Verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				options.Path = args[0]
			}
			err := run(cmd.OutOrStdout(), options)
			if err != nil {
				log.Error().Err(err).Str("path", options.Path).Msg("failed to solve")
			}
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVar(&options.Dividers, "divider", options.Dividers, "divider packet to rank, repeatable")
	flags.BoolVarP(&options.Verbose, "verbose", "v", false, "log debug output including phase timings")
	flags.StringVar(&options.Color, "color", options.Color, "highlight answers: auto, always or never")

	return cmd
}

func setupLogging(w io.Writer, verbose bool) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen})
}

func run(out io.Writer, options config.Options) error {
	if errs := options.Validate(); len(errs) > 0 {
		for _, err := range errs {
			log.Error().Err(err).Msg("invalid option")
		}
		return errors.Errorf("%d invalid options", len(errs))
	}

	begin := time.Now()
	pairs, err := input.LoadPairs(options.Path)
	if err != nil {
		return err
	}
	log.Debug().Dur("took", time.Since(begin)).Msg("parsing")

	begin = time.Now()
	part1 := distress.CountOrderedPairs(pairs)
	log.Debug().Dur("took", time.Since(begin)).Msg("part 1")

	begin = time.Now()
	part2 := distress.DecoderKey(input.Flatten(pairs), options.DividerPackets()...)
	log.Debug().Dur("took", time.Since(begin)).Msg("part 2")

	highlight := answerColor(out, options.Color)
	fmt.Fprintf(out, "part 1: %s\n", highlight.Sprint(part1))
	fmt.Fprintf(out, "part 2: %s\n", highlight.Sprint(part2))
	return nil
}

func answerColor(out io.Writer, mode string) *color.Color {
	highlight := color.New(color.FgGreen, color.Bold)
	switch mode {
	case config.COLOR_ALWAYS:
		highlight.EnableColor()
	case config.COLOR_NEVER:
		highlight.DisableColor()
	default:
		if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			highlight.EnableColor()
		} else {
			highlight.DisableColor()
		}
	}
	return highlight
}
