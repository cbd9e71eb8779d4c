package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"cadence/internal/captions"
	"cadence/internal/composer"
	"cadence/internal/config"
	"cadence/internal/services"
)

type captionsFlags struct {
	maxLines       int
	noGaps         bool
	noGapsMax      float64
	ignoreMetadata bool
	perPart        bool
}

func newCaptionsCommand(ctx *commandContext) *cobra.Command {
	var flags captionsFlags

	cmd := &cobra.Command{
		Use:   "captions <transcript.json>",
		Short: "Segment captions into parts and pick emphasized words",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger()
			if err != nil {
				return err
			}

			transcript, err := readTranscript(args[0])
			if err != nil {
				return err
			}

			c := composer.New(composer.Deps{Logger: logger})
			comp := c.Captions(cmd.Context(), transcript, captionOptions(cmd, cfg, flags))
			if ctx.jsonOutput() {
				return writeJSON(cmd, comp)
			}
			printCaptions(cmd, comp)
			return nil
		},
	}

	cmd.Flags().IntVar(&flags.maxLines, "max-lines", 0, "Maximum parts per caption")
	cmd.Flags().BoolVar(&flags.noGaps, "no-gaps", false, "Extend captions into the silence before the next one")
	cmd.Flags().Float64Var(&flags.noGapsMax, "no-gaps-max", 0, "Maximum gap-closing extension in seconds")
	cmd.Flags().BoolVar(&flags.ignoreMetadata, "ignore-metadata", false, "Ignore author keyword and split hints")
	cmd.Flags().BoolVar(&flags.perPart, "per-part", false, "Emphasize one word per part instead of per caption")
	return cmd
}

func readTranscript(path string) ([]captions.Caption, error) {
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "cli", "transcript path", "", err)
	}
	file, err := os.Open(expanded)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, services.Wrap(services.ErrNotFound, "cli", "open transcript", expanded, err)
		}
		return nil, services.Wrap(services.ErrUnavailable, "cli", "open transcript", expanded, err)
	}
	defer file.Close()
	return captions.DecodeTranscript(file)
}

// captionOptions merges [captions] config with explicitly set flags.
func captionOptions(cmd *cobra.Command, cfg *config.Config, flags captionsFlags) captions.Options {
	opts := cfg.CaptionOptions()
	changed := cmd.Flags().Changed
	if changed("max-lines") {
		opts.MaxLines = flags.maxLines
	}
	if changed("no-gaps") {
		opts.NoGaps.Enabled = flags.noGaps
	}
	if changed("no-gaps-max") {
		opts.NoGaps.MaxLength = flags.noGapsMax
	}
	if changed("ignore-metadata") {
		opts.IgnoreMetadata = flags.ignoreMetadata
	}
	if changed("per-part") {
		opts.PerPartEmphasis = flags.perPart
	}
	return opts
}

func printCaptions(cmd *cobra.Command, comp composer.CaptionComposition) {
	out := cmd.OutOrStdout()

	var rows [][]string
	for ci, p := range comp.Captions {
		timing := formatSeconds(p.Caption.AbsoluteStart) + " - " + formatSeconds(p.Caption.AbsoluteEnd)
		if len(p.Parts) == 0 {
			rows = append(rows, []string{strconv.Itoa(ci + 1), "-", p.Caption.Text, timing, ""})
			continue
		}
		for pi, part := range p.Parts {
			rows = append(rows, []string{
				strconv.Itoa(ci + 1),
				strconv.Itoa(pi + 1),
				markHighlights(part),
				timing,
				extensionNote(p.Caption, pi == len(p.Parts)-1),
			})
		}
	}
	fmt.Fprintln(out, renderTable("Captions", []column{
		{"Caption", alignRight}, {"Part", alignRight}, {"Text", alignLeft}, {"Timing", alignLeft}, {"Extended", alignRight},
	}, rows))

	msg := fmt.Sprintf("%d captions, %d parts, %d highlighted words, %d extended", len(comp.Captions), comp.Parts, comp.Highlighted, comp.Extended)
	fmt.Fprintln(out, renderStatusLine("Captions", statusOK, msg, shouldColorize(out)))
}

// markHighlights renders the part text with emphasized words in brackets.
func markHighlights(part captions.Part) string {
	texts := make([]string, len(part.Words))
	for i, w := range part.Words {
		if w.Metadata.IsHighlight {
			texts[i] = "[" + w.Text + "]"
		} else {
			texts[i] = w.Text
		}
	}
	return strings.Join(texts, " ")
}

func extensionNote(c captions.Caption, last bool) string {
	if !last || c.Metadata.ExtendedBy <= 0 {
		return ""
	}
	return "+" + formatSeconds(c.Metadata.ExtendedBy)
}
