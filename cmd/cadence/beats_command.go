package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"cadence/internal/analysis"
	"cadence/internal/composer"
	"cadence/internal/config"
	"cadence/internal/services"
)

type beatsFlags struct {
	max         int
	minGap      float64
	window      float64
	overlap     float64
	mode        string
	seed        uint64
	analysisDir string
	strict      bool
}

func newBeatsCommand(ctx *commandContext) *cobra.Command {
	var flags beatsFlags

	cmd := &cobra.Command{
		Use:   "beats <source-id|analysis.json>",
		Short: "Select impact beats and clip windows from an audio analysis",
		Long: "Select impact beats from a pre-computed audio analysis and cut the analyzed window\n" +
			"into clip windows. The argument is a source id looked up under analysis.dir, or a\n" +
			"path to an analysis JSON document.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger()
			if err != nil {
				return err
			}

			req := beatRequest(cmd, cfg, flags, args[0])
			dir := cfg.Analysis.Dir
			if cmd.Flags().Changed("analysis-dir") {
				if dir, err = config.ExpandPath(flags.analysisDir); err != nil {
					return services.Wrap(services.ErrConfiguration, "cli", "analysis dir", "", err)
				}
			}

			c := composer.New(composer.Deps{Analysis: analysis.NewFileSource(dir), Logger: logger})
			comp, err := c.BeatSync(cmd.Context(), req)
			if err != nil && !errors.Is(err, services.ErrUnavailable) {
				return err
			}
			fetchErr := err

			if ctx.jsonOutput() {
				if err := writeJSON(cmd, comp); err != nil {
					return err
				}
			} else {
				printBeats(cmd, comp, fetchErr)
			}
			if fetchErr != nil && flags.strict {
				return fetchErr
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&flags.max, "max", 0, "Maximum beats to select (0 picks the count automatically)")
	cmd.Flags().Float64Var(&flags.minGap, "min-gap", 0, "Minimum seconds between beats")
	cmd.Flags().Float64Var(&flags.window, "window", 0, "Window length in seconds (defaults to the analyzed duration)")
	cmd.Flags().Float64Var(&flags.overlap, "overlap", 0, "Transition overlap in seconds added around each cut")
	cmd.Flags().StringVar(&flags.mode, "mode", "", "Selection mode: impact or random")
	cmd.Flags().Uint64Var(&flags.seed, "seed", 0, "Seed for random mode")
	cmd.Flags().StringVar(&flags.analysisDir, "analysis-dir", "", "Directory holding <source-id>.json analysis documents")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "Exit non-zero when the analysis cannot be fetched")
	return cmd
}

// beatRequest merges [beats] config with explicitly set flags.
func beatRequest(cmd *cobra.Command, cfg *config.Config, flags beatsFlags, sourceID string) composer.BeatRequest {
	req := composer.BeatRequest{
		SourceID: sourceID,
		MaxBeats: cfg.Beats.MaxBeats,
		MinGap:   cfg.Beats.MinGapSeconds,
		Overlap:  cfg.Beats.OverlapSeconds,
		Mode:     cfg.Beats.Mode,
		Seed:     cfg.Beats.Seed,
		Profile:  cfg.BeatProfile(),
	}
	changed := cmd.Flags().Changed
	if changed("max") {
		req.MaxBeats = flags.max
	}
	if changed("min-gap") {
		req.MinGap = flags.minGap
	}
	if changed("window") {
		req.Window = flags.window
	}
	if changed("overlap") {
		req.Overlap = flags.overlap
	}
	if changed("mode") {
		req.Mode = flags.mode
	}
	if changed("seed") {
		req.Seed = flags.seed
	}
	return req
}

func printBeats(cmd *cobra.Command, comp composer.BeatComposition, fetchErr error) {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	if comp.Empty {
		reason := "analysis has no events"
		if fetchErr != nil {
			reason = fetchErr.Error()
		}
		fmt.Fprintln(out, renderStatusLine("Beats", statusWarn, "no beat-synced cuts: "+reason, colorize))
		if fetchErr != nil {
			return
		}
	} else {
		msg := fmt.Sprintf("%d beats over %s (%s mode)", len(comp.Beats), formatSeconds(comp.Window), comp.Mode)
		fmt.Fprintln(out, renderStatusLine("Beats", statusOK, msg, colorize))
	}

	if len(comp.Beats) > 0 {
		rows := make([][]string, len(comp.Beats))
		for i, b := range comp.Beats {
			rows[i] = []string{
				strconv.Itoa(i + 1),
				formatSeconds(b.Timestamp),
				formatScore(b.Intensity),
				formatScore(b.TotalScore),
				yesNo(b.IsLocalPeak),
			}
		}
		fmt.Fprintln(out, renderTable("Beats", []column{
			{"#", alignRight}, {"Time", alignRight}, {"Intensity", alignRight}, {"Score", alignRight}, {"Peak", alignLeft},
		}, rows))
	}

	rows := make([][]string, len(comp.Clips))
	for i, clip := range comp.Clips {
		beat := "lead-in"
		if clip.Beat != nil {
			beat = formatSeconds(*clip.Beat)
		}
		rows[i] = []string{
			strconv.Itoa(clip.Index + 1),
			formatSeconds(clip.Start),
			formatSeconds(clip.Duration),
			formatSeconds(clip.Base),
			beat,
		}
	}
	fmt.Fprintln(out, renderTable("Clips", []column{
		{"#", alignRight}, {"Start", alignRight}, {"Duration", alignRight}, {"Base", alignRight}, {"Opens on", alignLeft},
	}, rows))
	fmt.Fprintf(out, "run %s\n", comp.RunID)
}
