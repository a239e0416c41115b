package main

import (
	"context"
	"fmt"

	"github.com/handiism/podcast-tagger/internal/config"
	"github.com/handiism/podcast-tagger/internal/download"
	"github.com/handiism/podcast-tagger/internal/podcast"
	"github.com/handiism/podcast-tagger/internal/progress"
	"github.com/handiism/podcast-tagger/internal/tui"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var (
		configFlag string
		workingDir string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:           "podcast-fetch",
		Short:         "Download new podcast episodes and tag them",
		Long:          "Looks for subscription directories (carrying a PODCAST_METADATA file) in the working directory and downloads the episodes of their feeds that are not on disk yet.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(configFlag)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("working-dir") {
				settings.WorkingDir = workingDir
			}

			reporter := tui.NewReporter(cmd.OutOrStdout(), verbose)
			return runFetch(cmd.Context(), settings, tui.NewTerminalPrompter(nil, nil), reporter)
		},
	}

	cmd.Flags().StringVarP(&workingDir, "working-dir", "d", ".", "Directory containing the podcast subscription directories")
	cmd.Flags().StringVar(&configFlag, "config", "", "Configuration file path (default ~/.config/podcast-tagger/config.toml)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show verbose output")

	return cmd
}

// runFetch lists the subscriptions, lets the user pick some and downloads
// their missing episodes.
func runFetch(ctx context.Context, settings *config.Settings, prompter tui.Prompter, reporter *tui.Reporter) error {
	report := reporter.Func()
	reporter.Title("Podcast Fetcher")

	podcasts, err := podcast.ListPodcasts(settings.WorkingDir, report)
	if err != nil {
		return err
	}
	if len(podcasts) == 0 {
		report.Emit(progress.LevelInfo, "Found no podcasts in the given directory")
		return nil
	}

	titles := make([]string, len(podcasts))
	for i, p := range podcasts {
		titles[i] = p.Title
	}
	reporter.List("Found the following podcasts:", titles)

	resp, err := prompter.Ask("What podcasts to work on? [no=cancel/empty=all]", "")
	if err != nil {
		return err
	}
	indices, cancelled, warnings := tui.ParseSelection(resp, len(podcasts))
	for _, w := range warnings {
		report.Emit(progress.LevelWarning, "%v", w)
	}
	if cancelled {
		report.Emit(progress.LevelInfo, "Cancelling...")
		return nil
	}
	if len(indices) == 0 {
		report.Emit(progress.LevelInfo, "No podcasts to process, cancelling...")
		return nil
	}

	manager := download.NewManager(settings, report)
	var total download.Result
	for _, idx := range indices {
		result, err := manager.ProcessPodcast(ctx, podcasts[idx])
		total.Add(result)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			report.Emit(progress.LevelError, "%s: %v", podcasts[idx].Title, err)
		}
	}

	reporter.Summary("Done!",
		fmt.Sprintf("Podcasts: %d", len(indices)),
		fmt.Sprintf("Downloaded: %d episodes (%s)", total.Downloaded, tui.Bytes(total.Bytes)),
		fmt.Sprintf("Failed: %d", total.Failed),
	)
	return nil
}
