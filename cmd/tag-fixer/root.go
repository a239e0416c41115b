package main

import (
	"fmt"

	"github.com/handiism/podcast-tagger/internal/audio"
	"github.com/handiism/podcast-tagger/internal/config"
	ioutils "github.com/handiism/podcast-tagger/internal/io"
	"github.com/handiism/podcast-tagger/internal/retag"
	"github.com/handiism/podcast-tagger/internal/tui"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var (
		configFlag string
		dirs       []string
		opts       retag.Options
	)

	cmd := &cobra.Command{
		Use:   "tag-fixer",
		Short: "Fix the tags of audio files from their names and directories",
		Long: "Sets ALBUM (the directory name unless --album is given), ARTIST, TITLE and optionally " +
			"TRACKNUMBER on every file of the given directories. Other tags are kept.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(configFlag)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("guess-track-number") {
				opts.GuessTrackNumber = settings.GuessTrackNumber
			}

			if len(dirs) == 0 {
				if dirs, err = ioutils.ListDirs("."); err != nil {
					return err
				}
			}

			reporter := tui.NewReporter(cmd.OutOrStdout(), opts.Verbose)
			return runFix(dirs, opts, tui.NewTerminalPrompter(nil, nil), reporter)
		},
	}

	cmd.Flags().StringArrayVarP(&dirs, "directories", "d", nil, "Directory to work on, repeatable (default: every subdirectory of the current one)")
	cmd.Flags().BoolVarP(&opts.ConfirmEachFile, "confirm-each-file", "c", false, "Ask before updating each file")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show the resulting tags of each file")
	cmd.Flags().StringVar(&opts.Album, "album", "", "Album for every file (default: directory name)")
	cmd.Flags().StringVar(&opts.Artist, "artist", "", "Artist for every file (asked for per directory when empty)")
	cmd.Flags().BoolVar(&opts.GuessTrackNumber, "guess-track-number", false, "Extract track numbers from filenames")
	cmd.Flags().StringVar(&configFlag, "config", "", "Configuration file path (default ~/.config/podcast-tagger/config.toml)")

	return cmd
}

func runFix(dirs []string, opts retag.Options, prompter tui.Prompter, reporter *tui.Reporter) error {
	reporter.Title("Tag Fixer")

	provider := retag.NewManualProvider(opts, prompter)
	fixer := retag.NewFixer(audio.NewTagger(), provider, prompter, opts, reporter.Func())

	result, err := fixer.Run(dirs)
	reporter.Summary("Done!",
		fmt.Sprintf("Updated: %d", result.Updated),
		fmt.Sprintf("Skipped: %d", result.Skipped),
		fmt.Sprintf("Ignored: %d", result.Failed),
	)
	return err
}
