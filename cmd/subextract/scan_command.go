package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"subextract/internal/deps"
	"subextract/internal/engine"
	"subextract/internal/language"
	"subextract/internal/probe"
	"subextract/pkg/executor"
)

func newScanCommand(app *appContext) *cobra.Command {
	var languageFlag string

	cmd := &cobra.Command{
		Use:   "scan [path...]",
		Short: "List embedded subtitle streams without extracting anything",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, err := app.load()
			if err != nil {
				return err
			}

			exe := executor.New()
			if err := deps.NewChecker(exe).Check(); err != nil {
				return err
			}
			prober := probe.New(exe)

			files, err := engine.DiscoverVideos(args)
			if err != nil {
				return err
			}

			filter := ""
			if cmd.Flags().Changed("language") {
				filter = language.Normalize(languageFlag)
			}

			var rows [][]string
			for _, file := range files {
				streams, err := prober.SubtitleStreams(cmd.Context(), file)
				if err != nil {
					log.Warn(cmd.Context(), "Probe failed for %s: %v", file, err)
					continue
				}
				for _, s := range streams {
					if filter != "" && s.Language != filter {
						continue
					}
					rows = append(rows, []string{
						filepath.Base(file),
						strconv.Itoa(s.Index),
						s.Codec,
						fmt.Sprintf("%s (%s)", s.Language, language.DisplayName(s.Language)),
						s.Title,
					})
				}
			}

			if len(rows) == 0 {
				fmt.Println("No subtitle streams found")
				return nil
			}

			fmt.Println(renderTable([]string{"File", "Index", "Codec", "Language", "Title"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVarP(&languageFlag, "language", "l", "", "Only list streams with this language tag")

	return cmd
}
