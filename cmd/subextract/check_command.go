package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"subextract/internal/deps"
	"subextract/pkg/executor"
)

func newCheckCommand(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that the required external tools are installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			checker := deps.NewChecker(executor.New())

			var rows [][]string
			for _, tool := range checker.Report(cmd.Context()) {
				status := "missing"
				if tool.Found {
					status = "ok"
				}
				rows = append(rows, []string{tool.Name, status, tool.Path, tool.Version})
			}
			fmt.Println(renderTable([]string{"Tool", "Status", "Path", "Version"}, rows))

			if err := checker.Check(); err != nil {
				return errors.New("required tools are missing; install ffmpeg and ffprobe and ensure they are on PATH")
			}
			return nil
		},
	}
}
