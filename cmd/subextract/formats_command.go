package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"subextract/internal/subformat"
)

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported subtitle output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows [][]string
			for _, spec := range subformat.All() {
				rows = append(rows, []string{spec.Name, "." + spec.Extension, spec.Codec, spec.Description})
			}
			fmt.Println(renderTable([]string{"Format", "Extension", "Codec", "Description"}, rows))
			return nil
		},
	}
}
