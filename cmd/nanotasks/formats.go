package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/nanotasks/formats"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the available output formats",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, name := range formats.List() {
			f, err := formats.Get(name)
			if err != nil {
				return err
			}
			marker := " "
			if name == session.Config.Format {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %-10s %s\n", marker, f.Name, f.Extension)
		}
		return nil
	},
}
