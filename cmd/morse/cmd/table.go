package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "List the symbol table in use",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := translator()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, p := range tr.Table().Pairs() {
			if p.Alias {
				fmt.Fprintf(out, "%c  %-8s (alias)\n", p.Plain, p.Code)
			} else {
				fmt.Fprintf(out, "%c  %s\n", p.Plain, p.Code)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)
}
