package main

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/agentic-research/mtlx/format"
)

func init() {
	rootCmd.AddCommand(dumpCmd)
}

var dumpCmd = &cobra.Command{
	Use:   "dump [file.mtlx]",
	Short: "Dump the parsed element tree for debugging",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		spew.Fdump(cmd.OutOrStdout(), format.Project(doc.Element))
		return nil
	},
}
