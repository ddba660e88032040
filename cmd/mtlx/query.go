package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentic-research/mtlx/format"
)

func init() {
	rootCmd.AddCommand(queryCmd)
}

var queryCmd = &cobra.Command{
	Use:   "query [file.mtlx] [jsonpath]",
	Short: "Evaluate a JSONPath expression against the document projection",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		results, err := format.Query(doc, args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), format.JSONValue(results))
		return nil
	},
}
