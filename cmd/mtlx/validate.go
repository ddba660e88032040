package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/agentic-research/mtlx"
	"github.com/agentic-research/mtlx/errors"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [file.mtlx]",
	Short: "Check a document's references, bindings, and inheritance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		return runValidate(cmd.OutOrStdout(), doc)
	},
}

func runValidate(w io.Writer, doc mtlx.Document) error {
	err := doc.Validate()
	if err == nil {
		fmt.Fprintln(w, "OK")
		return nil
	}
	findings, ok := errors.Findings(err)
	if !ok {
		return err
	}
	for _, f := range findings {
		fmt.Fprintln(w, f.Error())
	}
	return fmt.Errorf("%d validation finding(s)", len(findings))
}
