package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentic-research/mtlx"
	"github.com/agentic-research/mtlx/format"
)

var rootCmd = &cobra.Command{
	Use:   "mtlx",
	Short: "Inspect and validate material document references",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func loadDocument(path string) (mtlx.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return mtlx.Document{}, fmt.Errorf("open document: %w", err)
	}
	defer func() { _ = f.Close() }()
	return format.Read(f)
}
