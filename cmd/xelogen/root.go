package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"xelogen/internal/catalog"
)

var (
	verbose      bool
	catalogFiles []string
)

var rootCmd = &cobra.Command{
	Use:   "xelogen",
	Short: "Xelogen builds typed node graphs for visual scripting",
	Long: `Xelogen assembles typed, directed graphs of operation nodes, the
intermediate representation consumed by visual-scripting exporters.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringArrayVar(&catalogFiles, "catalog", nil,
		"YAML catalog file with additional node specs (repeatable)")
}

// loadCatalog returns the builtin catalog merged with any --catalog files.
func loadCatalog() (*catalog.Catalog, error) {
	c := catalog.Builtin()
	for _, path := range catalogFiles {
		if err := c.LoadFile(path); err != nil {
			return nil, err
		}
	}
	return c, nil
}
