package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"xelogen/internal/demo"
	"xelogen/internal/lint"
	"xelogen/internal/render"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Build the example program, lint it, and dump it",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadCatalog()
		if err != nil {
			return err
		}
		g, err := demo.Build(reg)
		if err != nil {
			return err
		}

		engine := lint.NewEngine(slog.Default())
		engine.Register(lint.DynVarNames{})
		if warnings := engine.Run(g); warnings > 0 {
			slog.Info("lint finished", "warnings", warnings)
		}

		fmt.Println("Done!")
		return render.Program(os.Stdout, g)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
