package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the known node types and their ports",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog()
		if err != nil {
			return err
		}
		for _, name := range c.Names() {
			spec, _ := c.SpecOf(name)
			fmt.Println(name)
			for _, in := range spec.Inputs {
				fmt.Printf("    in  %-12s %s\n", in.Name, in.Type)
			}
			for _, out := range spec.Outputs {
				fmt.Printf("    out %-12s %s\n", out.Name, out.Type)
			}
			if spec.HasContent() {
				fmt.Printf("    content      %s\n", spec.ContentType)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
