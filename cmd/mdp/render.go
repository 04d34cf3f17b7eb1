package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the graph as one line per edge",
	Long:  `Outputs every state -- (action, P=…, R=…) --> successor edge of the validated graph.`,
	Run: func(cmd *cobra.Command, args []string) {
		m, err := loadProcess(cmd)
		if err != nil {
			fmt.Printf("Error loading graph: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(m.String())
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
}
