package main

import (
	"fmt"
	"os"

	"github.com/autodidactus/mdp/internal/presentation/graph"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the graph visualization",
	Long:  `Outputs a Mermaid diagram (graph TD) of states, actions and weighted transitions.`,
	Run: func(cmd *cobra.Command, args []string) {
		m, err := loadProcess(cmd)
		if err != nil {
			fmt.Printf("Error loading graph: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(graph.GenerateMermaid(m))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
