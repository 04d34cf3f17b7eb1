package main

import (
	"fmt"
	"os"

	"github.com/autodidactus/mdp"
	yamladapter "github.com/autodidactus/mdp/pkg/adapters/yaml"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mdp",
	Short: "mdp inspects and simulates Markov Decision Process graphs",
	Long:  `mdp loads a YAML decision-process definition, validates it, and offers rendering, simulation and a query server over the frozen graph.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("file", "f", "graph.yaml", "Path to the YAML graph definition")
}

// loadProcess resolves the --file flag into a validated MDP.
func loadProcess(cmd *cobra.Command) (*mdp.MDP, error) {
	path, _ := cmd.Flags().GetString("file")
	loader := yamladapter.New(path)
	return loader.Load(cmd.Context())
}
