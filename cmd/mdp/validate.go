package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/autodidactus/mdp"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the graph definition for consistency",
	Long:  `Loads the definition and runs the full construction checks: domain equality, dangling references and per-action probability mass.`,
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := loadProcess(cmd); err != nil {
			fmt.Printf("Validation failed (%s): %v\n", classify(err), err)
			os.Exit(1)
		}
		fmt.Println("Graph is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func classify(err error) string {
	switch {
	case errors.Is(err, mdp.ErrInvalidArgument):
		return "invalid argument"
	case errors.Is(err, mdp.ErrStructuralMismatch):
		return "structural mismatch"
	case errors.Is(err, mdp.ErrDanglingReference):
		return "dangling reference"
	case errors.Is(err, mdp.ErrProbabilityMass):
		return "probability mass"
	default:
		return "load error"
	}
}
