package main

import (
	"fmt"
	"strings"

	"github.com/autodidactus/mdp"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of mdp",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mdp version %s\n", strings.TrimSpace(mdp.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
