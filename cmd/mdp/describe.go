package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/autodidactus/mdp"
	"github.com/autodidactus/mdp/internal/presentation/tui"
	yamladapter "github.com/autodidactus/mdp/pkg/adapters/yaml"
	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Show a rendered summary of the graph",
	Long:  `Builds a markdown summary (per-state actions, per-action outcome tables) and renders it for the terminal.`,
	Run: func(cmd *cobra.Command, args []string) {
		path, _ := cmd.Flags().GetString("file")
		loader := yamladapter.New(path)

		m, err := loader.Load(cmd.Context())
		if err != nil {
			fmt.Printf("Error loading graph: %v\n", err)
			os.Exit(1)
		}
		info, err := loader.Info(cmd.Context())
		if err != nil {
			fmt.Printf("Error reading metadata: %v\n", err)
			os.Exit(1)
		}

		markdown := summarize(m, info)
		render := tui.NewRenderer()
		out, err := render(markdown)
		if err != nil {
			// Fall back to raw markdown on renderer failure.
			out = markdown
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}

func summarize(m *mdp.MDP, info yamladapter.Info) string {
	var sb strings.Builder

	title := info.Title
	if title == "" {
		title = "Markov Decision Process"
	}
	fmt.Fprintf(&sb, "# %s\n\n", title)
	if info.Description != "" {
		fmt.Fprintf(&sb, "%s\n\n", info.Description)
	}
	fmt.Fprintf(&sb, "%d states, %d actions.\n\n", len(m.States()), len(m.Actions()))

	sb.WriteString("## States\n\n")
	for _, s := range m.States() {
		actions, err := m.ActionsFromState(s)
		if err != nil {
			continue
		}
		if len(actions) == 0 {
			fmt.Fprintf(&sb, "- **%s** — terminal (no actions)\n", s.Name())
			continue
		}
		names := make([]string, len(actions))
		for i, a := range actions {
			names[i] = a.Name()
		}
		fmt.Fprintf(&sb, "- **%s** — actions: %s\n", s.Name(), strings.Join(names, ", "))
	}

	sb.WriteString("\n## Actions\n\n")
	for _, a := range m.Actions() {
		fmt.Fprintf(&sb, "### %s\n\n", a.Name())
		sb.WriteString("| successor | probability | reward |\n")
		sb.WriteString("|-----------|-------------|--------|\n")
		probability, err := m.StateProbabilityMap(a)
		if err != nil {
			continue
		}
		reward, _ := m.StateRewardMap(a)
		targets, _ := m.StatesFromAction(a)
		for _, to := range targets {
			fmt.Fprintf(&sb, "| %s | %.4f | %.4f |\n", to.Name(), probability[to], reward[to])
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
