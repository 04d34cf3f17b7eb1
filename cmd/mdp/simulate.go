package main

import (
	"fmt"
	"os"
	"time"

	"github.com/autodidactus/mdp"
	"github.com/autodidactus/mdp/pkg/adapters/memory"
	redisadapter "github.com/autodidactus/mdp/pkg/adapters/redis"
	"github.com/autodidactus/mdp/pkg/ports"
	"github.com/spf13/cobra"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Sample episodes from the graph",
	Long:  `Runs weighted-draw episodes from a start state under a uniform random policy, printing each trajectory. Episodes can be persisted to Redis with --redis.`,
	Run: func(cmd *cobra.Command, args []string) {
		m, err := loadProcess(cmd)
		if err != nil {
			fmt.Printf("Error loading graph: %v\n", err)
			os.Exit(1)
		}

		startName, _ := cmd.Flags().GetString("start")
		steps, _ := cmd.Flags().GetInt("steps")
		episodes, _ := cmd.Flags().GetInt("episodes")
		seed, _ := cmd.Flags().GetInt64("seed")
		redisAddr, _ := cmd.Flags().GetString("redis")

		start, err := mdp.NewState(startName)
		if err != nil {
			fmt.Printf("Invalid start state: %v\n", err)
			os.Exit(1)
		}

		var store ports.EpisodeStore = memory.NewStore()
		if redisAddr != "" {
			store = redisadapter.New(redisAddr, "", 0)
		}

		sampler := mdp.NewSampler(m, seed)
		for i := 0; i < episodes; i++ {
			ep, err := sampler.Run(start, nil, steps)
			if err != nil {
				fmt.Printf("Simulation failed: %v\n", err)
				os.Exit(1)
			}

			id := fmt.Sprintf("episode-%d-%d", time.Now().Unix(), i)
			if err := store.Save(cmd.Context(), id, ep); err != nil {
				fmt.Printf("Failed to persist %s: %v\n", id, err)
				os.Exit(1)
			}

			fmt.Printf("%s (start=%s, total reward %.4f)\n", id, ep.Start, ep.TotalReward)
			for _, step := range ep.Steps {
				fmt.Printf("  %s --%s--> %s (R=%.4f)\n", step.From, step.Action, step.To, step.Reward)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().String("start", "", "Start state name (required)")
	simulateCmd.Flags().Int("steps", 20, "Maximum steps per episode")
	simulateCmd.Flags().Int("episodes", 1, "Number of episodes to sample")
	simulateCmd.Flags().Int64("seed", time.Now().UnixNano(), "Random seed")
	simulateCmd.Flags().String("redis", "", "Redis address for episode persistence (default: in-memory)")
	_ = simulateCmd.MarkFlagRequired("start")
}
