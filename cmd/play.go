package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tzehon/somm/internal/engine"
	"github.com/tzehon/somm/internal/quiz"
	"github.com/tzehon/somm/internal/screen"
	sessionscreen "github.com/tzehon/somm/internal/screens/session"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Jump straight into a quiz session",
	RunE: func(cmd *cobra.Command, args []string) error {
		modes, _ := cmd.Flags().GetStringSlice("modes")
		categories, _ := cmd.Flags().GetStringSlice("categories")
		count, _ := cmd.Flags().GetInt("count")
		difficulty, _ := cmd.Flags().GetString("difficulty")

		for _, m := range modes {
			if _, err := quiz.ParseMode(m); err != nil {
				return fmt.Errorf("--modes: %w", err)
			}
		}
		switch difficulty {
		case "", "easy", "medium", "hard":
		default:
			return fmt.Errorf("--difficulty must be easy, medium, or hard")
		}

		cfg := engine.SessionConfig{
			Modes:      modes,
			Categories: categories,
			Count:      count,
			Difficulty: difficulty,
		}
		return runApp(cmd, func(eng *engine.Engine) screen.Screen {
			return sessionscreen.New(eng, cfg)
		})
	},
}

func init() {
	playCmd.Flags().StringSlice("modes", nil, "Question modes to draw from (default: enabled settings)")
	playCmd.Flags().StringSlice("categories", nil, "Style ids to focus on (default: settings focus)")
	playCmd.Flags().Int("count", 0, "Number of questions (default: settings)")
	playCmd.Flags().String("difficulty", "", "easy, medium, or hard (default: settings)")
}
