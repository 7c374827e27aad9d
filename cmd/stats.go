package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, closer, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		defer closer()

		rep := eng.Report()
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "Overall mastery   %d%%\n", rep.OverallMastery)
		fmt.Fprintf(out, "Learned wines     %d/%d\n", rep.Learned, rep.TotalWines)
		fmt.Fprintf(out, "Streak            %d days (best %d)\n", rep.Streak.CurrentStreak, rep.Streak.LongestStreak)
		fmt.Fprintf(out, "Sessions          %d\n", rep.Stats.TotalSessions)
		fmt.Fprintf(out, "Questions         %d\n", rep.Stats.TotalQuestions)
		fmt.Fprintf(out, "Review queue      %d due, %d new, %d scheduled\n\n",
			rep.Queue.Due, rep.Queue.New, rep.Queue.Mastered)

		fmt.Fprintln(out, "Styles")
		for _, cr := range rep.Categories {
			fmt.Fprintf(out, "  %-26s %3d%%  %s\n", cr.StyleName, cr.Mastery, cr.Level)
		}

		if eng.Degraded() {
			fmt.Fprintln(out, "\nwarning: progress storage is unavailable")
		}
		return nil
	},
}
