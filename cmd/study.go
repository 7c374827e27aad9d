package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tzehon/somm/internal/engine"
	"github.com/tzehon/somm/internal/schedule"
	"github.com/tzehon/somm/internal/screen"
	"github.com/tzehon/somm/internal/screens/study"
)

var studyNext bool

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Review the flashcard deck",
	RunE: func(cmd *cobra.Command, args []string) error {
		if studyNext {
			return printNextToStudy(cmd)
		}
		return runApp(cmd, func(eng *engine.Engine) screen.Screen {
			return study.New(eng)
		})
	},
}

func init() {
	studyCmd.Flags().BoolVar(&studyNext, "next", false, "print the next wine to study and exit")
}

func printNextToStudy(cmd *cobra.Command) error {
	eng, closer, err := buildEngine(cmd)
	if err != nil {
		return err
	}
	defer closer()

	entry, ok := eng.ReviewQueue().NextToStudy(nil)
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing to study — the deck is empty.")
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s, %s)\n", entry.Item.Name, entry.Item.StyleName, entry.Item.Origin)
	switch entry.Priority {
	case schedule.PriorityDue:
		fmt.Fprintf(out, "due for review, %d day(s) overdue\n", entry.OverdueDays)
	case schedule.PriorityNew:
		fmt.Fprintln(out, "never studied")
	default:
		fmt.Fprintln(out, "scheduled for a future review")
	}
	return nil
}
