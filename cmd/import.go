package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Merge a progress backup into the current state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		eng, closer, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		defer closer()

		if err := eng.Import(raw); err != nil {
			return fmt.Errorf("import %s: %w", args[0], err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Imported", args[0])
		return nil
	},
}
