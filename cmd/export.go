package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a progress backup to a JSON file",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, closer, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		defer closer()

		name, data, err := eng.Export()
		if err != nil {
			return fmt.Errorf("export progress: %w", err)
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = name
		} else if info, statErr := os.Stat(out); statErr == nil && info.IsDir() {
			out = filepath.Join(out, name)
		}

		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Wrote", out)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("out", "", "Output file or directory (default: ./somm-progress-<date>.json)")
}
