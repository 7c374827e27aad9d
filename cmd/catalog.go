package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tzehon/somm/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and update the wine catalog",
}

var catalogShowCmd = &cobra.Command{
	Use:   "show",
	Short: "List the catalog's styles and wines",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(cmd)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Catalog %s (%s), %d styles, %d wines\n\n",
			cat.Version, cat.LastUpdated, len(cat.Styles), len(cat.AllItems()))
		for _, st := range cat.Styles {
			fmt.Fprintf(out, "%s (%s)\n", st.Name, st.ID)
			for _, w := range st.Wines {
				fmt.Fprintf(out, "  %-24s %s\n", w.Name, w.Origin)
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

var catalogRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Fetch the latest catalog from a mirror",
	RunE: func(cmd *cobra.Command, args []string) error {
		url, _ := cmd.Flags().GetString("url")
		if url == "" {
			return fmt.Errorf("--url is required")
		}

		dataDir, err := resolveDataDir(cmd)
		if err != nil {
			return fmt.Errorf("resolve data dir: %w", err)
		}

		fetcher := catalog.NewFetcher(url, dataDir)
		cat, err := fetcher.Refresh(cmd.Context())
		if err == catalog.ErrNotNewer {
			fmt.Fprintln(cmd.OutOrStdout(), "Cached catalog is already current.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("refresh catalog: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated to catalog %s (%d styles).\n", cat.Version, len(cat.Styles))
		return nil
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a catalog file against the schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
		cat, err := catalog.Parse(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: catalog %s, %d styles, %d wines\n",
			args[0], cat.Version, len(cat.Styles), len(cat.AllItems()))
		return nil
	},
}

func init() {
	catalogRefreshCmd.Flags().String("url", "", "Catalog mirror URL")

	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogRefreshCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
}
