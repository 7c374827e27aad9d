package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tzehon/somm/internal/catalog"
	"github.com/tzehon/somm/internal/engine"
	"github.com/tzehon/somm/internal/progress"
)

var rootCmd = &cobra.Command{
	Use:   "somm",
	Short: "Wine study in the terminal",
	Long:  "Somm — a terminal quiz that builds wine knowledge with spaced repetition.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, nil)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("data", "", "Data directory (overrides SOMM_DATA)")
	rootCmd.PersistentFlags().String("db", "", "Store progress in a SQLite file instead of progress.json")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a wine catalog JSON file (overrides SOMM_CATALOG)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(studyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDataDir returns the data directory from --data, SOMM_DATA,
// or the XDG default.
func resolveDataDir(cmd *cobra.Command) (string, error) {
	if d, _ := cmd.Flags().GetString("data"); d != "" {
		return d, nil
	}
	return progress.DefaultDataDir()
}

// openBackend picks the progress backend: SQLite when --db is given,
// the JSON file in the data directory otherwise. The returned closer
// is a no-op for the file backend.
func openBackend(cmd *cobra.Command) (progress.Backend, func() error, error) {
	if dbPath, _ := cmd.Flags().GetString("db"); dbPath != "" {
		b, err := progress.OpenSQLite(dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open progress db: %w", err)
		}
		return b, b.Close, nil
	}

	dataDir, err := resolveDataDir(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}
	path := filepath.Join(dataDir, progress.SnapshotFileName)
	if err := progress.EnsureDir(path); err != nil {
		return nil, nil, fmt.Errorf("create data dir: %w", err)
	}
	return progress.NewFileBackend(path), func() error { return nil }, nil
}

// loadCatalog resolves the catalog: --catalog, then SOMM_CATALOG, then
// a cached refresh, then the embedded starter set.
func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	explicit, _ := cmd.Flags().GetString("catalog")
	if explicit == "" {
		explicit = catalog.ResolvePath()
	}

	dataDir, err := resolveDataDir(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	return catalog.Load(explicit, dataDir)
}

// buildEngine wires the catalog and store into an engine. Callers must
// invoke the returned closer when done.
func buildEngine(cmd *cobra.Command) (*engine.Engine, func() error, error) {
	cat, err := loadCatalog(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("load catalog: %w", err)
	}

	backend, closer, err := openBackend(cmd)
	if err != nil {
		return nil, nil, err
	}

	store := progress.NewStore(backend)
	return engine.New(cat, store), closer, nil
}
