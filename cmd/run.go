package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tzehon/somm/internal/app"
	"github.com/tzehon/somm/internal/engine"
	"github.com/tzehon/somm/internal/screen"
)

// runApp builds the engine and launches the TUI, optionally landing on
// a screen other than home.
func runApp(cmd *cobra.Command, initial func(*engine.Engine) screen.Screen) error {
	eng, closer, err := buildEngine(cmd)
	if err != nil {
		return err
	}
	defer closer()

	opts := app.Options{Engine: eng}
	if initial != nil {
		opts.InitialScreen = initial(eng)
	}
	return app.Run(opts)
}
