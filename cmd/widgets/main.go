package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"github.com/h0rv/widgets/internal/kv"
	"github.com/h0rv/widgets/internal/sketch"
	"github.com/h0rv/widgets/internal/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:   "widgets",
		Short: "A terminal box of small widgets",
		Long: `widgets is a terminal user interface bundling a few small tools:

  Calculator   four-function calculator with chained operations
  Todo         ordered todo list with filters, saved between runs
  Sketch       freehand drawing pad with undo/redo and PNG export
  Tic-Tac-Toe  two players on one keyboard

Configuration is read from $XDG_CONFIG_HOME/widgets/config.yaml and data
is stored under $XDG_DATA_HOME/widgets. A .env file in the working
directory may set WIDGETS_LOG_LEVEL and WIDGETS_STORAGE.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, f)
		},
	}

	f.register(rootCmd)
	rootCmd.Flags().StringVar(&f.Screen, "screen", "", "Open a widget directly: calc, todo, sketch or tictactoe. Skips the menu.")

	rootCmd.AddCommand(newCalcCmd())
	rootCmd.AddCommand(newTodoCmd(f))

	return rootCmd
}

func runTUI(cmd *cobra.Command, f *flags) error {
	start, err := tui.ParseScreen(f.Screen)
	if err != nil {
		return err
	}

	env, err := setup(f)
	if err != nil {
		return err
	}
	defer env.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	deps := tui.Deps{
		Store:     env.store,
		KV:        env.kv,
		Pad:       sketch.New(env.cfg.Sketch.Width, env.cfg.Sketch.Height, env.cfg.Sketch.HistoryDepth),
		Log:       env.log,
		ExportDir: env.cfg.Sketch.ExportDir,
		Theme:     env.cfg.Theme,
	}

	if file, ok := env.kv.(*kv.File); ok && env.cfg.Storage.Watching() {
		changes, err := file.Watch(ctx)
		if err != nil {
			env.log.Warn().Err(err).Msg("storage watcher unavailable")
		} else {
			deps.Changes = changes
		}
	}

	env.log.Info().Str("screen", start.String()).Msg("starting tui")

	app := tui.NewAppModel(deps, start)

	// Run Bubble Tea program
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("program error: %w", err)
	}

	return nil
}
