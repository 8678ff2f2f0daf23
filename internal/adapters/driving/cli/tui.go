package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/medley/internal/adapters/driving/tui"
	"github.com/custodia-labs/medley/internal/logger"
)

// defaultLogName is the log file used by the UI when --log-file is not set.
const defaultLogName = "medley.log"

// errNotTerminal is returned when the UI is started without a terminal.
var errNotTerminal = errors.New("the interactive UI needs a terminal; use 'medley search' for scripts")

// isTerminal reports whether stdin and stdout are attached to a terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// fallbackLogDir is where UI logs go when the config directory is unavailable.
var fallbackLogDir = os.TempDir

// runApp runs the bubbletea program.
var runApp = func(app *tui.App) error {
	return app.Run()
}

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for medley.

Search the catalog by title or creator, pick a result and browse its
recommendations. Recommendations can be followed from one item to the next.

Controls:
  Tab            - Switch between the form and the results
  ←/→, Ctrl+T    - Change media type
  Enter          - Search / Get recommendations / Select this instead
  ↑/k, ↓/j       - Navigate cards
  b, Esc         - Back to search
  Ctrl+C         - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	if !isTerminal() {
		return errNotTerminal
	}

	svc, err := catalog()
	if err != nil {
		return err
	}
	resolved, err := resolveSettings()
	if err != nil {
		return err
	}

	ports := tui.NewPorts(svc, resolvedSettings{settings: resolved})
	if store, err := settings(); err == nil {
		ports.Settings = resolvedSettings{SettingsService: store, settings: resolved}
	}

	restore := routeUILogs()
	defer restore()

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if err := runApp(app); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// routeUILogs moves logging off the terminal while the UI owns it: to
// --log-file, else next to config.toml, else the temp dir, else nowhere.
// The returned func restores stderr when no file was opened.
func routeUILogs() func() {
	noop := func() {}
	if logFile != nil {
		return noop
	}

	var dirs []string
	if store, err := settings(); err == nil && store.Path() != "" {
		dirs = append(dirs, filepath.Dir(store.Path()))
	}
	dirs = append(dirs, fallbackLogDir())

	for _, dir := range dirs {
		path := filepath.Join(dir, defaultLogName)
		if err := openLogFile(path); err != nil {
			logger.Debug("Cannot log to %s: %v", path, err)
			continue
		}
		return noop
	}

	logger.SetOutput(io.Discard)
	return func() { logger.SetOutput(os.Stderr) }
}
