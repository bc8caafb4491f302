package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"xdgkit/internal/config"
	"xdgkit/internal/logx"
	"xdgkit/pkg/xdg"
)

var (
	scriptDir  string
	searchDir  string
	configPath string
	outputJSON bool
	verbose    bool
)

// Execute runs the root cobra command. Script exit statuses propagate
// as the process exit code.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		var statusErr *statusError
		if errors.As(err, &statusErr) {
			os.Exit(statusErr.processCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "xdgkit",
		Short: "Desktop integration via bundled xdg-utils scripts",
	}

	cmd.PersistentFlags().StringVar(&scriptDir, "script-dir", "", "Directory of pre-extracted scripts (bypasses extraction)")
	cmd.PersistentFlags().StringVar(&searchDir, "search-dir", "", "Directory checked for pre-installed scripts")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ~/.xdgkit/config.yaml)")
	cmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output machine-readable JSON")
	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	cmd.AddCommand(newOpenCmd())
	cmd.AddCommand(newMimeCmd())
	cmd.AddCommand(newEmailCmd())
	cmd.AddCommand(newSettingsCmd())
	cmd.AddCommand(newScreenSaverCmd())
	cmd.AddCommand(newMenuCmd())
	cmd.AddCommand(newIconCmd())
	cmd.AddCommand(newIconResourceCmd())
	cmd.AddCommand(newScriptsCmd())

	return cmd
}

// resolveOptions merges the config file with the command-line flags;
// flags win.
func resolveOptions() (xdg.Options, error) {
	path := configPath
	if path == "" {
		if p, err := config.DefaultPath(); err == nil {
			path = p
		}
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return xdg.Options{}, err
		}
		cfg = loaded
	}

	opts := xdg.Options{
		ScriptDir: cfg.ScriptDir,
		SearchDir: cfg.SearchDir,
		Logger:    logx.New(verbose),
	}
	if scriptDir != "" {
		opts.ScriptDir = scriptDir
	}
	if searchDir != "" {
		opts.SearchDir = searchDir
	}
	return opts, nil
}

func newClient() (*xdg.Client, error) {
	opts, err := resolveOptions()
	if err != nil {
		return nil, err
	}
	return xdg.New(opts), nil
}

// statusError carries a non-zero script exit status out of a cobra
// command so Execute can exit the process with it.
type statusError struct {
	tool   string
	status int
}

func (e *statusError) Error() string {
	if e.status == xdg.StatusWrapperError {
		return fmt.Sprintf("%s: could not launch or communicate with the script", e.tool)
	}
	return fmt.Sprintf("%s exited with status %d", e.tool, e.status)
}

// processCode clamps the script status into the range a process can
// exit with. The wrapper sentinel maps to 1.
func (e *statusError) processCode() int {
	if e.status > 0 && e.status < 126 {
		return e.status
	}
	return 1
}

// emitResult prints an invocation's output and converts a non-zero
// status into a statusError.
func emitResult(cmd *cobra.Command, tool string, res xdg.Result) error {
	if outputJSON {
		data, err := json.MarshalIndent(struct {
			Tool   string `json:"tool"`
			Output string `json:"output,omitempty"`
			Status int    `json:"status"`
		}{Tool: tool, Output: res.Output, Status: res.Status}, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		cmd.Println(string(data))
	} else if res.Output != "" {
		cmd.Println(res.Output)
	}

	if res.Status != xdg.StatusSuccess {
		return &statusError{tool: tool, status: res.Status}
	}
	return nil
}
