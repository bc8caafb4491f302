package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"xdgkit/internal/digest"
	"xdgkit/internal/provision"
	"xdgkit/internal/scripts"
)

func newScriptsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scripts",
		Short: "Manage the bundled script cache",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Show the cache state of every bundled script",
		Args:  cobra.NoArgs,
		RunE:  runScriptsList,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "extract",
		Short: "Extract every bundled script up front",
		Args:  cobra.NoArgs,
		RunE:  runScriptsExtract,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path NAME",
		Short: "Print the resolved path of one script",
		Args:  cobra.ExactArgs(1),
		RunE:  runScriptsPath,
	})

	return cmd
}

// scriptState is one row of the list output.
type scriptState struct {
	Name   string `json:"name"`
	State  string `json:"state"`
	Path   string `json:"path,omitempty"`
	Digest string `json:"digest,omitempty"`
}

func runScriptsList(cmd *cobra.Command, _ []string) error {
	opts, err := resolveOptions()
	if err != nil {
		return err
	}
	loc := provision.NewLocator(scripts.Bundled, provision.Options{
		ScriptDir: opts.ScriptDir,
		SearchDir: opts.SearchDir,
		Version:   scripts.Version,
		VendorTag: scripts.VendorTag,
	})

	states := make([]scriptState, 0, len(scripts.Names()))
	for _, name := range scripts.Names() {
		states = append(states, inspectScript(loc, opts.ScriptDir, name))
	}

	if outputJSON {
		data, err := json.MarshalIndent(states, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 2, 2, ' ', 0)
	fmt.Fprintln(w, headerStyle.Render("SCRIPT")+"\t"+headerStyle.Render("STATE")+"\t"+headerStyle.Render("PATH"))
	for _, st := range states {
		fmt.Fprintf(w, "%s\t%s\t%s\n", st.Name, stateStyle(st.State).Render(st.State), st.Path)
	}
	return w.Flush()
}

// inspectScript reports the cache state of one script without
// extracting anything.
func inspectScript(loc *provision.Locator, overrideDir, name string) scriptState {
	st := scriptState{Name: name, State: "pending"}

	want, err := scripts.Bundled.Digest(name)
	if err != nil {
		st.State = "missing"
		return st
	}
	st.Digest = shortDigest(want)

	if overrideDir != "" {
		path := filepath.Join(overrideDir, name)
		if _, err := os.Stat(path); err == nil {
			st.State = "override"
			st.Path = path
		} else {
			st.State = "missing"
		}
		return st
	}

	for _, candidate := range loc.Candidates(name) {
		info, err := os.Stat(candidate)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		st.Path = candidate
		got, err := digest.File(candidate)
		if err == nil && got == want {
			st.State = "cached"
		} else {
			st.State = "stale"
		}
		return st
	}
	return st
}

func shortDigest(sum string) string {
	if len(sum) > 12 {
		return sum[:12]
	}
	return sum
}

func runScriptsExtract(cmd *cobra.Command, _ []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	if err := client.Preload(); err != nil {
		return err
	}

	for _, name := range scripts.Names() {
		path, err := client.Resolve(name)
		if err != nil {
			return err
		}
		cmd.Printf("%s\t%s\n", name, path)
	}
	return nil
}

func runScriptsPath(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	path, err := client.Resolve(args[0])
	if err != nil {
		return err
	}
	cmd.Println(path)
	return nil
}
