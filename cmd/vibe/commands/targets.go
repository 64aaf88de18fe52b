package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/vibe/internal/deploy"
)

var targetsJSON bool

func init() {
	targetsCmd.Flags().BoolVar(&targetsJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(targetsCmd)
}

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List deployment targets",
	Long: `List every deployment target with its native format and the config file
path it deploys to. Paths are resolved for the current user and platform.`,
	Example: `  # List targets
  vibe targets

  # Output as JSON
  vibe targets --json

See Also: vibe deploy`,
	RunE: runTargets,
}

// targetInfoJSON represents a target in JSON output format.
type targetInfoJSON struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Format      string `json:"format"`
	Path        string `json:"path"`
}

func runTargets(cmd *cobra.Command, _ []string) error {
	targets := newPipeline().Targets()

	if targetsJSON {
		return outputTargetsJSON(cmd.OutOrStdout(), targets)
	}
	return outputTargetsTabular(cmd.OutOrStdout(), targets)
}

func outputTargetsJSON(w io.Writer, targets []deploy.Target) error {
	output := make([]targetInfoJSON, len(targets))
	for i, t := range targets {
		output[i] = targetInfoJSON{
			Name:        t.Name,
			DisplayName: t.DisplayName,
			Format:      string(t.Format),
			Path:        t.Path,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func outputTargetsTabular(w io.Writer, targets []deploy.Target) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%sTARGET%s\t%sFORMAT%s\t%sPATH%s\n",
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset)

	for _, t := range targets {
		fmt.Fprintf(tw, "%s%s%s\t%s\t%s\n",
			colorGreen, t.Name, colorReset,
			t.Format,
			t.Path)
	}
	return tw.Flush()
}
