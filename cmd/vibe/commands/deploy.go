package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/vibe/internal/backup"
	"github.com/thoreinstein/vibe/internal/deploy"
	"github.com/thoreinstein/vibe/internal/errors"
)

// deployAll is the pseudo-target that fans out to every target.
const deployAll = "all"

func init() {
	rootCmd.AddCommand(deployCmd)
}

var deployCmd = &cobra.Command{
	Use:   "deploy [target|all]",
	Short: "Deploy MCP settings to assistant config files",
	Long: `Deploy the canonical MCP settings document to one target, or to all of
them with "all".

Each deployment expands environment variable references, drops servers
the target provides natively, encodes in the target's native format,
backs up the existing config file, and replaces it atomically.

With "all", targets are deployed concurrently and one target's failure
does not prevent the others from completing.

Run without arguments to pick a target interactively.`,
	Example: `  # Deploy everywhere
  vibe deploy all

  # Deploy the codex config only
  vibe deploy codex

  # Choose interactively
  vibe deploy

See Also: vibe targets`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeDeployTarget,
	RunE:              runDeploy,
}

func runDeploy(cmd *cobra.Command, args []string) error {
	pipeline := newPipeline()

	name, err := resolveTargetArg(pipeline, args)
	if err != nil || name == "" {
		return err
	}

	if name == deployAll {
		return deployAllTargets(cmd.OutOrStdout(), pipeline)
	}
	return deployOne(cmd.OutOrStdout(), pipeline, name)
}

// newPipeline builds the deployment pipeline from the loaded configuration.
func newPipeline() *deploy.Pipeline {
	c := loadedConfig()

	opts := []deploy.Option{
		deploy.WithBackups(backup.NewManager(
			backup.WithRetentionCount(c.Backup.RetentionCount),
		)),
	}
	if c.SettingsFile != "" {
		opts = append(opts, deploy.WithSettingsPath(c.SettingsFile))
	}
	return deploy.New(opts...)
}

// resolveTargetArg returns the target to deploy, prompting interactively when
// no argument was given. An empty name with nil error means the user aborted.
func resolveTargetArg(pipeline *deploy.Pipeline, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return selectTarget(pipeline.Targets())
}

// selectTarget runs the fuzzy finder over the target table plus "all".
func selectTarget(targets []deploy.Target) (string, error) {
	type choice struct {
		name    string
		display string
		detail  string
	}

	choices := []choice{{
		name:    deployAll,
		display: "All targets",
		detail:  "Deploy to every assistant concurrently",
	}}
	for _, t := range targets {
		choices = append(choices, choice{
			name:    t.Name,
			display: t.DisplayName,
			detail:  fmt.Sprintf("Format: %s\nPath:   %s", t.Format, t.Path),
		})
	}

	idx, err := fuzzyfinder.Find(
		choices,
		func(i int) string {
			return fmt.Sprintf("%s (%s)", choices[i].display, choices[i].name)
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return choices[i].detail
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", nil
		}
		return "", errors.Wrap(err, "selecting target")
	}

	return choices[idx].name, nil
}

// deployOne deploys a single target and reports the result.
func deployOne(w io.Writer, pipeline *deploy.Pipeline, name string) error {
	result, err := pipeline.Deploy(name)
	if err != nil {
		if errors.Is(err, deploy.ErrUnknownTarget) {
			return errors.NewUserError(err, "Run: vibe targets")
		}
		return err
	}

	printResult(w, result)
	return nil
}

// deployAllTargets fans out to every target and reports each outcome.
// Returns an error when any target failed, after all have been attempted.
func deployAllTargets(w io.Writer, pipeline *deploy.Pipeline) error {
	outcomes, err := pipeline.DeployAll()
	if err != nil {
		return err
	}

	failed := 0
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			failed++
			fmt.Fprintf(w, "%s %v\n", color.RedString("✗"), outcome.Err)
			continue
		}
		printResult(w, outcome.Result)
	}

	if failed > 0 {
		return errors.Newf("%d of %d targets failed", failed, len(outcomes))
	}
	return nil
}

// printResult writes one successful deployment line.
func printResult(w io.Writer, result *deploy.Result) {
	fmt.Fprintf(w, "%s %s: %d server(s) → %s\n",
		color.GreenString("✓"), result.Target, result.Servers, result.Path)
	if result.Excluded > 0 {
		fmt.Fprintf(w, "  %s\n",
			color.YellowString("excluded %d builtin server(s)", result.Excluded))
	}
}

// completeDeployTarget provides shell completion for the target argument.
func completeDeployTarget(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	names := []string{deployAll}
	for _, t := range deploy.DefaultTargets() {
		names = append(names, t.Name)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
