package cli

import (
	"fmt"
	"slices"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"fieldname-generator/internal/config"
	"fieldname-generator/internal/plan"
)

// ValidInspectFormats defines the allowed --format values of inspect.
var ValidInspectFormats = []string{"yaml", "config", "dump"}

// InspectOptions holds flags for the inspect command.
type InspectOptions struct {
	planFlags

	Format string
	Out    string
}

// dumpConfig renders plans for --format dump.
var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect [package]",
		Short: "Print the resolved unions and field table without generating",
		Long: `Inspect resolves the selected records and prints, per record, the field
name to tag table and both unions with their cases and capabilities.

Formats:
  yaml    human-readable plan (default)
  config  a configuration file reproducing the resolved settings
  dump    the raw plan structure

With --format config, --out writes the configuration to a file instead of
stdout; a plan with errors is not written.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(rootOpts, opts, packagePattern(args), cmd)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "yaml", "output format (yaml|config|dump)")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "write the config to this file (--format config only)")

	return cmd
}

func runInspect(rootOpts *RootOptions, opts *InspectOptions, pattern string, cmd *cobra.Command) error {
	if !slices.Contains(ValidInspectFormats, opts.Format) {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidInspectFormats))
	}

	if opts.Out != "" && opts.Format != "config" {
		return NewExitError(ExitCommandError, "--out requires --format config")
	}

	stderr := cmd.ErrOrStderr()

	p, err := loadPlan(&opts.planFlags, pattern, rootOpts.logger(stderr))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	switch opts.Format {
	case "yaml":
		data, err := plan.ExportYAML(p)
		if err != nil {
			return WrapExitError(ExitFailure, "rendering plan", err)
		}

		_, err = out.Write(data)

		return err
	case "config":
		newPalette(rootOpts.Color, stderr).printDiagnostics(stderr, p.Diagnostics)

		if opts.Out != "" {
			return writeConfig(p, opts.Out, cmd)
		}

		data, err := plan.ExportConfigYAML(p)
		if err != nil {
			return WrapExitError(ExitFailure, "rendering config", err)
		}

		_, err = out.Write(data)

		return err
	default:
		dumpConfig.Fdump(out, p)
		return nil
	}
}

func writeConfig(p *plan.Plan, path string, cmd *cobra.Command) error {
	if p.Diagnostics.HasErrors() {
		return NewExitError(ExitFailure,
			fmt.Sprintf("plan has %d error(s), not writing %s", len(p.Diagnostics.Errors), path))
	}

	if err := config.WriteFile(plan.ExportConfig(p), path); err != nil {
		return WrapExitError(ExitCommandError, "writing config", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)

	return nil
}
