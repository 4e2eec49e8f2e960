package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"fieldname-generator/internal/gen"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	planFlags

	Dir string
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{}

	cmd := &cobra.Command{
		Use:   "check [package]",
		Short: "Verify that generated files are up to date",
		Long: `Check regenerates the selected records in memory and compares the result
with the files on disk. Stale or missing files are reported with a diff and
the command exits with status 1.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, opts, packagePattern(args), cmd)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&opts.Dir, "dir", "", "directory holding generated files (default: package directory)")

	return cmd
}

func runCheck(rootOpts *RootOptions, opts *CheckOptions, pattern string, cmd *cobra.Command) error {
	stderr := cmd.ErrOrStderr()
	logger := rootOpts.logger(stderr)
	colors := newPalette(rootOpts.Color, cmd.OutOrStdout())

	p, err := loadPlan(&opts.planFlags, pattern, logger)
	if err != nil {
		return err
	}

	files, err := gen.NewGenerator(gen.DefaultGeneratorConfig(), logger).Generate(p)
	if err != nil {
		return WrapExitError(ExitFailure, "generating", err)
	}

	dir := opts.Dir
	if dir == "" {
		dir = p.Package.Dir
	}

	out := cmd.OutOrStdout()
	stale := 0

	for _, f := range files {
		path := filepath.Join(dir, f.Filename)

		onDisk, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			stale++
			fmt.Fprintf(out, "%s: missing\n", path)

			continue
		}

		if err != nil {
			return WrapExitError(ExitCommandError, "reading generated file", err)
		}

		if diff, changed := colors.lineDiff(string(onDisk), string(f.Content)); changed {
			stale++
			fmt.Fprintf(out, "%s: out of date\n%s", path, diff)

			continue
		}

		logger.Debug("up to date", "path", path)
	}

	if stale > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d generated file(s) out of date", stale))
	}

	fmt.Fprintf(out, "%d generated file(s) up to date\n", len(files))

	return nil
}
