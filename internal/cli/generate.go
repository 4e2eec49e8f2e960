package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"fieldname-generator/internal/common"
	"fieldname-generator/internal/gen"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	planFlags

	Output     string
	Dir        string
	DryRun     bool
	NoComments bool
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [package]",
		Short: "Generate field accessors for records of a package",
		Long: `Generate writes one <type>_fieldname.go file per record next to the
package sources. Records are selected with --type, or default to every struct
carrying a //fieldname: directive or an entry in the --config file.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(rootOpts, opts, packagePattern(args), cmd)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file name (single record only)")
	cmd.Flags().StringVar(&opts.Dir, "dir", "", "output directory (default: package directory)")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "print generated code instead of writing it")
	cmd.Flags().BoolVar(&opts.NoComments, "no-comments", false, "omit doc comments from generated code")

	return cmd
}

func runGenerate(rootOpts *RootOptions, opts *GenerateOptions, pattern string, cmd *cobra.Command) error {
	stderr := cmd.ErrOrStderr()
	logger := rootOpts.logger(stderr)
	colors := newPalette(rootOpts.Color, stderr)

	p, err := loadPlan(&opts.planFlags, pattern, logger)
	if err != nil {
		return err
	}

	colors.printDiagnostics(stderr, p.Diagnostics)

	if opts.Output != "" {
		if !common.IsSingle(p.Records) {
			return NewExitError(ExitCommandError,
				fmt.Sprintf("--output needs exactly one record, got %d", len(p.Records)))
		}

		p.Records[0].Output = opts.Output
	}

	cfg := gen.DefaultGeneratorConfig()
	cfg.GenerateComments = !opts.NoComments

	dir := opts.Dir
	if dir == "" {
		dir = p.Package.Dir
	}

	if !opts.DryRun {
		cfg.DebugDir = dir
	}

	files, err := gen.NewGenerator(cfg, logger).Generate(p)
	if err != nil {
		return WrapExitError(ExitFailure, "generating", err)
	}

	if opts.DryRun {
		for _, f := range files {
			fmt.Fprintf(cmd.OutOrStdout(), "// %s\n%s", f.Filename, f.Content)
		}

		return nil
	}

	if err := gen.WriteFiles(files, dir); err != nil {
		return WrapExitError(ExitCommandError, "writing files", err)
	}

	for _, f := range files {
		logger.Info("wrote file", "path", filepath.Join(dir, f.Filename))
		fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(dir, f.Filename))
	}

	return nil
}
