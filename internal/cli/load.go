package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"fieldname-generator/internal/analyze"
	"fieldname-generator/internal/config"
	"fieldname-generator/internal/plan"
)

// planFlags are shared by every command that resolves a plan.
type planFlags struct {
	types  []string
	config string
	strict bool
}

func (f *planFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&f.types, "type", "t", nil,
		"record type to process (repeatable); default: annotated and configured records")
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "YAML configuration file")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "treat warnings as errors")
}

// packagePattern returns the package argument, defaulting to the current
// directory.
func packagePattern(args []string) string {
	if len(args) == 0 {
		return "."
	}

	return args[0]
}

// loadPlan loads the package matching pattern and resolves the requested
// records into a plan.
func loadPlan(f *planFlags, pattern string, logger *slog.Logger) (*plan.Plan, error) {
	var file *config.File

	if f.config != "" {
		var err error

		file, err = config.LoadFile(f.config)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "loading config", err)
		}

		logger.Debug("loaded config", "path", f.config, "records", len(file.Records))
	}

	pkg, err := analyze.NewAnalyzer(logger).LoadPackage(pattern)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "loading package", err)
	}

	resolver := plan.NewResolver(file, plan.ResolutionConfig{StrictMode: f.strict}, logger)

	p, err := resolver.Resolve(pkg, f.types...)
	if err != nil {
		return nil, WrapExitError(ExitFailure, "resolving records", err)
	}

	return p, nil
}
