package analyze

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// Analyzer loads Go packages and extracts records from them.
type Analyzer struct {
	// Dir is the working directory for package patterns. Empty means the
	// current directory.
	Dir    string
	logger *slog.Logger
}

// NewAnalyzer creates a new Analyzer. A nil logger discards output.
func NewAnalyzer(logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Analyzer{logger: logger}
}

// LoadPackages loads the packages matching the given patterns.
// Patterns are standard Go package patterns (e.g., "./records", "fieldname-generator/examples/records").
func (a *Analyzer) LoadPackages(patterns ...string) ([]*PackageInfo, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	infos := make([]*PackageInfo, 0, len(pkgs))
	for _, pkg := range pkgs {
		info := &PackageInfo{
			Path: pkg.PkgPath,
			Name: pkg.Name,
			pkg:  pkg,
		}

		if len(pkg.GoFiles) > 0 {
			info.Dir = filepath.Dir(pkg.GoFiles[0])
		}

		a.logger.Debug("loaded package",
			"path", info.Path,
			"dir", info.Dir,
			"files", len(pkg.Syntax),
		)

		infos = append(infos, info)
	}

	return infos, nil
}

// LoadPackage loads exactly one package.
func (a *Analyzer) LoadPackage(pattern string) (*PackageInfo, error) {
	infos, err := a.LoadPackages(pattern)
	if err != nil {
		return nil, err
	}

	if len(infos) != 1 {
		return nil, fmt.Errorf("pattern %q matched %d packages, want 1", pattern, len(infos))
	}

	return infos[0], nil
}
