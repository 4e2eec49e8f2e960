package analyze

import (
	"errors"

	"golang.org/x/tools/go/packages"
)

var (
	ErrTypeNotFound = errors.New("type not found")
	ErrBadDirective = errors.New("malformed fieldname directive")
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "fieldname-generator/examples/records"
	Name    string // e.g., "User"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path string // Import path
	Name string // Package name
	Dir  string // Directory containing the package sources

	pkg *packages.Package
}
