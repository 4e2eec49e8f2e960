package common

import (
	"path"
	"strings"
)

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// IsStdlib reports whether pkgPath belongs to the standard library. Paths
// whose first element contains a dot are third-party; paths sharing the first
// element of localPath belong to the local module, whose path may lack a dot.
func IsStdlib(pkgPath, localPath string) bool {
	first, _, _ := strings.Cut(pkgPath, "/")
	if strings.Contains(first, ".") {
		return false
	}

	local, _, _ := strings.Cut(localPath, "/")

	return local == "" || first != local
}
