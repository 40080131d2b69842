package common

import "path"

// PkgAlias returns the default name a package is imported under: the last
// element of its import path. It is empty for an empty path.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}
