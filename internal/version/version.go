// Package version derives the composite version token used for
// installed-vs-available comparison.
package version

// separator joins the primary version and the release revision.
const separator = "-"

// Compose joins pkgver and pkgrel into the composite token. Tokens compare by
// exact string equality; no semantic ordering is applied, so "1.2.3-4" and
// "1.2.3-04" are different versions.
func Compose(pkgver string, pkgrel string) string {
	return pkgver + separator + pkgrel
}
