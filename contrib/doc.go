// Package contrib contains reference and experimental packages that build
// on the core query vocabulary but are not covered by its backward
// compatibility guarantee.
//
// The [github.com/repospec/repospec.go/contrib/sqlizer] package renders
// queries to parameterized SQL and doubles as the reference provider for
// the conformance checks in [github.com/repospec/repospec.go/pkg/tck].
package contrib
