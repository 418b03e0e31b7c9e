// The [repospec] package defines a provider-agnostic vocabulary for
// repository queries: restriction trees, matching patterns, sorting, and
// pagination, composed into an immutable [Query] that a persistence provider
// translates into its native query language.
//
// # Restrictions
//
// Predicates are built from the [github.com/repospec/repospec.go/pkg/restrict]
// package, whose leaves pair an attribute name with a comparison from
// [github.com/repospec/repospec.go/pkg/constraint]. Textual matching uses the
// patterns of [github.com/repospec/repospec.go/pkg/pattern].
//
// For call sites typed against an entity model, the
// [github.com/repospec/repospec.go/pkg/metamodel] package provides attribute
// descriptors that produce the same restrictions without attribute-name
// strings at every call.
//
// # Pagination
//
// The [github.com/repospec/repospec.go/pkg/page] package supports both
// offset-addressed pages and keyset cursors. Keyset traversal resumes
// relative to the sort-key values of boundary rows, so it stays consistent
// when rows are inserted or deleted between fetches.
//
// # Providers
//
// A provider consumes a [Query] and renders or executes it against its own
// store. A provider that cannot support a requested capability reports an
// error wrapping [ErrUnsupported]. The
// [github.com/repospec/repospec.go/pkg/tck] package checks a provider's
// rendering against the contract, and
// [github.com/repospec/repospec.go/contrib/sqlizer] is a reference renderer
// targeting SQL.
package repospec
