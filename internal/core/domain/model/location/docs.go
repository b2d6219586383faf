// Package location models the branch directory and the binding of users to branches.
//
// The package includes:
//   - Location: a physical branch (e.g. "Queimados", "Austin") with a unique name
//   - Binding: the association of one user with at most one Location
//
// Key business rules:
//   - Location names are trimmed, non-empty and at most MaxNameLength characters
//   - A Binding without a Location blocks every order lifecycle operation for that user
//   - Bindings are only created explicitly; no branch is ever assigned by default
package location
