// Package kernel provides the shared domain primitives of the requisitions service.
//
// The package currently holds UUID, the identifier value object used by every
// aggregate (locations, bindings, catalog entries, orders and history entries).
// Values are immutable and safe to share between goroutines.
package kernel
