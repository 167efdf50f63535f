// Package internalcheck holds repository policy tests. It has no API; the
// tests load the module's packages with golang.org/x/tools/go/packages and
// inspect their syntax.
//
// Policies:
//
//   - Only pkg/bb/internal/backend may import "C" or "unsafe". Every read of
//     native memory goes through that package's copy helpers.
//   - Public packages must not format byte payloads with %x; field elements
//     may be secret.
package internalcheck
