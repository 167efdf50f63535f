// Package backend hosts the thin cgo layer that links the Go API to the
// native barretenberg library. The real bindings live behind the bbnative
// build tag so that the rest of the repository compiles without cgo or a
// prebuilt libbb.
//
// The package deals only in raw byte arrays. Conversion to field and curve
// values happens in package bb, through the typed FromBuffer constructors.
//
// Foreign memory is read in exactly one place, foreign.go. Every output the
// engine writes is copied into a Go-owned array there before anything else
// looks at it.
package backend
