// Package text builds a concrete string holder on top of the hold package.
//
// A Go substring keeps its entire backing array reachable, so a small slice
// of a large parse buffer pins the whole buffer in memory. Str makes the
// trade explicit: a Borrowed Str is a cheap view bound to the buffer owner's
// scope, a Static Str points at process-lifetime data such as interned
// strings, and an Owned Str holds a detached copy. Mutation and Detach
// always copy via strings.Clone, so the source buffer is never written to
// and never pinned past its scope.
//
// Interner deduplicates strings into a process-lifetime pool, handing out
// Static Str values for them.
package text
