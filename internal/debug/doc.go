// Package debug provides assertions that compile away outside debug builds.
//
// Build with -tags vecmem_debug to enable precondition checks on the
// unchecked fast paths (vector.Get, vector.Set, rawmem bounds). A violated
// assertion panics with the failed condition; in default builds the checks
// cost nothing and violations are undefined behavior.
package debug
