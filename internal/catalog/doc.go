// Package catalog holds the fixed set of form-input signatures used by the
// detector.
//
// A Signature describes what one kind of form input usually looks like in a
// design file: the outline shape, a nominal size, words that tend to appear in
// its label text, and words that tend to appear in the names of its icon
// layers.
//
// # Ordering
//
// The catalog is an ordered sequence, not a map. The detector walks it front
// to back and only replaces its current best guess on a strictly higher score,
// so when two signatures tie the earlier one wins. Default() preserves the
// order in which the entries are declared in signatures.go.
//
// # Immutability
//
// A Catalog never changes after construction. Accessors hand out copies, so a
// single Catalog may be shared by any number of goroutines without locking.
package catalog
