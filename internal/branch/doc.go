// Package branch holds the read-only data model for continuation
// branches and the navigation and derivation logic built on top of it.
//
// A branch is grown by the external continuation engine and may be
// extended in both directions from its seed point. Backward extension
// appends to the storage array with decreasing signed logical indices,
// so storage order and logical order differ:
//
//   - [EnsureIndices]: one signed logical index per point, storage order
//   - [SortedOrder]: permutation of storage positions by logical index
//   - [Cursor]: Start/Prev/Next/End navigation over the sorted order
//   - [Reconstruct]: full parameter vector for a point, for both
//     one-parameter branches and two-parameter curves
//   - [NormalizeEigen]: raw solver eigen-data as a []complex128
//
// Nothing in this package mutates a branch; every function derives a
// fresh view from the snapshot it is given.
package branch
