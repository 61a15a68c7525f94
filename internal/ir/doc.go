// Package ir is the typed intermediate representation for node-based
// scripts: a directed graph of operation nodes assembled incrementally
// through a small set of validated composition primitives.
//
// It is intentionally split into:
//   - The type lattice (Datatype) and immutable node schemas (NodeSpec)
//   - Node instances, their port handles, and the binding rules
//   - The Graph container, which owns nodes and assigns identity
//   - The control-flow builder (Chain, If/Else) with its branch stack
//
// Impulses drive control flow, typed data ports carry values, and the Slot
// kind models a position in the host scene tree. Every operation either
// completes or fails synchronously at the point of violation; the graph is
// never left half-wired by a rejected call.
package ir
