// Package layout implements a single-axis box layout engine.
//
// Children are laid out in order along the container's primary axis. Each
// child is sized by its [SizeMode] on that axis: a fixed length, its wrapped
// content length, or a weighted share of the space left over after the
// non-filling children and all margins have been accounted for.
//
// The main entry point is [Linear]. The engine keeps no state between calls;
// the host owns the nodes and the cross axis. Types are re-exported through
// the root boxlayout package for public consumption.
package layout
