// Package triangulate converts a simple polygon, possibly concave and
// of either winding, into a CCW-ordered list of triangle indices via
// ear clipping.
//
// A pre-scan marks reflex vertices in a bitset once, up front; the ear
// loop then tests candidate ears against only the currently-active
// reflex vertices rather than every other vertex, bringing the common
// case down from O(n^2) to O(n*r) where r is the reflex count.
package triangulate
