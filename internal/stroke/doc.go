// Package stroke expands a polyline and a pen style into either a
// closed outline polygon (for downstream triangulation) or a directly
// indexed triangle mesh, following the tiny-skia/kurbo pattern of
// building separate forward (left) and backward (right) offset paths.
//
// # Algorithm Overview
//
// Stroke expansion builds two parallel offset point lists:
//   - Left: offset by +width/2 along the perpendicular of travel
//   - Right: offset by -width/2 along the perpendicular of travel
//
// The outline polygon is assembled as:
//  1. Start cap points
//  2. Left offsets, forward
//  3. End cap points
//  4. Right offsets, reversed
//
// closing implicitly back to the first start-cap point (or the first
// left offset, when the cap contributes no extra geometry).
//
// # Line Caps
//
// Line caps define the shape of open-path endpoints:
//   - CapButt: flat cap ending exactly at the endpoint
//   - CapRound: semicircular cap with radius = width/2
//   - CapSquare: square cap extending width/2 beyond the endpoint
//
// # Line Joins
//
// Line joins define how interior vertices connect the two adjoining
// segments on the outer side of the turn:
//   - JoinMiter: sharp corner, falls back to bevel past the miter limit
//   - JoinRound: circular arc sampled into straight segments
//   - JoinBevel: straight line across the corner
//
// The inner side of a turn always gets a single clamped offset point
// rather than join geometry, since the inner side never needs to cover
// a gap.
//
// # References
//
// The two-offset-path construction is based on tiny-skia (Rust):
// path/src/stroker.rs and kurbo (Rust): src/stroke.rs.
package stroke
