// Package shapes computes the geometry of the six drawable shape kinds and
// renders them onto an abstract Surface.
//
// Every kind consumes a requested bounding box and reports the box it
// actually occupies. For most kinds the two are equal because the outline
// touches all four edges of the requested box. Two kinds recompute:
//
//   - square: the side is min(width, height), anchored at the top-left
//     corner, so the box shrinks along the longer axis.
//   - star: ten vertices alternating between an outer radius of
//     min(width, height)/2 and half that, one tip pointing up. The box is
//     the tight bounds of those vertices.
//
// Triangle (apex at top-middle, base along the bottom edge) and diamond
// (edge midpoints) both place vertices on all four edges, so their vertex
// bounds equal the requested box.
//
// # Coordinate System
//
// Coordinates are float64 pixels with the origin at the top-left corner, X
// increasing rightward and Y increasing downward.
package shapes
