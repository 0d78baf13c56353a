// Package imaging provides the pixel-level side of dataset generation:
// a raster canvas that shapes are filled onto, image file I/O, and the
// pixel measurements used to audit a generated dataset.
//
// All operations work with standard Go image.Image types and use a coordinate
// system where (0,0) is at the top-left corner, X increases rightward, and Y
// increases downward.
//
// # Coordinate System
//
// Pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// Shape geometry arrives as float64 coordinates. A pixel (x, y) covers the
// square [x, x+1) × [y, y+1), so a shape spanning 10.0 to 20.0 colors the ten
// pixels 10..19.
//
// # Rasterization
//
// Canvas computes exact area coverage with golang.org/x/image/vector and then
// thresholds it at half coverage. Every painted pixel carries exactly the fill
// color; there is no anti-aliased fringe blending fill and background.
//
// # Thread Safety
//
// A Canvas is not safe for concurrent use. The stateless functions (Load,
// Save, SampleColor, ForegroundBounds) can be called concurrently on
// different images.
package imaging
