// Package dataset assembles samples and writes them out as a YOLO-style
// object-detection dataset.
//
// # Output Layout
//
// Under the output root:
//
//	images/{train,val}/<base>.png   rendered images
//	labels/{train,val}/<base>.txt   one label line per image
//	labels_all/<base>.txt           flat copy of every label
//	classes.txt                     one class name per line, line index = class id
//	data.yaml                       dataset descriptor for YOLO trainers
//	labels_all.tar.xz               optional archive of labels_all/
//
// <base> is "{shape}_{color}_{NNNN}" with the 1-based sample index padded
// to four digits, for example "star_purple_0042".
//
// # Sample Assembly
//
// Each sample is built from its own random generator:
//
//  1. Polarity: a fair coin picks either a black background with a white
//     shape, or a white background with a uniformly drawn catalog color
//  2. Fill: the color's jittered render value
//  3. Shape: a uniformly drawn shape kind
//  4. Class: the (color, shape) class id
//  5. Layout: a requested box inside the margin
//  6. Render: the shape is filled onto the canvas, yielding the actual box
//  7. Label: the actual box normalized to the canvas size
//
// # Determinism
//
// A run is fully determined by its seed. The split assignment comes from
// one generator and every sample index gets its own generator derived from
// the seed and the index, so output does not depend on the worker count or
// on the order in which samples finish.
//
// # Failure Handling
//
// Directory setup and the class list are required; failing to write them
// aborts the run. Individual samples fail independently: the run logs the
// failure, records the index and carries on. The returned error combines
// every sample failure.
package dataset
