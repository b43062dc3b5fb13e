// Package thickline draws straight lines of arbitrary integer width,
// one pixel at a time.
//
// A [Line] is turned into a [Stream] of colored pixels, which can be
// pulled one by one or sent to a [DrawTarget].  The pixels of each line
// are computed on the fly, with a fixed amount of state and without
// allocating memory.  This makes the package suitable for drawing onto
// displays which have no framebuffer in main memory.
//
// Thick lines are drawn as a sequence of cross-sections, one for each
// pixel of the main-axis Bresenham walk from the start point to the end
// point.  The pixels left of the direction of travel are painted in the
// stroke color, the pixels right of it in the fill color.  Where the
// diagonal steps of neighbouring cross-sections would leave holes, the
// missing pixels are added to the cross-section, so that a pixel may be
// reported more than once.
package thickline

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
