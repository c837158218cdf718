// Package pixel implements the color and image types used by the graphic LCD driver.
//
// The panel stores 1-bit pixels in vertical bytes: every byte covers 8 rows of a
// single column, with the least significant bit at the top. [MonoVerticalLSBImage]
// exposes that layout as a regular [draw.Image], so anything in the Go image
// ecosystem can draw onto the panel memory directly.
package pixel
