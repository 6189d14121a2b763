// Package pnm reads and writes Netpbm pixel maps.
//
// The plain encoder writes the ASCII P3 variant directly; raw P6 output and
// decoding of all variants go through github.com/jbuchbinder/gopnm, which
// also registers the formats with the image package.
package pnm
