// SPDX-License-Identifier: MIT

// Package dataset reads (x, y) sample files for the curve fitter.
//
// Accepted layout, one sample per line:
//
//	# comment
//	x,y            optional header (first data line only, non-numeric)
//	-1.5,-1.9      comma separated
//	0.5 0          or whitespace separated
//
// Blank lines and lines starting with '#' are skipped. Any other line must
// hold exactly two finite numbers.
package dataset
