// Package render draws a spatial.Grid and a path as text.
//
// Rows are printed top (largest Z) first so the picture matches a map seen
// from above with +Z pointing up the screen. Each cell is one glyph:
//
//	.  walkable
//	#  blocked
//	*  on the path
//	S  start, T target (or any Mark)
//
// Unless Plain is set, glyphs are coloured with gookit/color styles; the
// library strips the codes itself when the output is not a colour terminal.
package render
