// Package plot renders membership-function curves in the terminal. It is a
// read-only consumer of the data model: it samples each term's membership
// over a linearly spaced grid across the variable's universe and draws one
// curve per term, never mutating variables or terms.
//
// Two layers:
//
//   - Sample / SampleVariable produce plain Series (label + X/Y points),
//     usable with any renderer.
//   - Renderer draws the series as a fixed-size character chart, coloring
//     each curve through termenv so output degrades gracefully on dumb
//     terminals (the Ascii profile renders plain characters).
//
// Overlapping curves draw in series order; the later series wins the cell.
package plot
