// Package render turns chart descriptions into SVG or PNG images with
// go-chart. Only kinds that map onto a single go-chart figure have an image
// form; the rest are reported as invalid input.
package render
