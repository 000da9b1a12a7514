// Package colmat is a small toolkit around one data structure: a generic,
// dense 2-D matrix stored in a single flat column-major buffer.
//
// What is inside:
//
//	matrix/  - Matrix[T]: shape-checked construction, O(1) element access,
//	           row/column extraction, concatenation, Map/Map2/IndexedMap/Filter
//	pretty/  - terminal table rendering of any Matrix[T]
//	heatmap/ - Matrix[float64] as a gonum/plot heat map (png, svg, pdf)
//	examples/ - a runnable tour over a small sensor log
//
// Layout in one picture (3×2, offset = i + j*rows):
//
//	logical      buffer
//	[a d]        [a b c | d e f]
//	[b e]         col 0   col 1
//	[c f]
//
// Every operation is pure: writes return a new matrix and never touch the
// receiver, and shape conflicts come back as matrix.ErrShapeMismatch.
//
//	go get github.com/katalvlaran/colmat
package colmat
