// Package advanced is the double precision core of planar.
//
// Every operation whose answer depends on a tolerance is a method on
// Tolerance, which is the only context the package needs. Operations that are
// exact by construction (distances, projections) are plain functions. Nothing
// in this package keeps state between calls, so any function may be called
// concurrently.
//
// Coordinates follow the usual math convention for naming sides: a point is
// Left of a directed segment when the cross product (end-start) x (p-start)
// is positive. Side based containment (triangles, rectangles, convex
// boundaries) treats the interior as the side that is never Left, so
// boundaries must be given clockwise in a y-up frame, which is
// counterclockwise on a screen whose y axis points down. The package never
// reorders vertices for you; see Polygon.IsClockwise and Polygon.Reverse.
package advanced
