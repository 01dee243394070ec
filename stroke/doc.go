// Package stroke records free-hand strokes.
//
// A [Drawing] collects pointer positions in the order they arrive, drops
// positions that are closer than [MinDistance] to the previous one, and
// rebuilds a [SampleCurve] over every kept point each time one is accepted.
// Renderers walk [Drawing.Samples] to draw the stroke as connected segments.
package stroke
