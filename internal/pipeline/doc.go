// Package pipeline orchestrates discovery, video/subtitle association,
// per-file probing and conversion, and batch summary reporting.
//
// A run is strictly sequential: Discover → Associate → (Probe → Convert)
// for each catalog item in discovery order.
package pipeline
